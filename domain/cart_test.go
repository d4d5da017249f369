package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T, name string, price int64, stock int) *Product {
	t.Helper()
	p, err := NewNonExpiringProduct(name, decimal.NewFromInt(price), stock, false, 0)
	require.NoError(t, err)
	return p
}

func TestCart_Add_NewLine(t *testing.T) {
	cart := NewCart()
	cheese := newTestProduct(t, "Cheese", 100, 10)

	require.NoError(t, cart.Add(cheese, 2))

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, cheese.ID, lines[0].Product.ID)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestCart_Add_MergesSameProduct(t *testing.T) {
	cart := NewCart()
	cheese := newTestProduct(t, "Cheese", 100, 10)

	require.NoError(t, cart.Add(cheese, 2))
	require.NoError(t, cart.Add(cheese, 3))

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestCart_Add_PreservesInsertionOrder(t *testing.T) {
	cart := NewCart()
	cheese := newTestProduct(t, "Cheese", 100, 10)
	biscuits := newTestProduct(t, "Biscuits", 150, 5)
	card := newTestProduct(t, "Scratch Card", 50, 100)

	require.NoError(t, cart.Add(cheese, 2))
	require.NoError(t, cart.Add(biscuits, 1))
	require.NoError(t, cart.Add(card, 1))

	lines := cart.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "Cheese", lines[0].Product.Name)
	assert.Equal(t, "Biscuits", lines[1].Product.Name)
	assert.Equal(t, "Scratch Card", lines[2].Product.Name)
}

func TestCart_Add_NonPositiveQuantity(t *testing.T) {
	cart := NewCart()
	cheese := newTestProduct(t, "Cheese", 100, 10)

	for _, qty := range []int{0, -1} {
		err := cart.Add(cheese, qty)
		var invalid *InvalidQuantityError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, qty, invalid.Requested)
	}
	assert.True(t, cart.IsEmpty())
}

func TestCart_Add_BeyondStock(t *testing.T) {
	cart := NewCart()
	p := newTestProduct(t, "Biscuits", 150, 3)

	err := cart.Add(p, 10)

	var invalid *InvalidQuantityError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 10, invalid.Requested)
	assert.Equal(t, 3, invalid.Available)
	assert.True(t, cart.IsEmpty()) // cart unchanged
}

func TestCart_Add_MergedQuantityBeyondStock(t *testing.T) {
	cart := NewCart()
	p := newTestProduct(t, "Biscuits", 150, 5)
	require.NoError(t, cart.Add(p, 3))

	err := cart.Add(p, 3) // merged 6 > stock 5

	var invalid *InvalidQuantityError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 6, invalid.Requested)
	assert.Equal(t, 5, invalid.Available)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity) // original line untouched
}

func TestCart_Remove(t *testing.T) {
	cart := NewCart()
	cheese := newTestProduct(t, "Cheese", 100, 10)
	biscuits := newTestProduct(t, "Biscuits", 150, 5)
	require.NoError(t, cart.Add(cheese, 2))
	require.NoError(t, cart.Add(biscuits, 1))

	cart.Remove(cheese)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "Biscuits", lines[0].Product.Name)
}

func TestCart_Remove_AbsentProductIsNoop(t *testing.T) {
	cart := NewCart()
	cheese := newTestProduct(t, "Cheese", 100, 10)
	require.NoError(t, cart.Add(cheese, 2))

	cart.Remove(newTestProduct(t, "Biscuits", 150, 5))

	assert.Len(t, cart.Lines(), 1)
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Add(newTestProduct(t, "Cheese", 100, 10), 2))

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.True(t, cart.Subtotal().IsZero())
}

func TestCart_Subtotal(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Add(newTestProduct(t, "Cheese", 100, 10), 2))
	require.NoError(t, cart.Add(newTestProduct(t, "Biscuits", 150, 5), 1))

	assert.True(t, cart.Subtotal().Equal(decimal.NewFromInt(350)))
}

func TestCart_Subtotal_EmptyCart(t *testing.T) {
	assert.True(t, NewCart().Subtotal().IsZero())
}

func TestCart_Lines_ReturnsSnapshot(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Add(newTestProduct(t, "Cheese", 100, 10), 2))

	lines := cart.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 2, cart.Lines()[0].Quantity)
}
