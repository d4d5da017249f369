package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/fjod/go_checkout/domain"
)

// MemoryCatalog implements ProductCatalog with in-memory storage
type MemoryCatalog struct {
	mu       sync.RWMutex
	products map[uuid.UUID]*domain.Product
	order    []uuid.UUID // registration order, for List
}

// NewMemoryCatalog creates a new in-memory product catalog
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		products: make(map[uuid.UUID]*domain.Product),
	}
}

// Register adds a product to the catalog under its ID
func (c *MemoryCatalog) Register(p *domain.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.products[p.ID]; exists {
		return ErrDuplicateProduct
	}
	c.products[p.ID] = p
	c.order = append(c.order, p.ID)
	return nil
}

// Get returns the product with the given ID
func (c *MemoryCatalog) Get(id uuid.UUID) (*domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, exists := c.products[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	return p, nil
}

// List returns all products in registration order
func (c *MemoryCatalog) List() []*domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*domain.Product, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.products[id])
	}
	return out
}

// Len returns the number of registered products
func (c *MemoryCatalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}
