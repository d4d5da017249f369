package store

import (
	"errors"

	"github.com/google/uuid"

	"github.com/fjod/go_checkout/domain"
)

// Common errors returned by the catalog
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrDuplicateProduct = errors.New("product already registered")
)

// ProductCatalog defines the interface for product registry operations
type ProductCatalog interface {
	// Register adds a product to the catalog under its ID
	Register(p *domain.Product) error

	// Get returns the product with the given ID
	Get(id uuid.UUID) (*domain.Product, error)

	// List returns all products in registration order
	List() []*domain.Product

	// Len returns the number of registered products
	Len() int
}
