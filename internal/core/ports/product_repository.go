package ports

import (
	"context"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	Update(ctx context.Context, aggregate *product.Product) error

	// Remove deletes the product with the given identifier.
	// Absence is reported as errs.ObjectNotFoundError.
	Remove(ctx context.Context, id kernel.UUID) error

	// Get retrieves a product aggregate by its unique identifier.
	// Absence is reported as errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAll retrieves every product.
	GetAll(ctx context.Context) ([]*product.Product, error)
}
