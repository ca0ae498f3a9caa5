package ports

import (
	"context"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/model/store"
)

// StoreRepository defines the persistence contract for store aggregates.
type StoreRepository interface {
	// Add persists a new store aggregate to storage.
	Add(ctx context.Context, aggregate *store.Store) error

	// Update persists changes to an existing store aggregate.
	Update(ctx context.Context, aggregate *store.Store) error

	// Remove deletes the store with the given identifier.
	// Absence is reported as errs.ObjectNotFoundError.
	Remove(ctx context.Context, id kernel.UUID) error

	// Get retrieves a store aggregate by its unique identifier.
	// Absence is reported as errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*store.Store, error)

	// GetAll retrieves every store.
	GetAll(ctx context.Context) ([]*store.Store, error)
}
