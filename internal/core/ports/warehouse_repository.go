// Package ports defines the outbound contracts of the fulfilment core.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"fulfilment/internal/core/domain/model/warehouse"
)

// WarehouseRepository defines the persistence contract for warehouse
// aggregates. Warehouses are keyed by business unit code; there is at most
// one record per code, mutated in place across the lifecycle.
type WarehouseRepository interface {
	// Add persists a new warehouse aggregate to storage.
	// The warehouse must be valid and its business unit code must not
	// already exist in the repository.
	Add(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Update persists changes to an existing warehouse aggregate, including
	// replacements and archival.
	Update(ctx context.Context, aggregate *warehouse.Warehouse) error

	// GetByBusinessUnitCode retrieves a warehouse by its business unit code,
	// archived or not. Absence is reported as errs.ObjectNotFoundError.
	GetByBusinessUnitCode(ctx context.Context, businessUnitCode string) (*warehouse.Warehouse, error)

	// GetAll retrieves every warehouse record, archived included.
	GetAll(ctx context.Context) ([]*warehouse.Warehouse, error)

	// GetActiveByLocation retrieves the active (non-archived) warehouses
	// placed at the given location. The lifecycle engine uses this to check
	// the per-location warehouse count and capacity budget.
	GetActiveByLocation(ctx context.Context, locationID string) ([]*warehouse.Warehouse, error)
}
