// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"fulfilment/internal/pkg/guard"
)

var ErrGetAllWarehousesQueryIsNotConstructed = errors.New(
	"GetAllWarehousesQuery must be created via NewGetAllWarehousesQuery constructor",
)

// GetAllWarehousesQuery retrieves every warehouse record, archived included.
type GetAllWarehousesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllWarehousesQuery creates a query to retrieve all warehouses.
func NewGetAllWarehousesQuery() GetAllWarehousesQuery {
	return GetAllWarehousesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllWarehousesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllWarehousesQueryIsNotConstructed)
}

// WarehouseResponse represents a warehouse in the read model.
type WarehouseResponse struct {
	BusinessUnitCode string
	Location         string
	Capacity         int
	Stock            *int
	CreatedAt        time.Time
	ArchivedAt       *time.Time
}

// IsArchived reports whether the warehouse record is archived.
func (r WarehouseResponse) IsArchived() bool {
	return r.ArchivedAt != nil
}
