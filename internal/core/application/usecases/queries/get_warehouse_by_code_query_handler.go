package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfilment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetWarehouseByCodeQueryHandler retrieves a single warehouse record by its
// business unit code.
type GetWarehouseByCodeQueryHandler struct {
	db *gorm.DB
}

// NewGetWarehouseByCodeQueryHandler creates a handler for warehouse lookups.
func NewGetWarehouseByCodeQueryHandler(db *gorm.DB) GetWarehouseByCodeQueryHandler {
	return GetWarehouseByCodeQueryHandler{db: db}
}

// Handle executes the lookup. Absence is reported as errs.ObjectNotFoundError
// so the transport layer can map it to a 404.
func (h GetWarehouseByCodeQueryHandler) Handle(
	ctx context.Context,
	query GetWarehouseByCodeQuery,
) (WarehouseResponse, error) {
	if err := query.Validate(); err != nil {
		return WarehouseResponse{}, err
	}

	var w WarehouseResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			business_unit_code,
			location,
			capacity,
			stock,
			created_at,
			archived_at
		FROM warehouses
		WHERE business_unit_code = ?
	`, query.BusinessUnitCode()).Row()

	err := row.Scan(
		&w.BusinessUnitCode,
		&w.Location,
		&w.Capacity,
		&w.Stock,
		&w.CreatedAt,
		&w.ArchivedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return WarehouseResponse{}, errs.NewObjectNotFoundError(
				"businessUnitCode", query.BusinessUnitCode())
		}
		return WarehouseResponse{}, err
	}

	return w, nil
}
