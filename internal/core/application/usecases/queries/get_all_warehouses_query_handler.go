package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllWarehousesQueryHandler retrieves warehouse listings straight from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
type GetAllWarehousesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllWarehousesQueryHandler creates a handler for warehouse listings.
func NewGetAllWarehousesQueryHandler(db *gorm.DB) GetAllWarehousesQueryHandler {
	return GetAllWarehousesQueryHandler{db: db}
}

// Handle executes the query to retrieve all warehouses, archived included,
// sorted by business unit code.
func (h GetAllWarehousesQueryHandler) Handle(
	ctx context.Context,
	query GetAllWarehousesQuery,
) ([]WarehouseResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	warehouses := make([]WarehouseResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			business_unit_code,
			location,
			capacity,
			stock,
			created_at,
			archived_at
		FROM warehouses
		ORDER BY business_unit_code
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var w WarehouseResponse

		err = rows.Scan(
			&w.BusinessUnitCode,
			&w.Location,
			&w.Capacity,
			&w.Stock,
			&w.CreatedAt,
			&w.ArchivedAt,
		)
		if err != nil {
			return nil, err
		}

		warehouses = append(warehouses, w)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return warehouses, nil
}
