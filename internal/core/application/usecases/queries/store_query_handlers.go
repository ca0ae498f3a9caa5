package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllStoresQueryHandler retrieves store listings straight from the database.
type GetAllStoresQueryHandler struct {
	db *gorm.DB
}

// NewGetAllStoresQueryHandler creates a handler for store listings.
func NewGetAllStoresQueryHandler(db *gorm.DB) GetAllStoresQueryHandler {
	return GetAllStoresQueryHandler{db: db}
}

// Handle executes the query to retrieve all stores sorted by name.
func (h GetAllStoresQueryHandler) Handle(
	ctx context.Context,
	query GetAllStoresQuery,
) ([]StoreResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stores := make([]StoreResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			quantity_products_in_stock
		FROM stores
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var s StoreResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&s.Name,
			&s.QuantityProductsInStock,
		)
		if err != nil {
			return nil, err
		}

		storeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		s.ID = storeID
		stores = append(stores, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stores, nil
}

// GetStoreByIDQueryHandler retrieves a single store record by ID.
type GetStoreByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetStoreByIDQueryHandler creates a handler for store lookups.
func NewGetStoreByIDQueryHandler(db *gorm.DB) GetStoreByIDQueryHandler {
	return GetStoreByIDQueryHandler{db: db}
}

// Handle executes the lookup. Absence is reported as errs.ObjectNotFoundError.
func (h GetStoreByIDQueryHandler) Handle(
	ctx context.Context,
	query GetStoreByIDQuery,
) (StoreResponse, error) {
	if err := query.Validate(); err != nil {
		return StoreResponse{}, err
	}

	var s StoreResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			quantity_products_in_stock
		FROM stores
		WHERE id = ?
	`, query.StoreID().Bytes()).Row()

	err := row.Scan(
		&id,
		&s.Name,
		&s.QuantityProductsInStock,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return StoreResponse{}, errs.NewObjectNotFoundError("storeID", query.StoreID())
		}
		return StoreResponse{}, err
	}

	storeID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return StoreResponse{}, err
	}
	s.ID = storeID

	return s, nil
}
