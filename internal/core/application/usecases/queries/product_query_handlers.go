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

// GetAllProductsQueryHandler retrieves the product catalogue through a
// read-through cache: serve the cached listing when present, otherwise read
// the database and repopulate. Cache failures fall back to the database.
type GetAllProductsQueryHandler struct {
	db    *gorm.DB
	cache ProductListingCache
}

// NewGetAllProductsQueryHandler creates a handler for catalogue listings.
func NewGetAllProductsQueryHandler(db *gorm.DB, cache ProductListingCache) GetAllProductsQueryHandler {
	return GetAllProductsQueryHandler{db: db, cache: cache}
}

// Handle executes the query to retrieve all products sorted by name.
func (h GetAllProductsQueryHandler) Handle(
	ctx context.Context,
	query GetAllProductsQuery,
) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if cached, found, err := h.cache.GetListing(ctx); err == nil && found {
		return cached, nil
	}

	products, err := h.readListing(ctx)
	if err != nil {
		return nil, err
	}

	// Repopulation is best effort.
	_ = h.cache.SetListing(ctx, products)

	return products, nil
}

func (h GetAllProductsQueryHandler) readListing(ctx context.Context) ([]ProductResponse, error) {
	products := make([]ProductResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price_cents
		FROM products
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p ProductResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&p.Name,
			&p.Description,
			&p.PriceCents,
		)
		if err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		p.ID = productID
		products = append(products, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

// GetProductByIDQueryHandler retrieves a single product record by ID.
// Lookups bypass the listing cache.
type GetProductByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetProductByIDQueryHandler creates a handler for product lookups.
func NewGetProductByIDQueryHandler(db *gorm.DB) GetProductByIDQueryHandler {
	return GetProductByIDQueryHandler{db: db}
}

// Handle executes the lookup. Absence is reported as errs.ObjectNotFoundError.
func (h GetProductByIDQueryHandler) Handle(
	ctx context.Context,
	query GetProductByIDQuery,
) (ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductResponse{}, err
	}

	var p ProductResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price_cents
		FROM products
		WHERE id = ?
	`, query.ProductID().Bytes()).Row()

	err := row.Scan(
		&id,
		&p.Name,
		&p.Description,
		&p.PriceCents,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ProductResponse{}, errs.NewObjectNotFoundError("productID", query.ProductID())
		}
		return ProductResponse{}, err
	}

	productID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ProductResponse{}, err
	}
	p.ID = productID

	return p, nil
}
