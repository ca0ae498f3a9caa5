package queries

import (
	"context"
	"errors"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/pkg/guard"
)

var (
	ErrGetAllProductsQueryIsNotConstructed = errors.New(
		"GetAllProductsQuery must be created via NewGetAllProductsQuery constructor",
	)
	ErrGetProductByIDQueryIsNotConstructed = errors.New(
		"GetProductByIDQuery must be created via NewGetProductByIDQuery constructor",
	)
)

// ProductListingCache caches the full product listing read model.
// A miss is reported as found=false, not as an error; cache errors degrade
// the read path to the database instead of failing it.
type ProductListingCache interface {
	GetListing(ctx context.Context) (products []ProductResponse, found bool, err error)
	SetListing(ctx context.Context, products []ProductResponse) error
}

// GetAllProductsQuery retrieves the product catalogue.
type GetAllProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllProductsQuery creates a query to retrieve all products.
func NewGetAllProductsQuery() GetAllProductsQuery {
	return GetAllProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllProductsQueryIsNotConstructed)
}

// GetProductByIDQuery retrieves a single product by ID.
type GetProductByIDQuery struct { //nolint:recvcheck //using for validation
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProductByIDQuery creates a query for the product with the given ID.
func NewGetProductByIDQuery(productID kernel.UUID) (GetProductByIDQuery, error) {
	query := GetProductByIDQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := productID.Validate(); err != nil {
		return GetProductByIDQuery{}, err
	}

	query.productID = productID
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetProductByIDQueryIsNotConstructed)
}

// ProductID returns the ID being looked up.
func (q GetProductByIDQuery) ProductID() kernel.UUID {
	return q.productID
}

// ProductResponse represents a product in the read model.
type ProductResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	PriceCents  int
}
