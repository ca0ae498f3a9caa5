package queries

import (
	"errors"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/pkg/guard"
)

var (
	ErrGetAllStoresQueryIsNotConstructed = errors.New(
		"GetAllStoresQuery must be created via NewGetAllStoresQuery constructor",
	)
	ErrGetStoreByIDQueryIsNotConstructed = errors.New(
		"GetStoreByIDQuery must be created via NewGetStoreByIDQuery constructor",
	)
)

// GetAllStoresQuery retrieves every store.
type GetAllStoresQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllStoresQuery creates a query to retrieve all stores.
func NewGetAllStoresQuery() GetAllStoresQuery {
	return GetAllStoresQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllStoresQuery) Validate() error {
	return q.guard.Validate(ErrGetAllStoresQueryIsNotConstructed)
}

// GetStoreByIDQuery retrieves a single store by ID.
type GetStoreByIDQuery struct { //nolint:recvcheck //using for validation
	storeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStoreByIDQuery creates a query for the store with the given ID.
func NewGetStoreByIDQuery(storeID kernel.UUID) (GetStoreByIDQuery, error) {
	query := GetStoreByIDQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := storeID.Validate(); err != nil {
		return GetStoreByIDQuery{}, err
	}

	query.storeID = storeID
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStoreByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetStoreByIDQueryIsNotConstructed)
}

// StoreID returns the ID being looked up.
func (q GetStoreByIDQuery) StoreID() kernel.UUID {
	return q.storeID
}

// StoreResponse represents a store in the read model.
type StoreResponse struct {
	ID                      kernel.UUID
	Name                    string
	QuantityProductsInStock int
}
