package queries

import (
	"errors"

	"fulfilment/internal/pkg/errs"
	"fulfilment/internal/pkg/guard"
)

var (
	ErrGetWarehouseByCodeQueryIsNotConstructed = errors.New(
		"GetWarehouseByCodeQuery must be created via NewGetWarehouseByCodeQuery constructor",
	)
	ErrBusinessUnitCodeIsRequired = errs.NewValueIsRequiredError("businessUnitCode")
)

// GetWarehouseByCodeQuery retrieves a single warehouse by business unit code.
type GetWarehouseByCodeQuery struct { //nolint:recvcheck //using for validation
	businessUnitCode string

	guard guard.ConstructorGuard
}

// NewGetWarehouseByCodeQuery creates a query for the warehouse with the given code.
func NewGetWarehouseByCodeQuery(businessUnitCode string) (GetWarehouseByCodeQuery, error) {
	query := GetWarehouseByCodeQuery{
		guard: guard.NewConstructorGuard(),
	}

	if businessUnitCode == "" {
		return GetWarehouseByCodeQuery{}, ErrBusinessUnitCodeIsRequired
	}

	query.businessUnitCode = businessUnitCode
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWarehouseByCodeQuery) Validate() error {
	return q.guard.Validate(ErrGetWarehouseByCodeQueryIsNotConstructed)
}

// BusinessUnitCode returns the code being looked up.
func (q GetWarehouseByCodeQuery) BusinessUnitCode() string {
	return q.businessUnitCode
}
