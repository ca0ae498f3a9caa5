// Package store provides the Store aggregate: a retail outlet served by the
// fulfilment warehouses. Store changes are mirrored to the legacy store
// manager after they are committed locally.
package store

import (
	"errors"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/pkg/errs"
)

var (
	// ErrStoreIsNotConstructed is returned when a Store instance was not
	// created through the NewStore factory method.
	ErrStoreIsNotConstructed = errors.New("Store must be created via NewStore constructor")

	// ErrNameIsRequired is returned when attempting to create or rename a
	// store without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Store represents a retail outlet. The quantity of products in stock is a
// reported figure, not derived from warehouse stock.
type Store struct {
	id                      kernel.UUID
	name                    string
	quantityProductsInStock int

	isConstructed bool
}

// NewStore creates a new Store.
// The name is required; the stock quantity must not be negative.
func NewStore(id kernel.UUID, name string, quantityProductsInStock int) (*Store, error) {
	store := &Store{
		isConstructed: true,
	}

	if err := errors.Join(
		store.setID(id),
		store.setName(name),
		store.setQuantityProductsInStock(quantityProductsInStock),
	); err != nil {
		return nil, err
	}

	return store, nil
}

// Validate ensures the Store was properly constructed through NewStore.
func (s *Store) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStoreIsNotConstructed
	}

	return nil
}

// IsEqual compares two stores by their unique identifiers.
func (s *Store) IsEqual(other *Store) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the store's unique identifier.
func (s *Store) ID() kernel.UUID {
	return s.id
}

// Name returns the store's display name.
func (s *Store) Name() string {
	return s.name
}

// QuantityProductsInStock returns the reported product quantity.
func (s *Store) QuantityProductsInStock() int {
	return s.quantityProductsInStock
}

// Update changes the store's name and reported stock quantity, with the same
// validation as construction. On error nothing changes.
func (s *Store) Update(name string, quantityProductsInStock int) error {
	if err := s.Validate(); err != nil {
		return err
	}

	updated := *s
	if err := errors.Join(
		updated.setName(name),
		updated.setQuantityProductsInStock(quantityProductsInStock),
	); err != nil {
		return err
	}

	*s = updated
	return nil
}

func (s *Store) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Store) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	s.name = name
	return nil
}

func (s *Store) setQuantityProductsInStock(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidError("quantityProductsInStock")
	}
	s.quantityProductsInStock = quantity
	return nil
}
