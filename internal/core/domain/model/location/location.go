// Package location provides the Location value object: a site where
// warehouses may be placed, together with the limits that site imposes.
//
// Locations are reference data. They are not created through the API; the
// location directory adapter resolves identifiers to Location values.
package location

import (
	"errors"
	"fmt"

	"fulfilment/internal/pkg/errs"
	"fulfilment/internal/pkg/guard"
)

// ErrLocationIsNotConstructed is returned when attempting to use an improperly
// initialized Location. Locations must be created via the NewLocation
// constructor to ensure validity.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location describes a site and the two limits the lifecycle engine enforces
// against it: the maximum number of active warehouses the site can hold, and
// the maximum summed capacity of those warehouses.
//
// Location is an immutable value object. The zero value is invalid and fails
// validation - use the constructor.
//
// Example:
//
//	loc, err := location.NewLocation("ZWOLLE-001", 1, 40)
//	if err != nil {
//	    // Handle validation error
//	}
type Location struct { //nolint:recvcheck //using for validation
	identification        string
	maxNumberOfWarehouses int
	maxCapacity           int
	guard                 guard.ConstructorGuard
}

// NewLocation creates a new Location with the given identifier and limits.
// The identifier is required; both limits must be greater than zero.
func NewLocation(identification string, maxNumberOfWarehouses int, maxCapacity int) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		loc.setIdentification(identification),
		loc.setMaxNumberOfWarehouses(maxNumberOfWarehouses),
		loc.setMaxCapacity(maxCapacity),
	); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate checks if the Location was properly constructed using the
// constructor. The zero value of Location is invalid and will fail this
// validation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Identification returns the identifier warehouses reference, e.g. "ZWOLLE-001".
func (l Location) Identification() string {
	return l.identification
}

// MaxNumberOfWarehouses returns the maximum number of active warehouses the
// location can hold at once.
func (l Location) MaxNumberOfWarehouses() int {
	return l.maxNumberOfWarehouses
}

// MaxCapacity returns the maximum summed capacity of the active warehouses at
// the location.
func (l Location) MaxCapacity() int {
	return l.maxCapacity
}

// String returns a human-readable representation, useful in logs.
func (l Location) String() string {
	return fmt.Sprintf("Location(%s, warehouses<=%d, capacity<=%d)",
		l.identification, l.maxNumberOfWarehouses, l.maxCapacity)
}

// IsEqual compares two locations by identifier.
// Both locations must be properly constructed for the comparison to succeed.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l.identification == other.identification, nil
}

// setIdentification sets the identifier with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, to enable self-encapsulated validation during construction.
func (l *Location) setIdentification(identification string) error {
	if identification == "" {
		return errs.NewValueIsRequiredError("identification")
	}

	l.identification = identification
	return nil
}

func (l *Location) setMaxNumberOfWarehouses(maxNumberOfWarehouses int) error {
	if maxNumberOfWarehouses <= 0 {
		return errs.NewValueIsInvalidError("maxNumberOfWarehouses")
	}

	l.maxNumberOfWarehouses = maxNumberOfWarehouses
	return nil
}

func (l *Location) setMaxCapacity(maxCapacity int) error {
	if maxCapacity <= 0 {
		return errs.NewValueIsInvalidError("maxCapacity")
	}

	l.maxCapacity = maxCapacity
	return nil
}
