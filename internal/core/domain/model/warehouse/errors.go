package warehouse

import (
	"errors"
	"fmt"
)

// ErrValidation is the sentinel for every warehouse lifecycle rule violation.
// Callers classify with errors.Is and map it to a client error; the concrete
// *ValidationError carries the human-readable message.
var ErrValidation = errors.New("warehouse validation failed")

// ValidationError reports a violated warehouse lifecycle rule. It is always
// raised before any state mutation, so a caller receiving one can assume
// nothing was written.
type ValidationError struct {
	Message string
}

// NewValidationError creates a ValidationError with a formatted message.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Rule-specific constructors. The wording is part of the API surface: the
// REST layer returns these messages verbatim to clients.

// NewAlreadyExistsError reports a duplicate business unit code. Any existing
// record blocks creation, archived or not.
func NewAlreadyExistsError(businessUnitCode string) *ValidationError {
	return NewValidationError("warehouse with business unit code %s already exists", businessUnitCode)
}

// NewDoesNotExistError reports a business unit code with no warehouse behind it.
func NewDoesNotExistError(businessUnitCode string) *ValidationError {
	return NewValidationError("warehouse with business unit code %s does not exist", businessUnitCode)
}

// NewInvalidLocationError reports a location identifier the directory cannot resolve.
func NewInvalidLocationError(identifier string) *ValidationError {
	return NewValidationError("location %s is not a valid location", identifier)
}

// NewMaxWarehousesReachedError reports that a location already holds its
// maximum number of active warehouses.
func NewMaxWarehousesReachedError(maxNumberOfWarehouses int, identifier string) *ValidationError {
	return NewValidationError(
		"maximum number of warehouses (%d) has been reached for location %s",
		maxNumberOfWarehouses, identifier)
}

// NewCapacityRequiredError reports a missing or non-positive capacity.
func NewCapacityRequiredError() *ValidationError {
	return NewValidationError("warehouse capacity must be greater than zero")
}

// NewCapacityBudgetExceededError reports that adding the candidate capacity
// would push the active capacity sum at a location over its budget.
func NewCapacityBudgetExceededError(identifier string, maxCapacity, currentTotal, adding int) *ValidationError {
	return NewValidationError(
		"total capacity at location %s would exceed maximum capacity of %d (current total: %d, adding: %d)",
		identifier, maxCapacity, currentTotal, adding)
}

// NewStockExceedsCapacityError reports stock above capacity.
func NewStockExceedsCapacityError(stock, capacity int) *ValidationError {
	return NewValidationError("warehouse stock (%d) cannot exceed capacity (%d)", stock, capacity)
}

// NewCannotReplaceArchivedError reports a replacement attempt on an archived
// warehouse.
func NewCannotReplaceArchivedError(businessUnitCode string) *ValidationError {
	return NewValidationError(
		"cannot replace archived warehouse with business unit code %s", businessUnitCode)
}

// NewCapacityCannotAccommodateStockError reports a replacement whose capacity
// is below the stock carried over from the old warehouse.
func NewCapacityCannotAccommodateStockError(capacity, oldStock int) *ValidationError {
	return NewValidationError(
		"new warehouse capacity (%d) cannot accommodate stock from old warehouse (%d)",
		capacity, oldStock)
}

// NewStockMismatchError reports a replacement whose stock differs from the old
// warehouse. Replacement is a like-for-like migration, not a restocking event.
func NewStockMismatchError(newStock, oldStock int) *ValidationError {
	return NewValidationError(
		"new warehouse stock (%d) must match the old warehouse stock (%d)", newStock, oldStock)
}

// NewAlreadyArchivedError reports an archive attempt on an archived warehouse.
func NewAlreadyArchivedError(businessUnitCode string) *ValidationError {
	return NewValidationError(
		"warehouse with business unit code %s is already archived", businessUnitCode)
}
