package commands

import (
	"errors"

	"fulfilment/internal/pkg/errs"
	"fulfilment/internal/pkg/guard"
)

var (
	ErrCreateWarehouseCommandIsNotConstructed = errors.New(
		"CreateWarehouseCommand must be created via NewCreateWarehouseCommand constructor",
	)
	ErrBusinessUnitCodeIsRequired = errs.NewValueIsRequiredError("businessUnitCode")
)

// CreateWarehouseCommand represents a request to register a new warehouse.
//
// Only the business unit code is validated at construction. Location,
// capacity and stock are carried raw: the handler checks them in the fixed
// lifecycle order, and an out-of-order rejection here would change which
// error the caller sees first.
type CreateWarehouseCommand struct { //nolint:recvcheck //using for validation
	businessUnitCode string
	location         string
	capacity         *int
	stock            *int

	guard guard.ConstructorGuard
}

// NewCreateWarehouseCommand creates a command to register a new warehouse.
// Capacity and stock are optional at this point; absence is rejected later by
// the handler's capacity check.
func NewCreateWarehouseCommand(businessUnitCode, location string, capacity, stock *int) (CreateWarehouseCommand, error) {
	command := CreateWarehouseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setBusinessUnitCode(businessUnitCode); err != nil {
		return CreateWarehouseCommand{}, err
	}

	command.location = location
	command.capacity = copyIntPtr(capacity)
	command.stock = copyIntPtr(stock)
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrCreateWarehouseCommandIsNotConstructed)
}

// BusinessUnitCode returns the code of the warehouse to create.
func (c CreateWarehouseCommand) BusinessUnitCode() string {
	return c.businessUnitCode
}

// Location returns the requested location identifier, unresolved.
func (c CreateWarehouseCommand) Location() string {
	return c.location
}

// Capacity returns the requested capacity, or nil when absent.
func (c CreateWarehouseCommand) Capacity() *int {
	return copyIntPtr(c.capacity)
}

// Stock returns the requested stock, or nil when absent.
func (c CreateWarehouseCommand) Stock() *int {
	return copyIntPtr(c.stock)
}

func (c *CreateWarehouseCommand) setBusinessUnitCode(businessUnitCode string) error {
	if businessUnitCode == "" {
		return ErrBusinessUnitCodeIsRequired
	}

	c.businessUnitCode = businessUnitCode
	return nil
}

func copyIntPtr(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
