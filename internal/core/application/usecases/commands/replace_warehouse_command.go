package commands

import (
	"errors"

	"fulfilment/internal/pkg/guard"
)

var ErrReplaceWarehouseCommandIsNotConstructed = errors.New(
	"ReplaceWarehouseCommand must be created via NewReplaceWarehouseCommand constructor",
)

// ReplaceWarehouseCommand represents a request to swap the physical facility
// behind an existing business unit code. Location, capacity and stock are the
// candidate's values; the code identifies the warehouse being replaced.
type ReplaceWarehouseCommand struct { //nolint:recvcheck //using for validation
	businessUnitCode string
	location         string
	capacity         *int
	stock            *int

	guard guard.ConstructorGuard
}

// NewReplaceWarehouseCommand creates a command to replace a warehouse.
// As with creation, only the code is validated here; the handler checks the
// candidate fields in lifecycle order.
func NewReplaceWarehouseCommand(businessUnitCode, location string, capacity, stock *int) (ReplaceWarehouseCommand, error) {
	command := ReplaceWarehouseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if businessUnitCode == "" {
		return ReplaceWarehouseCommand{}, ErrBusinessUnitCodeIsRequired
	}

	command.businessUnitCode = businessUnitCode
	command.location = location
	command.capacity = copyIntPtr(capacity)
	command.stock = copyIntPtr(stock)
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReplaceWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrReplaceWarehouseCommandIsNotConstructed)
}

// BusinessUnitCode returns the code of the warehouse being replaced.
func (c ReplaceWarehouseCommand) BusinessUnitCode() string {
	return c.businessUnitCode
}

// Location returns the candidate location identifier, unresolved.
func (c ReplaceWarehouseCommand) Location() string {
	return c.location
}

// Capacity returns the candidate capacity, or nil when absent.
func (c ReplaceWarehouseCommand) Capacity() *int {
	return copyIntPtr(c.capacity)
}

// Stock returns the candidate stock, or nil when absent.
func (c ReplaceWarehouseCommand) Stock() *int {
	return copyIntPtr(c.stock)
}
