package commands

import (
	"errors"

	"fulfilment/internal/pkg/guard"
)

var ErrArchiveWarehouseCommandIsNotConstructed = errors.New(
	"ArchiveWarehouseCommand must be created via NewArchiveWarehouseCommand constructor",
)

// ArchiveWarehouseCommand represents a request to take a warehouse terminally
// out of service.
type ArchiveWarehouseCommand struct { //nolint:recvcheck //using for validation
	businessUnitCode string

	guard guard.ConstructorGuard
}

// NewArchiveWarehouseCommand creates a command to archive the warehouse with
// the given business unit code.
func NewArchiveWarehouseCommand(businessUnitCode string) (ArchiveWarehouseCommand, error) {
	command := ArchiveWarehouseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if businessUnitCode == "" {
		return ArchiveWarehouseCommand{}, ErrBusinessUnitCodeIsRequired
	}

	command.businessUnitCode = businessUnitCode
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ArchiveWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrArchiveWarehouseCommandIsNotConstructed)
}

// BusinessUnitCode returns the code of the warehouse to archive.
func (c ArchiveWarehouseCommand) BusinessUnitCode() string {
	return c.businessUnitCode
}
