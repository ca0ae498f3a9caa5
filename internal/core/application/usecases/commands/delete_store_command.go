package commands

import (
	"errors"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/pkg/guard"
)

var ErrDeleteStoreCommandIsNotConstructed = errors.New(
	"DeleteStoreCommand must be created via NewDeleteStoreCommand constructor",
)

// DeleteStoreCommand represents a request to remove a store.
// Deletions are not mirrored to the legacy store manager; the legacy system
// keeps its own record of closed stores.
type DeleteStoreCommand struct { //nolint:recvcheck //using for validation
	storeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteStoreCommand creates a command to delete the store with the given ID.
func NewDeleteStoreCommand(storeID kernel.UUID) (DeleteStoreCommand, error) {
	command := DeleteStoreCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := storeID.Validate(); err != nil {
		return DeleteStoreCommand{}, err
	}

	command.storeID = storeID
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteStoreCommand) Validate() error {
	return c.guard.Validate(ErrDeleteStoreCommandIsNotConstructed)
}

// StoreID returns the ID of the store to delete.
func (c DeleteStoreCommand) StoreID() kernel.UUID {
	return c.storeID
}
