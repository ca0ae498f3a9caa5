package commands

import (
	"errors"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/pkg/guard"
)

var ErrUpdateStoreCommandIsNotConstructed = errors.New(
	"UpdateStoreCommand must be created via NewUpdateStoreCommand constructor",
)

// UpdateStoreCommand represents a request to change a store's name or
// reported stock quantity.
type UpdateStoreCommand struct { //nolint:recvcheck //using for validation
	storeID                 kernel.UUID
	name                    string
	quantityProductsInStock int

	guard guard.ConstructorGuard
}

// NewUpdateStoreCommand creates a command to update an existing store.
func NewUpdateStoreCommand(storeID kernel.UUID, name string, quantityProductsInStock int) (UpdateStoreCommand, error) {
	command := UpdateStoreCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setStoreID(storeID),
		command.setName(name),
		command.setQuantityProductsInStock(quantityProductsInStock),
	); err != nil {
		return UpdateStoreCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateStoreCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStoreCommandIsNotConstructed)
}

// StoreID returns the ID of the store to update.
func (c UpdateStoreCommand) StoreID() kernel.UUID {
	return c.storeID
}

// Name returns the new store name.
func (c UpdateStoreCommand) Name() string {
	return c.name
}

// QuantityProductsInStock returns the new reported stock quantity.
func (c UpdateStoreCommand) QuantityProductsInStock() int {
	return c.quantityProductsInStock
}

func (c *UpdateStoreCommand) setStoreID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.storeID = id
	return nil
}

func (c *UpdateStoreCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateStoreCommand) setQuantityProductsInStock(quantity int) error {
	if quantity < 0 {
		return ErrQuantityIsInvalid
	}

	c.quantityProductsInStock = quantity
	return nil
}
