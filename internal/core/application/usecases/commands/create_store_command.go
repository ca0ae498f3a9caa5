package commands

import (
	"errors"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/pkg/guard"
)

var (
	ErrCreateStoreCommandIsNotConstructed = errors.New(
		"CreateStoreCommand must be created via NewCreateStoreCommand constructor",
	)
	ErrNameIsRequired    = errors.New("name is required")
	ErrQuantityIsInvalid = errors.New("quantityProductsInStock must not be negative")
)

// CreateStoreCommand represents a request to register a new store.
type CreateStoreCommand struct { //nolint:recvcheck //using for validation
	storeID                 kernel.UUID
	name                    string
	quantityProductsInStock int

	guard guard.ConstructorGuard
}

// NewCreateStoreCommand creates a command to register a new store.
// Automatically generates a unique ID for the store.
func NewCreateStoreCommand(name string, quantityProductsInStock int) (CreateStoreCommand, error) {
	command := CreateStoreCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setStoreID(kernel.NewUUID()),
		command.setName(name),
		command.setQuantityProductsInStock(quantityProductsInStock),
	); err != nil {
		return CreateStoreCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateStoreCommand) Validate() error {
	return c.guard.Validate(ErrCreateStoreCommandIsNotConstructed)
}

// StoreID returns the generated store ID.
func (c CreateStoreCommand) StoreID() kernel.UUID {
	return c.storeID
}

// Name returns the store name from the command.
func (c CreateStoreCommand) Name() string {
	return c.name
}

// QuantityProductsInStock returns the reported stock quantity from the command.
func (c CreateStoreCommand) QuantityProductsInStock() int {
	return c.quantityProductsInStock
}

func (c *CreateStoreCommand) setStoreID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.storeID = id
	return nil
}

func (c *CreateStoreCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateStoreCommand) setQuantityProductsInStock(quantity int) error {
	if quantity < 0 {
		return ErrQuantityIsInvalid
	}

	c.quantityProductsInStock = quantity
	return nil
}
