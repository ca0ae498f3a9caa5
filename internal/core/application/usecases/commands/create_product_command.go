package commands

import (
	"errors"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrPriceIsInvalid = errors.New("priceCents must not be negative")
)

// CreateProductCommand represents a request to add a product to the catalogue.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	description string
	priceCents  int

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a new product.
// Automatically generates a unique ID for the product.
func NewCreateProductCommand(name, description string, priceCents int) (CreateProductCommand, error) {
	command := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(kernel.NewUUID()),
		command.setName(name),
		command.setPriceCents(priceCents),
	); err != nil {
		return CreateProductCommand{}, err
	}

	command.description = description
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the generated product ID.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product name from the command.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the product description from the command.
func (c CreateProductCommand) Description() string {
	return c.description
}

// PriceCents returns the product price in cents from the command.
func (c CreateProductCommand) PriceCents() int {
	return c.priceCents
}

func (c *CreateProductCommand) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.productID = id
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setPriceCents(priceCents int) error {
	if priceCents < 0 {
		return ErrPriceIsInvalid
	}

	c.priceCents = priceCents
	return nil
}
