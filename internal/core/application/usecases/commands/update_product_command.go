package commands

import (
	"errors"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents a request to change a product's catalogue data.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	description string
	priceCents  int

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to update an existing product.
func NewUpdateProductCommand(productID kernel.UUID, name, description string, priceCents int) (UpdateProductCommand, error) {
	command := UpdateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(productID),
		command.setName(name),
		command.setPriceCents(priceCents),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	command.description = description
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the ID of the product to update.
func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the new product name.
func (c UpdateProductCommand) Name() string {
	return c.name
}

// Description returns the new product description.
func (c UpdateProductCommand) Description() string {
	return c.description
}

// PriceCents returns the new product price in cents.
func (c UpdateProductCommand) PriceCents() int {
	return c.priceCents
}

func (c *UpdateProductCommand) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.productID = id
	return nil
}

func (c *UpdateProductCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateProductCommand) setPriceCents(priceCents int) error {
	if priceCents < 0 {
		return ErrPriceIsInvalid
	}

	c.priceCents = priceCents
	return nil
}
