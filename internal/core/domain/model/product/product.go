// Package product provides the Product aggregate: an item of the fulfilment
// assortment. Products are plain catalogue data without lifecycle rules.
package product

import (
	"errors"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through the NewProduct factory method.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrNameIsRequired is returned when attempting to create or rename a
	// product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Product represents a catalogue item. Price is stored in cents to avoid
// floating point money arithmetic.
type Product struct {
	id          kernel.UUID
	name        string
	description string
	priceCents  int

	isConstructed bool
}

// NewProduct creates a new Product.
// The name is required; the price must not be negative. The description may
// be empty.
func NewProduct(id kernel.UUID, name, description string, priceCents int) (*Product, error) {
	product := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setDescription(description),
		product.setPriceCents(priceCents),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate ensures the Product was properly constructed through NewProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the product's description, possibly empty.
func (p *Product) Description() string {
	return p.description
}

// PriceCents returns the product's price in cents.
func (p *Product) PriceCents() int {
	return p.priceCents
}

// Update changes the product's catalogue data, with the same validation as
// construction. On error nothing changes.
func (p *Product) Update(name, description string, priceCents int) error {
	if err := p.Validate(); err != nil {
		return err
	}

	updated := *p
	if err := errors.Join(
		updated.setName(name),
		updated.setDescription(description),
		updated.setPriceCents(priceCents),
	); err != nil {
		return err
	}

	*p = updated
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setDescription(description string) error {
	p.description = description
	return nil
}

func (p *Product) setPriceCents(priceCents int) error {
	if priceCents < 0 {
		return errs.NewValueIsInvalidError("priceCents")
	}
	p.priceCents = priceCents
	return nil
}
