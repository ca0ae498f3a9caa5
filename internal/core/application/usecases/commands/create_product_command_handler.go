package commands

import (
	"context"

	"fulfilment/internal/core/domain/model/product"
)

// ProductCacheInvalidator drops cached product listings after a mutation so
// readers never serve a stale catalogue.
type ProductCacheInvalidator interface {
	InvalidateProducts(ctx context.Context) error
}

// CreateProductCommandHandler handles catalogue additions.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	cache      ProductCacheInvalidator
}

// NewCreateProductCommandHandler creates a handler for catalogue additions.
func NewCreateProductCommandHandler(
	uowFactory ProductUoWFactory,
	cache ProductCacheInvalidator,
) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle processes the product creation command.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := product.NewProduct(cmd.ProductID(), cmd.Name(), cmd.Description(), cmd.PriceCents())
	if err != nil {
		return nil, err
	}

	if err = uow.ProductRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	// Readers fall back to the database when invalidation fails.
	_ = h.cache.InvalidateProducts(ctx)

	return aggregate, nil
}
