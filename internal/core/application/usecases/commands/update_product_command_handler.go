package commands

import (
	"context"

	"fulfilment/internal/core/domain/model/product"
)

// UpdateProductCommandHandler handles catalogue updates.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	cache      ProductCacheInvalidator
}

// NewUpdateProductCommandHandler creates a handler for catalogue updates.
func NewUpdateProductCommandHandler(
	uowFactory ProductUoWFactory,
	cache ProductCacheInvalidator,
) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle processes the product update command.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*product.Product, error) {
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

	productRepo := uow.ProductRepository()

	aggregate, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Update(cmd.Name(), cmd.Description(), cmd.PriceCents()); err != nil {
		return nil, err
	}

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	_ = h.cache.InvalidateProducts(ctx)

	return aggregate, nil
}
