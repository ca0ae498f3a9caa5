package commands

import (
	"context"
)

// DeleteProductCommandHandler handles catalogue removals.
type DeleteProductCommandHandler struct {
	uowFactory ProductUoWFactory
	cache      ProductCacheInvalidator
}

// NewDeleteProductCommandHandler creates a handler for catalogue removals.
func NewDeleteProductCommandHandler(
	uowFactory ProductUoWFactory,
	cache ProductCacheInvalidator,
) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle processes the product deletion command.
func (h *DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ProductRepository().Remove(ctx, cmd.ProductID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.cache.InvalidateProducts(ctx)

	return nil
}
