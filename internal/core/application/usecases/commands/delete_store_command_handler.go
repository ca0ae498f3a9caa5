package commands

import (
	"context"
)

// DeleteStoreCommandHandler handles store removal.
type DeleteStoreCommandHandler struct {
	uowFactory StoreUoWFactory
}

// NewDeleteStoreCommandHandler creates a handler for store removal.
func NewDeleteStoreCommandHandler(uowFactory StoreUoWFactory) DeleteStoreCommandHandler {
	return DeleteStoreCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the store deletion command.
func (h *DeleteStoreCommandHandler) Handle(ctx context.Context, cmd DeleteStoreCommand) error {
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

	if err := uow.StoreRepository().Remove(ctx, cmd.StoreID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
