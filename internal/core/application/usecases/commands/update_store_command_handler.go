package commands

import (
	"context"

	"fulfilment/internal/core/domain/model/store"
	"fulfilment/internal/core/ports"
)

// UpdateStoreCommandHandler handles store updates, mirroring the change to
// the legacy store manager after commit.
type UpdateStoreCommandHandler struct {
	uowFactory    StoreUoWFactory
	legacyGateway ports.LegacyStoreGateway
}

// NewUpdateStoreCommandHandler creates a handler for store updates.
func NewUpdateStoreCommandHandler(
	uowFactory StoreUoWFactory,
	legacyGateway ports.LegacyStoreGateway,
) UpdateStoreCommandHandler {
	return UpdateStoreCommandHandler{
		uowFactory:    uowFactory,
		legacyGateway: legacyGateway,
	}
}

// Handle processes the store update command.
func (h *UpdateStoreCommandHandler) Handle(ctx context.Context, cmd UpdateStoreCommand) (*store.Store, error) {
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

	storeRepo := uow.StoreRepository()

	aggregate, err := storeRepo.Get(ctx, cmd.StoreID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Update(cmd.Name(), cmd.QuantityProductsInStock()); err != nil {
		return nil, err
	}

	if err = storeRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	// Post-commit only. The gateway absorbs legacy outages.
	_ = h.legacyGateway.UpdateStore(ctx, aggregate)

	return aggregate, nil
}
