package commands

import (
	"context"

	"fulfilment/internal/core/domain/model/store"
	"fulfilment/internal/core/ports"
)

// CreateStoreCommandHandler handles store registration.
//
// The legacy store manager is notified only after the local transaction has
// committed. A failed notification does not fail the command; the gateway
// owns retrying.
type CreateStoreCommandHandler struct {
	uowFactory    StoreUoWFactory
	legacyGateway ports.LegacyStoreGateway
}

// NewCreateStoreCommandHandler creates a handler for store registration.
func NewCreateStoreCommandHandler(
	uowFactory StoreUoWFactory,
	legacyGateway ports.LegacyStoreGateway,
) CreateStoreCommandHandler {
	return CreateStoreCommandHandler{
		uowFactory:    uowFactory,
		legacyGateway: legacyGateway,
	}
}

// Handle processes the store creation command.
func (h *CreateStoreCommandHandler) Handle(ctx context.Context, cmd CreateStoreCommand) (*store.Store, error) {
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

	aggregate, err := store.NewStore(cmd.StoreID(), cmd.Name(), cmd.QuantityProductsInStock())
	if err != nil {
		return nil, err
	}

	if err = uow.StoreRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	// Post-commit only. The gateway absorbs legacy outages.
	_ = h.legacyGateway.CreateStore(ctx, aggregate)

	return aggregate, nil
}
