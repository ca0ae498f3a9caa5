package commands

import (
	"context"
	"errors"
	"time"

	"fulfilment/internal/core/domain/model/warehouse"
	"fulfilment/internal/core/ports"
	"fulfilment/internal/pkg/errs"
)

// ReplaceWarehouseCommandHandler handles warehouse replacement.
//
// The checks run in a fixed order and the first failure wins:
//  1. a warehouse with the code must exist
//  2. it must not be archived
//  3. the candidate location must resolve against the directory
//  4. candidate capacity must be greater than zero
//  5. candidate capacity must accommodate the old warehouse's stock
//  6. candidate stock must equal the old warehouse's stock (nil = 0)
//
// On success the old record is mutated in place: the code survives, the
// operational fields take the candidate's values, and the creation timestamp
// is reset to mark the new generation.
type ReplaceWarehouseCommandHandler struct {
	uowFactory       WarehouseUoWFactory
	locationResolver ports.LocationResolver
}

// NewReplaceWarehouseCommandHandler creates a handler for warehouse replacement.
func NewReplaceWarehouseCommandHandler(
	uowFactory WarehouseUoWFactory,
	locationResolver ports.LocationResolver,
) ReplaceWarehouseCommandHandler {
	return ReplaceWarehouseCommandHandler{
		uowFactory:       uowFactory,
		locationResolver: locationResolver,
	}
}

// Handle processes the warehouse replacement command.
func (h *ReplaceWarehouseCommandHandler) Handle(ctx context.Context, cmd ReplaceWarehouseCommand) (*warehouse.Warehouse, error) {
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

	warehouseRepo := uow.WarehouseRepository()

	aggregate, err := warehouseRepo.GetByBusinessUnitCode(ctx, cmd.BusinessUnitCode())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, warehouse.NewDoesNotExistError(cmd.BusinessUnitCode())
		}
		return nil, err
	}

	if aggregate.IsArchived() {
		return nil, warehouse.NewCannotReplaceArchivedError(cmd.BusinessUnitCode())
	}

	loc, err := h.locationResolver.Resolve(ctx, cmd.Location())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, warehouse.NewInvalidLocationError(cmd.Location())
		}
		return nil, err
	}

	capacity := cmd.Capacity()
	if capacity == nil || *capacity <= 0 {
		return nil, warehouse.NewCapacityRequiredError()
	}

	if err = aggregate.ReplaceWith(loc.Identification(), *capacity, cmd.Stock(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = warehouseRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
