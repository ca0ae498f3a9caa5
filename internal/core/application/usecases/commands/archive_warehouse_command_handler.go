package commands

import (
	"context"
	"errors"
	"time"

	"fulfilment/internal/core/domain/model/warehouse"
	"fulfilment/internal/pkg/errs"
)

// ArchiveWarehouseCommandHandler handles warehouse archival.
//
// The warehouse must exist and must not already be archived. On success only
// the archival timestamp is set; every other field keeps its value.
type ArchiveWarehouseCommandHandler struct {
	uowFactory WarehouseUoWFactory
}

// NewArchiveWarehouseCommandHandler creates a handler for warehouse archival.
func NewArchiveWarehouseCommandHandler(uowFactory WarehouseUoWFactory) ArchiveWarehouseCommandHandler {
	return ArchiveWarehouseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the warehouse archival command.
func (h *ArchiveWarehouseCommandHandler) Handle(ctx context.Context, cmd ArchiveWarehouseCommand) error {
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

	warehouseRepo := uow.WarehouseRepository()

	aggregate, err := warehouseRepo.GetByBusinessUnitCode(ctx, cmd.BusinessUnitCode())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return warehouse.NewDoesNotExistError(cmd.BusinessUnitCode())
		}
		return err
	}

	if err = aggregate.Archive(time.Now().UTC()); err != nil {
		return err
	}

	if err = warehouseRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
