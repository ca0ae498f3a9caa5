package commands

import (
	"context"
	"errors"
	"time"

	"fulfilment/internal/core/domain/model/warehouse"
	"fulfilment/internal/core/ports"
	"fulfilment/internal/pkg/errs"
)

// CreateWarehouseCommandHandler handles warehouse registration.
//
// The checks run in a fixed order and the first failure wins:
//  1. no warehouse with the code may exist, archived or not
//  2. the location must resolve against the directory
//  3. the location must have room for one more active warehouse
//  4. capacity must be present and greater than zero
//  5. the active capacity sum at the location plus the candidate's capacity
//     must stay within the location's budget
//  6. stock, when present, must not exceed capacity
//
// Archived warehouses are invisible to checks 3 and 5 but still block check 1.
type CreateWarehouseCommandHandler struct {
	uowFactory       WarehouseUoWFactory
	locationResolver ports.LocationResolver
}

// NewCreateWarehouseCommandHandler creates a handler for warehouse registration.
func NewCreateWarehouseCommandHandler(
	uowFactory WarehouseUoWFactory,
	locationResolver ports.LocationResolver,
) CreateWarehouseCommandHandler {
	return CreateWarehouseCommandHandler{
		uowFactory:       uowFactory,
		locationResolver: locationResolver,
	}
}

// Handle processes the warehouse creation command.
// The validation sequence and the single repository write run inside one
// transaction; any error rolls everything back.
func (h *CreateWarehouseCommandHandler) Handle(ctx context.Context, cmd CreateWarehouseCommand) (*warehouse.Warehouse, error) {
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

	_, err := warehouseRepo.GetByBusinessUnitCode(ctx, cmd.BusinessUnitCode())
	switch {
	case err == nil:
		return nil, warehouse.NewAlreadyExistsError(cmd.BusinessUnitCode())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	loc, err := h.locationResolver.Resolve(ctx, cmd.Location())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, warehouse.NewInvalidLocationError(cmd.Location())
		}
		return nil, err
	}

	active, err := warehouseRepo.GetActiveByLocation(ctx, loc.Identification())
	if err != nil {
		return nil, err
	}

	if len(active) >= loc.MaxNumberOfWarehouses() {
		return nil, warehouse.NewMaxWarehousesReachedError(loc.MaxNumberOfWarehouses(), loc.Identification())
	}

	capacity := cmd.Capacity()
	if capacity == nil || *capacity <= 0 {
		return nil, warehouse.NewCapacityRequiredError()
	}

	currentTotal := 0
	for _, w := range active {
		currentTotal += w.Capacity()
	}
	if currentTotal+*capacity > loc.MaxCapacity() {
		return nil, warehouse.NewCapacityBudgetExceededError(
			loc.Identification(), loc.MaxCapacity(), currentTotal, *capacity)
	}

	if stock := cmd.Stock(); stock != nil && *stock > *capacity {
		return nil, warehouse.NewStockExceedsCapacityError(*stock, *capacity)
	}

	aggregate, err := warehouse.NewWarehouse(
		cmd.BusinessUnitCode(), loc.Identification(), *capacity, cmd.Stock(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = warehouseRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
