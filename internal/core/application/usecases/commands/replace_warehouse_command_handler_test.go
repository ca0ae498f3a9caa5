package commands_test

import (
	"testing"
	"time"

	"fulfilment/internal/core/application/usecases/commands"
	"fulfilment/internal/core/domain/model/location"
	"fulfilment/internal/core/domain/model/warehouse"
	"fulfilment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReplaceWarehouseCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewReplaceWarehouseCommand("MWH.001", "AMSTERDAM-001", intPtr(50), intPtr(10))
	require.NoError(t, err)

	old, err := warehouse.RestoreWarehouse(
		"MWH.001", "ZWOLLE-001", 30, intPtr(10), time.Now().UTC().Add(-24*time.Hour), nil)
	require.NoError(t, err)
	previousCreatedAt := old.CreatedAt()

	mockRepo := new(MockWarehouseRepository)
	mockUoW := new(MockWarehouseUoW)
	mockFactory := new(MockWarehouseUoWFactory)
	mockResolver := new(MockLocationResolver)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("WarehouseRepository").Return(mockRepo).Once(),
		mockRepo.On("GetByBusinessUnitCode", ctx, "MWH.001").Return(old, nil).Once(),
		mockResolver.On("Resolve", ctx, "AMSTERDAM-001").
			Return(mustLocation(t, "AMSTERDAM-001", 5, 100), nil).Once(),
		mockRepo.On("Update", ctx, old).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewReplaceWarehouseCommandHandler(mockFactory, mockResolver)

	// Act
	result, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.Same(t, old, result, "replacement mutates the existing record in place")
	assert.Equal(t, "MWH.001", result.BusinessUnitCode())
	assert.Equal(t, "AMSTERDAM-001", result.Location())
	assert.Equal(t, 50, result.Capacity())
	assert.Equal(t, 10, result.StockOrZero())
	assert.Nil(t, result.ArchivedAt())
	assert.True(t, result.CreatedAt().After(previousCreatedAt), "replacement starts a new generation")

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
	mockResolver.AssertExpectations(t)
}

func TestReplaceWarehouseCommandHandler_Handle_DoesNotExist(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReplaceWarehouseCommand("MWH.404", "AMSTERDAM-001", intPtr(50), nil)
	require.NoError(t, err)

	mockRepo := new(MockWarehouseRepository)
	mockUoW := new(MockWarehouseUoW)
	mockFactory := new(MockWarehouseUoWFactory)
	mockResolver := new(MockLocationResolver)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("WarehouseRepository").Return(mockRepo).Once(),
		mockRepo.On("GetByBusinessUnitCode", ctx, "MWH.404").Return(nil, notFound("MWH.404")).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewReplaceWarehouseCommandHandler(mockFactory, mockResolver)

	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, warehouse.ErrValidation)
	assert.EqualError(t, err, "warehouse with business unit code MWH.404 does not exist")
	mockResolver.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
}

func TestReplaceWarehouseCommandHandler_Handle_Archived(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReplaceWarehouseCommand("MWH.001", "AMSTERDAM-001", intPtr(50), nil)
	require.NoError(t, err)

	archived := mustArchivedWarehouse(t, "MWH.001", "ZWOLLE-001", 30, nil)

	mockRepo := new(MockWarehouseRepository)
	mockUoW := new(MockWarehouseUoW)
	mockFactory := new(MockWarehouseUoWFactory)
	mockResolver := new(MockLocationResolver)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("WarehouseRepository").Return(mockRepo).Once(),
		mockRepo.On("GetByBusinessUnitCode", ctx, "MWH.001").Return(archived, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewReplaceWarehouseCommandHandler(mockFactory, mockResolver)

	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.EqualError(t, err, "cannot replace archived warehouse with business unit code MWH.001")
	mockResolver.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestReplaceWarehouseCommandHandler_Handle_UnknownLocation(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReplaceWarehouseCommand("MWH.001", "NOWHERE-001", intPtr(50), nil)
	require.NoError(t, err)

	old := mustWarehouse(t, "MWH.001", "ZWOLLE-001", 30, nil)

	mockRepo := new(MockWarehouseRepository)
	mockUoW := new(MockWarehouseUoW)
	mockFactory := new(MockWarehouseUoWFactory)
	mockResolver := new(MockLocationResolver)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("WarehouseRepository").Return(mockRepo).Once(),
		mockRepo.On("GetByBusinessUnitCode", ctx, "MWH.001").Return(old, nil).Once(),
		mockResolver.On("Resolve", ctx, "NOWHERE-001").
			Return(location.Location{}, errs.NewObjectNotFoundError("identifier", "NOWHERE-001")).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewReplaceWarehouseCommandHandler(mockFactory, mockResolver)

	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.EqualError(t, err, "location NOWHERE-001 is not a valid location")
}

func TestReplaceWarehouseCommandHandler_Handle_CapacityBelowOldStock(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReplaceWarehouseCommand("MWH.001", "AMSTERDAM-001", intPtr(700), intPtr(800))
	require.NoError(t, err)

	old := mustWarehouse(t, "MWH.001", "AMSTERDAM-001", 1000, intPtr(800))

	mockRepo := new(MockWarehouseRepository)
	mockUoW := new(MockWarehouseUoW)
	mockFactory := new(MockWarehouseUoWFactory)
	mockResolver := new(MockLocationResolver)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("WarehouseRepository").Return(mockRepo).Once(),
		mockRepo.On("GetByBusinessUnitCode", ctx, "MWH.001").Return(old, nil).Once(),
		mockResolver.On("Resolve", ctx, "AMSTERDAM-001").
			Return(mustLocation(t, "AMSTERDAM-001", 5, 2000), nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewReplaceWarehouseCommandHandler(mockFactory, mockResolver)

	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.EqualError(t, err, "new warehouse capacity (700) cannot accommodate stock from old warehouse (800)")
	assert.Equal(t, 1000, old.Capacity(), "failed replacement must not mutate the record")
}

func TestReplaceWarehouseCommandHandler_Handle_StockMismatch(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReplaceWarehouseCommand("MWH.001", "AMSTERDAM-001", intPtr(1000), intPtr(600))
	require.NoError(t, err)

	old := mustWarehouse(t, "MWH.001", "AMSTERDAM-001", 1000, intPtr(500))

	mockRepo := new(MockWarehouseRepository)
	mockUoW := new(MockWarehouseUoW)
	mockFactory := new(MockWarehouseUoWFactory)
	mockResolver := new(MockLocationResolver)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("WarehouseRepository").Return(mockRepo).Once(),
		mockRepo.On("GetByBusinessUnitCode", ctx, "MWH.001").Return(old, nil).Once(),
		mockResolver.On("Resolve", ctx, "AMSTERDAM-001").
			Return(mustLocation(t, "AMSTERDAM-001", 5, 2000), nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewReplaceWarehouseCommandHandler(mockFactory, mockResolver)

	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.EqualError(t, err, "new warehouse stock (600) must match the old warehouse stock (500)")
	assert.Equal(t, 500, old.StockOrZero(), "failed replacement must not mutate the record")
}

func TestReplaceWarehouseCommandHandler_Handle_MissingCapacity(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReplaceWarehouseCommand("MWH.001", "AMSTERDAM-001", nil, nil)
	require.NoError(t, err)

	old := mustWarehouse(t, "MWH.001", "AMSTERDAM-001", 30, nil)

	mockRepo := new(MockWarehouseRepository)
	mockUoW := new(MockWarehouseUoW)
	mockFactory := new(MockWarehouseUoWFactory)
	mockResolver := new(MockLocationResolver)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("WarehouseRepository").Return(mockRepo).Once(),
		mockRepo.On("GetByBusinessUnitCode", ctx, "MWH.001").Return(old, nil).Once(),
		mockResolver.On("Resolve", ctx, "AMSTERDAM-001").
			Return(mustLocation(t, "AMSTERDAM-001", 5, 100), nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewReplaceWarehouseCommandHandler(mockFactory, mockResolver)

	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.EqualError(t, err, "warehouse capacity must be greater than zero")
}

func TestReplaceWarehouseCommandHandler_Handle_NilStockBothSides(t *testing.T) {
	// nil stock is treated as zero on both the old record and the candidate.
	ctx := t.Context()
	cmd, err := commands.NewReplaceWarehouseCommand("MWH.001", "AMSTERDAM-001", intPtr(40), nil)
	require.NoError(t, err)

	old := mustWarehouse(t, "MWH.001", "ZWOLLE-001", 30, nil)

	mockRepo := new(MockWarehouseRepository)
	mockUoW := new(MockWarehouseUoW)
	mockFactory := new(MockWarehouseUoWFactory)
	mockResolver := new(MockLocationResolver)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("WarehouseRepository").Return(mockRepo).Once(),
		mockRepo.On("GetByBusinessUnitCode", ctx, "MWH.001").Return(old, nil).Once(),
		mockResolver.On("Resolve", ctx, "AMSTERDAM-001").
			Return(mustLocation(t, "AMSTERDAM-001", 5, 100), nil).Once(),
		mockRepo.On("Update", ctx, old).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewReplaceWarehouseCommandHandler(mockFactory, mockResolver)

	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 0, result.StockOrZero())
	assert.Equal(t, 40, result.Capacity())
}

func TestArchiveWarehouseCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewArchiveWarehouseCommand("MWH.001")
	require.NoError(t, err)

	active := mustWarehouse(t, "MWH.001", "ZWOLLE-001", 30, intPtr(10))
	createdAt := active.CreatedAt()

	mockRepo := new(MockWarehouseRepository)
	mockUoW := new(MockWarehouseUoW)
	mockFactory := new(MockWarehouseUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("WarehouseRepository").Return(mockRepo).Once(),
		mockRepo.On("GetByBusinessUnitCode", ctx, "MWH.001").Return(active, nil).Once(),
		mockRepo.On("Update", ctx, active).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewArchiveWarehouseCommandHandler(mockFactory)

	// Act
	start := time.Now().UTC()
	err = handler.Handle(ctx, cmd)
	end := time.Now().UTC()

	// Assert
	require.NoError(t, err)
	require.True(t, active.IsArchived())
	archivedAt := active.ArchivedAt()
	require.NotNil(t, archivedAt)
	assert.False(t, archivedAt.Before(start))
	assert.False(t, archivedAt.After(end))

	// Archival touches nothing but the timestamp.
	assert.Equal(t, "ZWOLLE-001", active.Location())
	assert.Equal(t, 30, active.Capacity())
	assert.Equal(t, 10, active.StockOrZero())
	assert.Equal(t, createdAt, active.CreatedAt())

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestArchiveWarehouseCommandHandler_Handle_DoesNotExist(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewArchiveWarehouseCommand("MWH.404")
	require.NoError(t, err)

	mockRepo := new(MockWarehouseRepository)
	mockUoW := new(MockWarehouseUoW)
	mockFactory := new(MockWarehouseUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("WarehouseRepository").Return(mockRepo).Once(),
		mockRepo.On("GetByBusinessUnitCode", ctx, "MWH.404").Return(nil, notFound("MWH.404")).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewArchiveWarehouseCommandHandler(mockFactory)

	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, warehouse.ErrValidation)
	assert.EqualError(t, err, "warehouse with business unit code MWH.404 does not exist")
}

func TestArchiveWarehouseCommandHandler_Handle_AlreadyArchived(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewArchiveWarehouseCommand("MWH.001")
	require.NoError(t, err)

	archived := mustArchivedWarehouse(t, "MWH.001", "ZWOLLE-001", 30, nil)

	mockRepo := new(MockWarehouseRepository)
	mockUoW := new(MockWarehouseUoW)
	mockFactory := new(MockWarehouseUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("WarehouseRepository").Return(mockRepo).Once(),
		mockRepo.On("GetByBusinessUnitCode", ctx, "MWH.001").Return(archived, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewArchiveWarehouseCommandHandler(mockFactory)

	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.EqualError(t, err, "warehouse with business unit code MWH.001 is already archived")
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
