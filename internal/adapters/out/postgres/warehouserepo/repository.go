package warehouserepo

import (
	"context"
	"errors"

	"fulfilment/internal/core/domain/model/warehouse"
	"fulfilment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormWarehouseRepository implements ports.WarehouseRepository using GORM.
type GormWarehouseRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormWarehouseRepository creates a new GORM warehouse repository.
func NewGormWarehouseRepository(db *gorm.DB, tracker aggregateTracker) *GormWarehouseRepository {
	return &GormWarehouseRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new warehouse to the database.
func (r *GormWarehouseRepository) Add(ctx context.Context, aggregate *warehouse.Warehouse) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.BusinessUnitCode(), aggregate)
	return nil
}

// Update saves an existing warehouse to the database. The record is addressed
// by business unit code; replacements and archival mutate it in place.
func (r *GormWarehouseRepository) Update(ctx context.Context, aggregate *warehouse.Warehouse) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	// A map keeps NULL writable: Updates with a struct would skip a nil
	// stock and a nil archived_at instead of clearing them.
	result := r.db.WithContext(ctx).
		Model(&WarehouseDTO{}).
		Where("business_unit_code = ?", aggregate.BusinessUnitCode()).
		Updates(map[string]any{
			"location":    aggregate.Location(),
			"capacity":    aggregate.Capacity(),
			"stock":       aggregate.Stock(),
			"created_at":  aggregate.CreatedAt(),
			"archived_at": aggregate.ArchivedAt(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.BusinessUnitCode(), aggregate)
	return nil
}

// GetByBusinessUnitCode retrieves a warehouse by its business unit code,
// archived or not.
func (r *GormWarehouseRepository) GetByBusinessUnitCode(
	ctx context.Context, businessUnitCode string,
) (*warehouse.Warehouse, error) {
	if businessUnitCode == "" {
		return nil, warehouse.ErrBusinessUnitCodeIsRequired
	}

	var dto WarehouseDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "business_unit_code = ?", businessUnitCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("businessUnitCode", businessUnitCode)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every warehouse record, archived included, ordered by
// business unit code.
func (r *GormWarehouseRepository) GetAll(ctx context.Context) ([]*warehouse.Warehouse, error) {
	var dtos []WarehouseDTO
	if err := r.db.WithContext(ctx).
		Order("business_unit_code").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetActiveByLocation retrieves the non-archived warehouses placed at the
// given location. Archived warehouses stop counting against the location's
// warehouse and capacity limits the moment they are archived.
func (r *GormWarehouseRepository) GetActiveByLocation(
	ctx context.Context, locationID string,
) ([]*warehouse.Warehouse, error) {
	var dtos []WarehouseDTO
	if err := r.db.WithContext(ctx).
		Where("location = ? AND archived_at IS NULL", locationID).
		Order("business_unit_code").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []WarehouseDTO) ([]*warehouse.Warehouse, error) {
	warehouses := make([]*warehouse.Warehouse, 0, len(dtos))
	for _, dto := range dtos {
		w, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		warehouses = append(warehouses, w)
	}

	return warehouses, nil
}
