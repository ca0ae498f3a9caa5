// Package warehouserepo provides data transfer objects and mapping functions
// for warehouse persistence. It implements the repository pattern for the
// warehouse aggregate, converting between domain entities and database rows.
package warehouserepo

import (
	"time"

	"fulfilment/internal/core/domain/model/warehouse"
)

// WarehouseDTO represents the database structure for persisting warehouse
// aggregates. The business unit code carries a unique index: it is the
// aggregate identity and the last line of defence against two concurrent
// creations slipping past the uniqueness check.
type WarehouseDTO struct {
	ID               uint       `gorm:"primaryKey;autoIncrement"`
	BusinessUnitCode string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	Location         string     `gorm:"type:varchar(255);not null;index"`
	Capacity         int        `gorm:"type:int;not null"`
	Stock            *int       `gorm:"type:int"`
	CreatedAt        time.Time  `gorm:"not null"`
	ArchivedAt       *time.Time `gorm:"index"`
}

// TableName specifies the database table name for warehouse entities.
func (WarehouseDTO) TableName() string {
	return "warehouses"
}

// fromDomain converts a warehouse domain aggregate to its database
// representation. The surrogate ID is left zero; GORM fills it on insert.
func fromDomain(aggregate *warehouse.Warehouse) WarehouseDTO {
	return WarehouseDTO{
		BusinessUnitCode: aggregate.BusinessUnitCode(),
		Location:         aggregate.Location(),
		Capacity:         aggregate.Capacity(),
		Stock:            aggregate.Stock(),
		CreatedAt:        aggregate.CreatedAt(),
		ArchivedAt:       aggregate.ArchivedAt(),
	}
}

// toDomain converts a database DTO to a warehouse domain aggregate.
func toDomain(dto WarehouseDTO) (*warehouse.Warehouse, error) {
	return warehouse.RestoreWarehouse(
		dto.BusinessUnitCode,
		dto.Location,
		dto.Capacity,
		dto.Stock,
		dto.CreatedAt,
		dto.ArchivedAt,
	)
}
