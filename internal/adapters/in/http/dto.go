package http

import (
	"time"

	"fulfilment/internal/core/application/usecases/queries"
	"fulfilment/internal/core/domain/model/location"
	"fulfilment/internal/core/domain/model/warehouse"
)

// Error is the uniform error body of the REST surface.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// WarehouseRequest is the request body for warehouse creation and
// replacement. Capacity and stock are pointers so that an omitted field is
// distinguishable from an explicit zero.
type WarehouseRequest struct {
	BusinessUnitCode string `json:"businessUnitCode"`
	Location         string `json:"location"`
	Capacity         *int   `json:"capacity"`
	Stock            *int   `json:"stock"`
}

// WarehouseResponse is the wire representation of a warehouse record.
type WarehouseResponse struct {
	BusinessUnitCode string     `json:"businessUnitCode"`
	Location         string     `json:"location"`
	Capacity         int        `json:"capacity"`
	Stock            *int       `json:"stock"`
	CreatedAt        time.Time  `json:"createdAt"`
	ArchivedAt       *time.Time `json:"archivedAt,omitempty"`
	Archived         bool       `json:"archived"`
}

// LocationResponse is the wire representation of a location directory entry.
type LocationResponse struct {
	Identification        string `json:"identification"`
	MaxNumberOfWarehouses int    `json:"maxNumberOfWarehouses"`
	MaxCapacity           int    `json:"maxCapacity"`
}

// StoreRequest is the request body for store creation and update.
type StoreRequest struct {
	Name                    string `json:"name"`
	QuantityProductsInStock int    `json:"quantityProductsInStock"`
}

// StoreResponse is the wire representation of a store.
type StoreResponse struct {
	ID                      string `json:"id"`
	Name                    string `json:"name"`
	QuantityProductsInStock int    `json:"quantityProductsInStock"`
}

// ProductRequest is the request body for product creation and update.
type ProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int    `json:"priceCents"`
}

// ProductResponse is the wire representation of a product.
type ProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int    `json:"priceCents"`
}

func warehouseResponseFrom(w queries.WarehouseResponse) WarehouseResponse {
	return WarehouseResponse{
		BusinessUnitCode: w.BusinessUnitCode,
		Location:         w.Location,
		Capacity:         w.Capacity,
		Stock:            w.Stock,
		CreatedAt:        w.CreatedAt,
		ArchivedAt:       w.ArchivedAt,
		Archived:         w.IsArchived(),
	}
}

func warehouseResponseFromAggregate(w *warehouse.Warehouse) WarehouseResponse {
	return WarehouseResponse{
		BusinessUnitCode: w.BusinessUnitCode(),
		Location:         w.Location(),
		Capacity:         w.Capacity(),
		Stock:            w.Stock(),
		CreatedAt:        w.CreatedAt(),
		ArchivedAt:       w.ArchivedAt(),
		Archived:         w.IsArchived(),
	}
}

func locationResponseFrom(loc location.Location) LocationResponse {
	return LocationResponse{
		Identification:        loc.Identification(),
		MaxNumberOfWarehouses: loc.MaxNumberOfWarehouses(),
		MaxCapacity:           loc.MaxCapacity(),
	}
}

func storeResponseFrom(s queries.StoreResponse) StoreResponse {
	return StoreResponse{
		ID:                      s.ID.String(),
		Name:                    s.Name,
		QuantityProductsInStock: s.QuantityProductsInStock,
	}
}

func productResponseFrom(p queries.ProductResponse) ProductResponse {
	return ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		PriceCents:  p.PriceCents,
	}
}
