// Package http exposes the fulfilment use cases over REST.
// It coordinates between echo handlers and application use cases; the error
// mapping is uniform: not-found lookups become 404, validation failures 400,
// anything else 500.
package http

import (
	"errors"
	"net/http"

	"fulfilment/internal/core/application/usecases/commands"
	"fulfilment/internal/core/application/usecases/queries"
	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/model/warehouse"
	"fulfilment/internal/core/ports"
	"fulfilment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// WarehouseHandlers bundles the warehouse lifecycle use cases.
type WarehouseHandlers struct {
	Create    commands.CreateWarehouseCommandHandler
	Replace   commands.ReplaceWarehouseCommandHandler
	Archive   commands.ArchiveWarehouseCommandHandler
	GetAll    queries.GetAllWarehousesQueryHandler
	GetByCode queries.GetWarehouseByCodeQueryHandler
}

// StoreHandlers bundles the store use cases.
type StoreHandlers struct {
	Create  commands.CreateStoreCommandHandler
	Update  commands.UpdateStoreCommandHandler
	Delete  commands.DeleteStoreCommandHandler
	GetAll  queries.GetAllStoresQueryHandler
	GetByID queries.GetStoreByIDQueryHandler
}

// ProductHandlers bundles the product use cases.
type ProductHandlers struct {
	Create  commands.CreateProductCommandHandler
	Update  commands.UpdateProductCommandHandler
	Delete  commands.DeleteProductCommandHandler
	GetAll  queries.GetAllProductsQueryHandler
	GetByID queries.GetProductByIDQueryHandler
}

// Server implements the REST surface of the back office.
type Server struct {
	warehouses WarehouseHandlers
	stores     StoreHandlers
	products   ProductHandlers
	locations  ports.LocationResolver
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	warehouses WarehouseHandlers,
	stores StoreHandlers,
	products ProductHandlers,
	locations ports.LocationResolver,
) *Server {
	return &Server{
		warehouses: warehouses,
		stores:     stores,
		products:   products,
		locations:  locations,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.GetHealth)

	e.GET("/location", s.GetLocations)

	e.GET("/warehouse", s.GetWarehouses)
	e.POST("/warehouse", s.CreateWarehouse)
	e.GET("/warehouse/:code", s.GetWarehouse)
	e.DELETE("/warehouse/:code", s.ArchiveWarehouse)
	e.POST("/warehouse/:code/replacement", s.ReplaceWarehouse)

	e.GET("/store", s.GetStores)
	e.POST("/store", s.CreateStore)
	e.GET("/store/:id", s.GetStore)
	e.PUT("/store/:id", s.UpdateStore)
	e.DELETE("/store/:id", s.DeleteStore)

	e.GET("/product", s.GetProducts)
	e.POST("/product", s.CreateProduct)
	e.GET("/product/:id", s.GetProduct)
	e.PUT("/product/:id", s.UpdateProduct)
	e.DELETE("/product/:id", s.DeleteProduct)
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetLocations handles GET /location - lists the location directory.
func (s *Server) GetLocations(ctx echo.Context) error {
	all, err := s.locations.GetAll(ctx.Request().Context())
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]LocationResponse, len(all))
	for i, loc := range all {
		response[i] = locationResponseFrom(loc)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetWarehouses handles GET /warehouse - lists every warehouse record,
// archived included.
func (s *Server) GetWarehouses(ctx echo.Context) error {
	warehouses, err := s.warehouses.GetAll.Handle(ctx.Request().Context(), queries.NewGetAllWarehousesQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]WarehouseResponse, len(warehouses))
	for i, w := range warehouses {
		response[i] = warehouseResponseFrom(w)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetWarehouse handles GET /warehouse/:code.
func (s *Server) GetWarehouse(ctx echo.Context) error {
	query, err := queries.NewGetWarehouseByCodeQuery(ctx.Param("code"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	w, err := s.warehouses.GetByCode.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, warehouseResponseFrom(w))
}

// CreateWarehouse handles POST /warehouse.
func (s *Server) CreateWarehouse(ctx echo.Context) error {
	var request WarehouseRequest
	if err := ctx.Bind(&request); err != nil {
		return s.writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateWarehouseCommand(
		request.BusinessUnitCode, request.Location, request.Capacity, request.Stock)
	if err != nil {
		return s.writeError(ctx, err)
	}

	created, err := s.warehouses.Create.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, warehouseResponseFromAggregate(created))
}

// ReplaceWarehouse handles POST /warehouse/:code/replacement. The path code
// and body code must agree; the path names the warehouse being replaced.
func (s *Server) ReplaceWarehouse(ctx echo.Context) error {
	var request WarehouseRequest
	if err := ctx.Bind(&request); err != nil {
		return s.writeBadRequest(ctx, "invalid request body")
	}

	code := ctx.Param("code")
	if request.BusinessUnitCode != code {
		return s.writeBadRequest(ctx, "business unit code in path and body must match")
	}

	cmd, err := commands.NewReplaceWarehouseCommand(
		code, request.Location, request.Capacity, request.Stock)
	if err != nil {
		return s.writeError(ctx, err)
	}

	replaced, err := s.warehouses.Replace.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, warehouseResponseFromAggregate(replaced))
}

// ArchiveWarehouse handles DELETE /warehouse/:code. Absence is a 404 here,
// unlike the embedded existence checks of the other lifecycle operations.
func (s *Server) ArchiveWarehouse(ctx echo.Context) error {
	code := ctx.Param("code")

	cmd, err := commands.NewArchiveWarehouseCommand(code)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.warehouses.Archive.Handle(ctx.Request().Context(), cmd); err != nil {
		if isWarehouseAbsence(err, code) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: err.Error(),
			})
		}
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetStores handles GET /store.
func (s *Server) GetStores(ctx echo.Context) error {
	stores, err := s.stores.GetAll.Handle(ctx.Request().Context(), queries.NewGetAllStoresQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]StoreResponse, len(stores))
	for i, st := range stores {
		response[i] = storeResponseFrom(st)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStore handles GET /store/:id.
func (s *Server) GetStore(ctx echo.Context) error {
	id, err := s.parseID(ctx)
	if err != nil {
		return s.writeBadRequest(ctx, "invalid store id")
	}

	query, err := queries.NewGetStoreByIDQuery(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	st, err := s.stores.GetByID.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, storeResponseFrom(st))
}

// CreateStore handles POST /store.
func (s *Server) CreateStore(ctx echo.Context) error {
	var request StoreRequest
	if err := ctx.Bind(&request); err != nil {
		return s.writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateStoreCommand(request.Name, request.QuantityProductsInStock)
	if err != nil {
		return s.writeError(ctx, err)
	}

	created, err := s.stores.Create.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, StoreResponse{
		ID:                      created.ID().String(),
		Name:                    created.Name(),
		QuantityProductsInStock: created.QuantityProductsInStock(),
	})
}

// UpdateStore handles PUT /store/:id.
func (s *Server) UpdateStore(ctx echo.Context) error {
	id, err := s.parseID(ctx)
	if err != nil {
		return s.writeBadRequest(ctx, "invalid store id")
	}

	var request StoreRequest
	if err := ctx.Bind(&request); err != nil {
		return s.writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateStoreCommand(id, request.Name, request.QuantityProductsInStock)
	if err != nil {
		return s.writeError(ctx, err)
	}

	updated, err := s.stores.Update.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StoreResponse{
		ID:                      updated.ID().String(),
		Name:                    updated.Name(),
		QuantityProductsInStock: updated.QuantityProductsInStock(),
	})
}

// DeleteStore handles DELETE /store/:id.
func (s *Server) DeleteStore(ctx echo.Context) error {
	id, err := s.parseID(ctx)
	if err != nil {
		return s.writeBadRequest(ctx, "invalid store id")
	}

	cmd, err := commands.NewDeleteStoreCommand(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.stores.Delete.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetProducts handles GET /product.
func (s *Server) GetProducts(ctx echo.Context) error {
	products, err := s.products.GetAll.Handle(ctx.Request().Context(), queries.NewGetAllProductsQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = productResponseFrom(p)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetProduct handles GET /product/:id.
func (s *Server) GetProduct(ctx echo.Context) error {
	id, err := s.parseID(ctx)
	if err != nil {
		return s.writeBadRequest(ctx, "invalid product id")
	}

	query, err := queries.NewGetProductByIDQuery(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	p, err := s.products.GetByID.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productResponseFrom(p))
}

// CreateProduct handles POST /product.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var request ProductRequest
	if err := ctx.Bind(&request); err != nil {
		return s.writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateProductCommand(request.Name, request.Description, request.PriceCents)
	if err != nil {
		return s.writeError(ctx, err)
	}

	created, err := s.products.Create.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ProductResponse{
		ID:          created.ID().String(),
		Name:        created.Name(),
		Description: created.Description(),
		PriceCents:  created.PriceCents(),
	})
}

// UpdateProduct handles PUT /product/:id.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	id, err := s.parseID(ctx)
	if err != nil {
		return s.writeBadRequest(ctx, "invalid product id")
	}

	var request ProductRequest
	if err := ctx.Bind(&request); err != nil {
		return s.writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateProductCommand(id, request.Name, request.Description, request.PriceCents)
	if err != nil {
		return s.writeError(ctx, err)
	}

	updated, err := s.products.Update.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ProductResponse{
		ID:          updated.ID().String(),
		Name:        updated.Name(),
		Description: updated.Description(),
		PriceCents:  updated.PriceCents(),
	})
}

// DeleteProduct handles DELETE /product/:id.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	id, err := s.parseID(ctx)
	if err != nil {
		return s.writeBadRequest(ctx, "invalid product id")
	}

	cmd, err := commands.NewDeleteProductCommand(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.products.Delete.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) parseID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func (s *Server) writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps application errors to HTTP status codes. Lifecycle rule
// violations carry client-facing messages and are returned verbatim.
func (s *Server) writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, warehouse.ErrValidation),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "internal server error",
		})
	}
}

// isWarehouseAbsence reports whether the archival failed because no warehouse
// carries the code. The lifecycle engine reports absence as a validation
// failure; the DELETE endpoint surfaces it as 404 instead.
func isWarehouseAbsence(err error, code string) bool {
	var validationErr *warehouse.ValidationError
	if !errors.As(err, &validationErr) {
		return false
	}

	return validationErr.Message == warehouse.NewDoesNotExistError(code).Message
}
