package cmd

import (
	"log/slog"

	httpserver "fulfilment/internal/adapters/in/http"
	"fulfilment/internal/adapters/out/legacy"
	"fulfilment/internal/adapters/out/locations"
	"fulfilment/internal/adapters/out/postgres"
	"fulfilment/internal/adapters/out/productcache"
	"fulfilment/internal/core/application/usecases/commands"
	"fulfilment/internal/core/application/usecases/queries"
	"fulfilment/internal/core/ports"
	"fulfilment/internal/jobs"
	"fulfilment/internal/pkg/cache"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	resolver   ports.LocationResolver
	dispatcher *legacy.Dispatcher
	cache      *productcache.Cache
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	cacheClient cache.Client,
	logger *slog.Logger,
) (CompositionRoot, error) {
	resolver, err := locations.NewDirectory()
	if err != nil {
		return CompositionRoot{}, err
	}

	legacyClient := legacy.NewClient(config.LegacyAPIURL, logger)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		resolver:   resolver,
		dispatcher: legacy.NewDispatcher(legacyClient, logger),
		cache:      productcache.NewCache(cacheClient),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateWarehouseCommandHandler() commands.CreateWarehouseCommandHandler {
	var f commands.WarehouseUoWFactory = FuncWarehouseUoWFactory(func() commands.WarehouseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateWarehouseCommandHandler(f, c.resolver)
}

func (c *CompositionRoot) CreateReplaceWarehouseCommandHandler() commands.ReplaceWarehouseCommandHandler {
	var f commands.WarehouseUoWFactory = FuncWarehouseUoWFactory(func() commands.WarehouseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReplaceWarehouseCommandHandler(f, c.resolver)
}

func (c *CompositionRoot) CreateArchiveWarehouseCommandHandler() commands.ArchiveWarehouseCommandHandler {
	var f commands.WarehouseUoWFactory = FuncWarehouseUoWFactory(func() commands.WarehouseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewArchiveWarehouseCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateStoreCommandHandler() commands.CreateStoreCommandHandler {
	var f commands.StoreUoWFactory = FuncStoreUoWFactory(func() commands.StoreUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateStoreCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateUpdateStoreCommandHandler() commands.UpdateStoreCommandHandler {
	var f commands.StoreUoWFactory = FuncStoreUoWFactory(func() commands.StoreUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateStoreCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateDeleteStoreCommandHandler() commands.DeleteStoreCommandHandler {
	var f commands.StoreUoWFactory = FuncStoreUoWFactory(func() commands.StoreUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteStoreCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f, c.cache)
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProductCommandHandler(f, c.cache)
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteProductCommandHandler(f, c.cache)
}

func (c *CompositionRoot) CreateGetAllWarehousesQueryHandler() queries.GetAllWarehousesQueryHandler {
	return queries.NewGetAllWarehousesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWarehouseByCodeQueryHandler() queries.GetWarehouseByCodeQueryHandler {
	return queries.NewGetWarehouseByCodeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllStoresQueryHandler() queries.GetAllStoresQueryHandler {
	return queries.NewGetAllStoresQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStoreByIDQueryHandler() queries.GetStoreByIDQueryHandler {
	return queries.NewGetStoreByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllProductsQueryHandler() queries.GetAllProductsQueryHandler {
	return queries.NewGetAllProductsQueryHandler(c.gormDB, c.cache)
}

func (c *CompositionRoot) CreateGetProductByIDQueryHandler() queries.GetProductByIDQueryHandler {
	return queries.NewGetProductByIDQueryHandler(c.gormDB)
}

// CreateServer assembles the REST server over the full set of use cases.
func (c *CompositionRoot) CreateServer() *httpserver.Server {
	return httpserver.NewServer(
		httpserver.WarehouseHandlers{
			Create:    c.CreateCreateWarehouseCommandHandler(),
			Replace:   c.CreateReplaceWarehouseCommandHandler(),
			Archive:   c.CreateArchiveWarehouseCommandHandler(),
			GetAll:    c.CreateGetAllWarehousesQueryHandler(),
			GetByCode: c.CreateGetWarehouseByCodeQueryHandler(),
		},
		httpserver.StoreHandlers{
			Create:  c.CreateCreateStoreCommandHandler(),
			Update:  c.CreateUpdateStoreCommandHandler(),
			Delete:  c.CreateDeleteStoreCommandHandler(),
			GetAll:  c.CreateGetAllStoresQueryHandler(),
			GetByID: c.CreateGetStoreByIDQueryHandler(),
		},
		httpserver.ProductHandlers{
			Create:  c.CreateCreateProductCommandHandler(),
			Update:  c.CreateUpdateProductCommandHandler(),
			Delete:  c.CreateDeleteProductCommandHandler(),
			GetAll:  c.CreateGetAllProductsQueryHandler(),
			GetByID: c.CreateGetProductByIDQueryHandler(),
		},
		c.resolver,
	)
}

// CreateJobManager assembles the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.dispatcher, c.logger)
}

type FuncWarehouseUoWFactory func() commands.WarehouseUoW

func (f FuncWarehouseUoWFactory) Create() commands.WarehouseUoW {
	return f()
}

type FuncStoreUoWFactory func() commands.StoreUoW

func (f FuncStoreUoWFactory) Create() commands.StoreUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}
