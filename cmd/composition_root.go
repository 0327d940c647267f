package cmd

import (
	"log/slog"

	httpadapter "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/postgres/catalogrepo"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/userrepo"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/jobs"
	"fooddelivery/internal/realtime"

	"gorm.io/gorm"
)

// CompositionRoot builds handlers and jobs from the shared infrastructure.
// events carries order events to the stream subscribers; notifier is the
// asynchronous publisher the use cases see. audit may be nil.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	notifier   *realtime.Dispatcher
	events     ports.EventBus
	audit      ports.AuditLog
	config     Config
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	events ports.EventBus,
	audit ports.AuditLog,
	logger *slog.Logger,
) (CompositionRoot, error) {
	queueSize, err := config.NotifyQueueSize()
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   realtime.NewDispatcher(events, queueSize, logger),
		events:     events,
		audit:      audit,
		config:     config,
		logger:     logger,
	}, nil
}

// Notifier is started and closed by main around the server lifetime.
func (c *CompositionRoot) Notifier() *realtime.Dispatcher {
	return c.notifier
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	h := commands.NewCreateOrderCommandHandler(f, c.notifier, c.audit, c.logger)
	return &h
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() *commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewUpdateOrderStatusCommandHandler(f, c.notifier, c.audit, c.logger)
	return &h
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() *commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewCancelOrderCommandHandler(f, c.notifier, c.audit, c.logger)
	return &h
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() *commands.CreateUserCommandHandler {
	h := commands.NewCreateUserCommandHandler(c.catalogUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCreateRestaurantCommandHandler() *commands.CreateRestaurantCommandHandler {
	h := commands.NewCreateRestaurantCommandHandler(c.catalogUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() *commands.CreateMenuItemCommandHandler {
	h := commands.NewCreateMenuItemCommandHandler(c.catalogUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orders())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orders())
}

func (c *CompositionRoot) CreateGetOrderAnalyticsQueryHandler() queries.GetOrderAnalyticsQueryHandler {
	return queries.NewGetOrderAnalyticsQueryHandler(c.orders())
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.orders(), c.audit)
}

func (c *CompositionRoot) CreateGetUserQueryHandler() queries.GetUserQueryHandler {
	return queries.NewGetUserQueryHandler(userrepo.NewGormUserRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetRestaurantQueryHandler() queries.GetRestaurantQueryHandler {
	return queries.NewGetRestaurantQueryHandler(c.restaurants())
}

func (c *CompositionRoot) CreateListRestaurantsQueryHandler() queries.ListRestaurantsQueryHandler {
	return queries.NewListRestaurantsQueryHandler(c.restaurants())
}

func (c *CompositionRoot) CreateGetMenuItemQueryHandler() queries.GetMenuItemQueryHandler {
	return queries.NewGetMenuItemQueryHandler(c.menuItems())
}

func (c *CompositionRoot) CreateListMenuQueryHandler() queries.ListMenuQueryHandler {
	return queries.NewListMenuQueryHandler(c.restaurants(), c.menuItems())
}

// CreateHTTPServer wires every use case into the REST adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateUser:        c.CreateCreateUserCommandHandler(),
		CreateRestaurant:  c.CreateCreateRestaurantCommandHandler(),
		CreateMenuItem:    c.CreateCreateMenuItemCommandHandler(),
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
		CancelOrder:       c.CreateCancelOrderCommandHandler(),

		GetUser:         c.CreateGetUserQueryHandler(),
		GetRestaurant:   c.CreateGetRestaurantQueryHandler(),
		ListRestaurants: c.CreateListRestaurantsQueryHandler(),
		GetMenuItem:     c.CreateGetMenuItemQueryHandler(),
		ListMenu:        c.CreateListMenuQueryHandler(),
		GetOrder:        c.CreateGetOrderQueryHandler(),
		ListOrders:      c.CreateListOrdersQueryHandler(),
		OrderAnalytics:  c.CreateGetOrderAnalyticsQueryHandler(),
		OrderHistory:    c.CreateGetOrderHistoryQueryHandler(),
	}, c.events, c.logger)
}

func (c *CompositionRoot) CreateDelayedOrderJob() *jobs.DelayedOrderJob {
	return jobs.NewDelayedOrderJob(c.orders(), c.notifier, c.config.DelayedOrderSchedule, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateDelayedOrderJob())
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orders() *orderrepo.GormOrderRepository {
	return orderrepo.NewGormOrderRepository(c.gormDB)
}

func (c *CompositionRoot) restaurants() *catalogrepo.GormRestaurantRepository {
	return catalogrepo.NewGormRestaurantRepository(c.gormDB)
}

func (c *CompositionRoot) menuItems() *catalogrepo.GormMenuItemRepository {
	return catalogrepo.NewGormMenuItemRepository(c.gormDB)
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
