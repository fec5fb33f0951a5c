package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	inhttp "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/http/identity"
	"dispatch/internal/adapters/out/http/notifier"
	"dispatch/internal/adapters/out/http/orderstore"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"
)

// CompositionRoot wires adapters into application handlers.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory

	orderStore     ports.OrderStore
	identitySource ports.IdentitySource
	notifier       ports.Notifier

	logger *slog.Logger
}

// NewCompositionRoot builds the object graph from config. The outbound HTTP
// clients use default timeouts.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	orderStoreClient, err := orderstore.NewClient(config.OrderServiceURL, nil)
	if err != nil {
		return nil, err
	}

	identityClient, err := identity.NewClient(config.AuthServiceURL, nil)
	if err != nil {
		return nil, err
	}

	notifierClient, err := notifier.NewClient(
		config.NotificationServiceURL, config.NotificationAPIKey, nil)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     postgres.NewGormUnitOfWorkFactory(gormDB),
		orderStore:     orderStoreClient,
		identitySource: identityClient,
		notifier:       notifierClient,
		logger:         logger,
	}, nil
}

func (c *CompositionRoot) driverUoWFactory() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateReportLocationCommandHandler() commands.ReportLocationCommandHandler {
	return commands.NewReportLocationCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateSyncDriversCommandHandler() commands.SyncDriversCommandHandler {
	return commands.NewSyncDriversCommandHandler(c.driverUoWFactory(), c.identitySource, c.logger)
}

func (c *CompositionRoot) CreateAssignDriversCommandHandler() commands.AssignDriversCommandHandler {
	return commands.NewAssignDriversCommandHandler(
		c.driverUoWFactory(), c.orderStore, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	return commands.NewAssignDriverCommandHandler(
		c.driverUoWFactory(), c.orderStore, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderStore)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(
		c.fullUoWFactory(), c.orderStore, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(
		c.driverUoWFactory(), c.orderStore, c.logger)
}

func (c *CompositionRoot) CreateSendNotificationCommandHandler() commands.SendNotificationCommandHandler {
	return commands.NewSendNotificationCommandHandler(c.notifier)
}

func (c *CompositionRoot) CreateGetAllDriversQueryHandler() queries.GetAllDriversQueryHandler {
	return queries.NewGetAllDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersForRoleQueryHandler() queries.GetOrdersForRoleQueryHandler {
	return queries.NewGetOrdersForRoleQueryHandler(c.orderStore)
}

func (c *CompositionRoot) CreateGetCompletedOrdersQueryHandler() queries.GetCompletedOrdersQueryHandler {
	return queries.NewGetCompletedOrdersQueryHandler(c.orderStore)
}

// CreateHTTPHandlers bundles every handler the HTTP server routes to.
func (c *CompositionRoot) CreateHTTPHandlers() inhttp.Handlers {
	return inhttp.Handlers{
		ReportLocation:    c.CreateReportLocationCommandHandler(),
		SyncDrivers:       c.CreateSyncDriversCommandHandler(),
		AssignDrivers:     c.CreateAssignDriversCommandHandler(),
		AssignDriver:      c.CreateAssignDriverCommandHandler(),
		UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
		CancelOrder:       c.CreateCancelOrderCommandHandler(),
		CompleteDelivery:  c.CreateCompleteDeliveryCommandHandler(),
		SendNotification:  c.CreateSendNotificationCommandHandler(),

		GetAllDrivers:      c.CreateGetAllDriversQueryHandler(),
		GetOrdersForRole:   c.CreateGetOrdersForRoleQueryHandler(),
		GetCompletedOrders: c.CreateGetCompletedOrdersQueryHandler(),
	}
}

// CreateJobManager wires the background sweeps.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateAssignDriversCommandHandler(),
		c.CreateSyncDriversCommandHandler(),
		c.logger,
	)
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
