package cmd

import (
	"log/slog"

	httpadapter "plasmashipping/internal/adapters/in/http"
	"plasmashipping/internal/adapters/out/inventoryhttp"
	"plasmashipping/internal/adapters/out/kafka"
	"plasmashipping/internal/adapters/out/postgres"
	"plasmashipping/internal/adapters/out/postgres/criteriarepo"
	"plasmashipping/internal/adapters/out/postgres/customerrepo"
	"plasmashipping/internal/adapters/out/postgres/locationrepo"
	"plasmashipping/internal/adapters/out/postgres/sysproprepo"
	"plasmashipping/internal/core/application/usecases/commands"
	"plasmashipping/internal/core/application/usecases/queries"
	"plasmashipping/internal/core/domain/services"
	"plasmashipping/internal/core/ports"
	"plasmashipping/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	locations  *locationrepo.GormLocationRepository
	customers  *customerrepo.GormCustomerRepository
	criteria   *criteriarepo.GormCriteriaRepository
	sysprops   *sysproprepo.GormSyspropRepository
	publisher  *kafka.Publisher
	inventory  *inventoryhttp.Client
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) (*CompositionRoot, error) {
	publisher, err := kafka.NewPublisher(configs.KafkaHost, configs.KafkaShipmentEventsTopic)
	if err != nil {
		return nil, err
	}

	inventoryClient, err := inventoryhttp.NewClient(configs.InventoryServiceURL)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		locations:  locationrepo.NewGormLocationRepository(gormDB),
		customers:  customerrepo.NewGormCustomerRepository(gormDB),
		criteria:   criteriarepo.NewGormCriteriaRepository(gormDB),
		sysprops:   sysproprepo.NewGormSyspropRepository(gormDB),
		publisher:  publisher,
		inventory:  inventoryClient,
	}, nil
}

// Close releases external resources held by the composition root.
func (c *CompositionRoot) Close() error {
	return c.publisher.Close()
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() *commands.CreateShipmentCommandHandler {
	return must(commands.NewCreateShipmentCommandHandler(
		c.shipmentUoWFactory(), c.locations, c.customers, c.criteria, c.publisher))
}

func (c *CompositionRoot) CreateModifyShipmentCommandHandler() *commands.ModifyShipmentCommandHandler {
	return must(commands.NewModifyShipmentCommandHandler(
		c.shipmentUoWFactory(), c.customers, c.criteria, c.publisher))
}

func (c *CompositionRoot) CreateCloseShipmentCommandHandler() *commands.CloseShipmentCommandHandler {
	return must(commands.NewCloseShipmentCommandHandler(c.shipmentUoWFactory(), c.publisher))
}

func (c *CompositionRoot) CreateCreateCartonCommandHandler() *commands.CreateCartonCommandHandler {
	return must(commands.NewCreateCartonCommandHandler(
		c.cartonUoWFactory(), c.locations, c.criteria, c.publisher))
}

func (c *CompositionRoot) CreatePackCartonItemCommandHandler() *commands.PackCartonItemCommandHandler {
	return must(commands.NewPackCartonItemCommandHandler(c.cartonUoWFactory(), c.createItemValidator()))
}

func (c *CompositionRoot) CreateVerifyCartonItemCommandHandler() *commands.VerifyCartonItemCommandHandler {
	return must(commands.NewVerifyCartonItemCommandHandler(c.cartonUoWFactory(), c.createItemValidator()))
}

func (c *CompositionRoot) CreateRemoveCartonItemCommandHandler() *commands.RemoveCartonItemCommandHandler {
	return must(commands.NewRemoveCartonItemCommandHandler(c.cartonUoWFactory(), c.publisher))
}

func (c *CompositionRoot) CreateCloseCartonCommandHandler() *commands.CloseCartonCommandHandler {
	return must(commands.NewCloseCartonCommandHandler(c.cartonUoWFactory(), c.publisher))
}

func (c *CompositionRoot) CreateRepackCartonCommandHandler() *commands.RepackCartonCommandHandler {
	return must(commands.NewRepackCartonCommandHandler(c.cartonUoWFactory(), c.publisher))
}

func (c *CompositionRoot) CreateRemoveCartonCommandHandler() *commands.RemoveCartonCommandHandler {
	return must(commands.NewRemoveCartonCommandHandler(c.cartonUoWFactory(), c.publisher))
}

func (c *CompositionRoot) CreateProcessShipmentCommandHandler() *commands.ProcessShipmentCommandHandler {
	return must(commands.NewProcessShipmentCommandHandler(c.crossAggregateUoWFactory(), c.inventory, c.publisher))
}

func (c *CompositionRoot) CreateGetShipmentsQueryHandler() queries.GetShipmentsQueryHandler {
	return queries.NewGetShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFindShipmentQueryHandler() *queries.FindShipmentQueryHandler {
	return must(queries.NewFindShipmentQueryHandler(c.shipmentRepository()))
}

func (c *CompositionRoot) CreateGetPackingSlipQueryHandler() *queries.GetPackingSlipQueryHandler {
	return must(queries.NewGetPackingSlipQueryHandler(
		c.cartonRepository(), c.shipmentRepository(), c.locations, c.criteria, c.sysprops))
}

func (c *CompositionRoot) CreateGetCartonLabelQueryHandler() *queries.GetCartonLabelQueryHandler {
	return must(queries.NewGetCartonLabelQueryHandler(
		c.cartonRepository(), c.shipmentRepository(), c.locations, c.criteria, c.sysprops))
}

func (c *CompositionRoot) CreateGetShippingSummaryQueryHandler() *queries.GetShippingSummaryQueryHandler {
	return must(queries.NewGetShippingSummaryQueryHandler(
		c.shipmentRepository(), c.cartonRepository(), c.locations, c.criteria, c.sysprops))
}

func (c *CompositionRoot) CreateGetUnacceptableUnitsQueryHandler() *queries.GetUnacceptableUnitsQueryHandler {
	return must(queries.NewGetUnacceptableUnitsQueryHandler(
		c.shipmentRepository(), c.reportRepository(), c.locations, c.sysprops))
}

// CreateHTTPServer wires every command and query handler into the inbound
// HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateShipmentCommandHandler(),
		c.CreateModifyShipmentCommandHandler(),
		c.CreateCloseShipmentCommandHandler(),
		c.CreateCreateCartonCommandHandler(),
		c.CreatePackCartonItemCommandHandler(),
		c.CreateVerifyCartonItemCommandHandler(),
		c.CreateRemoveCartonItemCommandHandler(),
		c.CreateCloseCartonCommandHandler(),
		c.CreateRepackCartonCommandHandler(),
		c.CreateRemoveCartonCommandHandler(),
		c.CreateGetShipmentsQueryHandler(),
		c.CreateFindShipmentQueryHandler(),
		c.CreateGetPackingSlipQueryHandler(),
		c.CreateGetCartonLabelQueryHandler(),
		c.CreateGetShippingSummaryQueryHandler(),
		c.CreateGetUnacceptableUnitsQueryHandler(),
	)
}

// CreateJobManager wires the background shipment processing job.
func (c *CompositionRoot) CreateJobManager(schedule string, logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.shipmentRepository(),
		c.CreateProcessShipmentCommandHandler(),
		schedule,
		logger,
	)
}

// createItemValidator assembles the packing validation pipeline. The
// criteria repository serves both the product type lookup and the customer
// criteria lookup.
func (c *CompositionRoot) createItemValidator() *services.ItemValidator {
	return must(services.NewItemValidator(c.cartonRepository(), c.criteria, c.criteria, c.inventory))
}

// Detached repositories serve the read side. A unit of work that never
// begins a transaction runs its queries directly against the database.

func (c *CompositionRoot) shipmentRepository() ports.ShipmentRepository {
	return c.uowFactory.Create().ShipmentRepository()
}

func (c *CompositionRoot) cartonRepository() ports.CartonRepository {
	return c.uowFactory.Create().CartonRepository()
}

func (c *CompositionRoot) reportRepository() ports.UnacceptableUnitReportRepository {
	return c.uowFactory.Create().UnacceptableUnitReportRepository()
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) cartonUoWFactory() commands.CartonUoWFactory {
	return FuncCartonUoWFactory(func() commands.CartonUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) crossAggregateUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncCartonUoWFactory func() commands.CartonUoW

func (f FuncCartonUoWFactory) Create() commands.CartonUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

// must panics on wiring errors. Handler constructors only fail when a
// dependency is nil, which is a programming mistake at startup.
func must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}
