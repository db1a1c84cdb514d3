package postgres_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	postgres_adapter "plasmashipping/internal/adapters/out/postgres"
	"plasmashipping/internal/adapters/out/postgres/cartonrepo"
	"plasmashipping/internal/adapters/out/postgres/reportrepo"
	"plasmashipping/internal/adapters/out/postgres/shipmentrepo"
	"plasmashipping/internal/core/domain/model/carton"
	"plasmashipping/internal/core/domain/model/customer"
	"plasmashipping/internal/core/domain/model/inventory"
	"plasmashipping/internal/core/domain/model/report"
	"plasmashipping/internal/core/domain/model/shipment"
	"plasmashipping/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes the PostgreSQL container and database connection for
// all tests. Runs migrations and creates the number sequences.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.HistoryDTO{},
		&cartonrepo.CartonDTO{},
		&cartonrepo.CartonItemDTO{},
		&reportrepo.UnacceptableUnitItemDTO{},
	)
	suite.Require().NoError(err)

	err = db.Exec("CREATE SEQUENCE IF NOT EXISTS shipment_number_seq").Error
	suite.Require().NoError(err)
	err = db.Exec("CREATE SEQUENCE IF NOT EXISTS carton_number_seq").Error
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE shipments, shipment_history, cartons, carton_items, unacceptable_unit_report_items").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up the PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies the factory creates isolated unit of
// work instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.ShipmentRepository())
	suite.NotNil(uow1.CartonRepository())
	suite.NotNil(uow2.ShipmentRepository())
	suite.NotNil(uow2.UnacceptableUnitReportRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies begin, commit, and rollback
// operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid
// transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_ShipmentRoundTrip verifies a shipment aggregate survives a
// persistence round trip with its customer snapshot intact.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ShipmentRoundTrip() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	shipmentID, err := uow.ShipmentRepository().NextShipmentID(ctx)
	suite.Require().NoError(err)

	testShipment := suite.createTestShipment(shipmentID)
	err = uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	retrieved, err := suite.factory.Create().ShipmentRepository().Get(ctx, shipmentID)
	suite.Require().NoError(err)
	suite.Equal(testShipment.ShipmentNumber(), retrieved.ShipmentNumber())
	suite.Equal(shipment.Open, retrieved.Status())
	suite.Equal("408", retrieved.Customer().Code())
	suite.Equal("BioLife Plasma Services", retrieved.Customer().Name())
	suite.Equal("Bannockburn", retrieved.Customer().Address().City)
	suite.InDelta(1.25, retrieved.CartonTareWeight(), 0.0001)
}

// TestUnitOfWork_CartonTransaction verifies shipment and carton repositories
// share one transaction and that packed items reload with the carton.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CartonTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	shipmentID, err := uow.ShipmentRepository().NextShipmentID(ctx)
	suite.Require().NoError(err)
	testShipment := suite.createTestShipment(shipmentID)
	err = uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	cartonID, err := uow.CartonRepository().NextCartonID(ctx)
	suite.Require().NoError(err)
	testCarton := suite.createTestCarton(cartonID, shipmentID)
	err = uow.CartonRepository().Add(ctx, testCarton)
	suite.Require().NoError(err)

	_, err = testCarton.MarkItemVerified("W035625000101", "E2534V00")
	suite.Require().NoError(err)
	err = testCarton.Close("emp-003")
	suite.Require().NoError(err)
	err = uow.CartonRepository().Update(ctx, testCarton)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	retrievedCarton, err := newUow.CartonRepository().Get(ctx, cartonID)
	suite.Require().NoError(err)
	suite.Equal(carton.Closed, retrievedCarton.Status())
	suite.Equal("emp-003", retrievedCarton.CloseEmployeeID())
	suite.Require().Len(retrievedCarton.Items(), 1)
	suite.Equal("W035625000101", retrievedCarton.Items()[0].UnitNumber())
	suite.True(retrievedCarton.Items()[0].IsVerified())

	retrievedShipment, err := newUow.ShipmentRepository().Get(ctx, shipmentID)
	suite.Require().NoError(err)
	suite.Equal(1, retrievedShipment.TotalCartons())
	suite.Equal(1, retrievedShipment.TotalProducts())

	count, err := newUow.CartonRepository().CountByShipment(ctx, shipmentID)
	suite.Require().NoError(err)
	suite.Equal(1, count)

	packedCount, err := newUow.CartonRepository().CountByProduct(ctx, "W035625000101", "E2534V00")
	suite.Require().NoError(err)
	suite.Equal(int64(1), packedCount)
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// across repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	shipmentID, err := uow.ShipmentRepository().NextShipmentID(ctx)
	suite.Require().NoError(err)
	testShipment := suite.createTestShipment(shipmentID)
	err = uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	_, err = uow.ShipmentRepository().Get(ctx, shipmentID)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	_, err = suite.factory.Create().ShipmentRepository().Get(ctx, shipmentID)
	suite.Require().Error(err, "Rolled back shipment should not exist")
}

// TestUnitOfWork_RemovedCartonsExcluded verifies removed cartons disappear
// from shipment loads and counts.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RemovedCartonsExcluded() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	shipmentID, err := uow.ShipmentRepository().NextShipmentID(ctx)
	suite.Require().NoError(err)
	testShipment := suite.createTestShipment(shipmentID)
	err = uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	cartonID, err := uow.CartonRepository().NextCartonID(ctx)
	suite.Require().NoError(err)
	testCarton := suite.createTestCarton(cartonID, shipmentID)
	err = uow.CartonRepository().Add(ctx, testCarton)
	suite.Require().NoError(err)

	err = testCarton.Remove("emp-002", true, 1)
	suite.Require().NoError(err)
	err = uow.CartonRepository().Update(ctx, testCarton)
	suite.Require().NoError(err)
	err = uow.CartonRepository().DeleteItems(ctx, cartonID)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	count, err := newUow.CartonRepository().CountByShipment(ctx, shipmentID)
	suite.Require().NoError(err)
	suite.Equal(0, count)

	retrievedShipment, err := newUow.ShipmentRepository().Get(ctx, shipmentID)
	suite.Require().NoError(err)
	suite.Equal(0, retrievedShipment.TotalCartons())
}

// TestUnitOfWork_HistoryAndReportEntries verifies the audit trail and the
// unacceptable unit report entries round trip.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_HistoryAndReportEntries() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	shipmentID, err := uow.ShipmentRepository().NextShipmentID(ctx)
	suite.Require().NoError(err)
	testShipment := suite.createTestShipment(shipmentID)
	err = uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	record, err := shipment.NewHistory(shipmentID, "emp-004", "tare weight corrected")
	suite.Require().NoError(err)
	err = uow.ShipmentRepository().AddHistory(ctx, record)
	suite.Require().NoError(err)

	entry, err := report.NewUnacceptableUnitItem(
		shipmentID, "BPMMH11", "W035625000102", "E2534V00",
		"INVENTORY_EXPIRED", "Unit is expired", []string{"expired on 06/01/2026", "status OP"},
	)
	suite.Require().NoError(err)
	err = uow.UnacceptableUnitReportRepository().Add(ctx, entry)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	entries, err := suite.factory.Create().UnacceptableUnitReportRepository().GetAllByShipment(ctx, shipmentID)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.Equal("INVENTORY_EXPIRED", entries[0].ErrorName())
	suite.Equal([]string{"expired on 06/01/2026", "status OP"}, entries[0].Details())

	err = suite.factory.Create().UnacceptableUnitReportRepository().DeleteAllByShipment(ctx, shipmentID)
	suite.Require().NoError(err)

	entries, err = suite.factory.Create().UnacceptableUnitReportRepository().GetAllByShipment(ctx, shipmentID)
	suite.Require().NoError(err)
	suite.Empty(entries)
}

// TestUnitOfWork_Sequences verifies the number counters are monotonic.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_Sequences() {
	ctx := context.Background()
	uow := suite.factory.Create()

	first, err := uow.ShipmentRepository().NextShipmentID(ctx)
	suite.Require().NoError(err)
	second, err := uow.ShipmentRepository().NextShipmentID(ctx)
	suite.Require().NoError(err)
	suite.Greater(second, first)

	firstCarton, err := uow.CartonRepository().NextCartonID(ctx)
	suite.Require().NoError(err)
	secondCarton, err := uow.CartonRepository().NextCartonID(ctx)
	suite.Require().NoError(err)
	suite.Greater(secondCarton, firstCarton)
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestShipment(id int64) *shipment.Shipment {
	cust, err := customer.NewCustomer("408", "BioLife Plasma Services", customer.Address{
		AddressLine1: "1200 Lakeside Dr",
		City:         "Bannockburn",
		State:        "IL",
		PostalCode:   "60015",
		Country:      "United States",
		CountryCode:  "US",
	})
	suite.Require().NoError(err)
	snapshot, err := shipment.CustomerFromMaster(cust)
	suite.Require().NoError(err)

	s, err := shipment.NewShipment(
		"BPMMH1"+itoa(id), "MH1", snapshot, "RP_FROZEN",
		time.Now().AddDate(0, 0, 7), 1.25, "TRN-9921", "emp-001",
	)
	suite.Require().NoError(err)
	s.SetID(id)
	return s
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestCarton(id, shipmentID int64) *carton.Carton {
	c, err := carton.NewCarton("BPMMH1"+itoa(id), shipmentID, 1, "emp-001", 1, 10)
	suite.Require().NoError(err)
	c.SetID(id)

	inv, err := inventory.NewInventory("W035625000101", "E2534V00", "Recovered Plasma", "OP", 510,
		[]inventory.Volume{inventory.NewVolume(inventory.VolumeTypeVolume, 250)},
		time.Now().AddDate(1, 0, 0), time.Now().AddDate(0, -1, 0))
	suite.Require().NoError(err)
	item, err := carton.NewCartonItem(id, inv, "RP_FROZEN", "emp-001")
	suite.Require().NoError(err)
	suite.Require().NoError(c.PackItem(item))

	return c
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

// TestUnitOfWorkIntegrationTestSuite runs the integration test suite.
// Requires Docker for PostgreSQL testcontainers.
func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}

	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
