package commands_test

import (
	"context"

	"plasmashipping/internal/core/application/usecases/commands"
	"plasmashipping/internal/core/domain/events"
	"plasmashipping/internal/core/domain/model/carton"
	"plasmashipping/internal/core/domain/model/criteria"
	"plasmashipping/internal/core/domain/model/customer"
	"plasmashipping/internal/core/domain/model/inventory"
	"plasmashipping/internal/core/domain/model/location"
	"plasmashipping/internal/core/domain/model/report"
	"plasmashipping/internal/core/domain/model/shipment"
	"plasmashipping/internal/core/domain/services"
	"plasmashipping/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockShipmentRepository) Get(ctx context.Context, id int64) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	var aggregate *shipment.Shipment
	if v := args.Get(0); v != nil {
		aggregate = v.(*shipment.Shipment)
	}
	return aggregate, args.Error(1)
}
func (m *MockShipmentRepository) GetAllInStatus(ctx context.Context, status shipment.Status) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, status)
	var aggregates []*shipment.Shipment
	if v := args.Get(0); v != nil {
		aggregates = v.([]*shipment.Shipment)
	}
	return aggregates, args.Error(1)
}
func (m *MockShipmentRepository) NextShipmentID(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockShipmentRepository) AddHistory(ctx context.Context, record *shipment.History) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

type MockCartonRepository struct{ mock.Mock }

func (m *MockCartonRepository) Add(ctx context.Context, aggregate *carton.Carton) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockCartonRepository) Update(ctx context.Context, aggregate *carton.Carton) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockCartonRepository) Get(ctx context.Context, id int64) (*carton.Carton, error) {
	args := m.Called(ctx, id)
	var aggregate *carton.Carton
	if v := args.Get(0); v != nil {
		aggregate = v.(*carton.Carton)
	}
	return aggregate, args.Error(1)
}
func (m *MockCartonRepository) GetAllByShipment(ctx context.Context, shipmentID int64) ([]*carton.Carton, error) {
	args := m.Called(ctx, shipmentID)
	var aggregates []*carton.Carton
	if v := args.Get(0); v != nil {
		aggregates = v.([]*carton.Carton)
	}
	return aggregates, args.Error(1)
}
func (m *MockCartonRepository) CountByShipment(ctx context.Context, shipmentID int64) (int, error) {
	args := m.Called(ctx, shipmentID)
	return args.Int(0), args.Error(1)
}
func (m *MockCartonRepository) NextCartonID(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockCartonRepository) CountByProduct(ctx context.Context, unitNumber, productCode string) (int64, error) {
	args := m.Called(ctx, unitNumber, productCode)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockCartonRepository) DeleteItems(ctx context.Context, cartonID int64) error {
	args := m.Called(ctx, cartonID)
	return args.Error(0)
}

type MockReportRepository struct{ mock.Mock }

func (m *MockReportRepository) Add(ctx context.Context, item *report.UnacceptableUnitItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockReportRepository) GetAllByShipment(ctx context.Context, shipmentID int64) ([]*report.UnacceptableUnitItem, error) {
	args := m.Called(ctx, shipmentID)
	var items []*report.UnacceptableUnitItem
	if v := args.Get(0); v != nil {
		items = v.([]*report.UnacceptableUnitItem)
	}
	return items, args.Error(1)
}
func (m *MockReportRepository) DeleteAllByShipment(ctx context.Context, shipmentID int64) error {
	args := m.Called(ctx, shipmentID)
	return args.Error(0)
}

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) GetByCode(ctx context.Context, code string) (*location.Location, error) {
	args := m.Called(ctx, code)
	var loc *location.Location
	if v := args.Get(0); v != nil {
		loc = v.(*location.Location)
	}
	return loc, args.Error(1)
}

type MockCustomerService struct{ mock.Mock }

func (m *MockCustomerService) GetByCode(ctx context.Context, code string) (*customer.Customer, error) {
	args := m.Called(ctx, code)
	var cust *customer.Customer
	if v := args.Get(0); v != nil {
		cust = v.(*customer.Customer)
	}
	return cust, args.Error(1)
}

type MockCriteriaRepository struct{ mock.Mock }

func (m *MockCriteriaRepository) FindProductCriteria(ctx context.Context, productType, customerCode string) (*criteria.ShipmentCriteria, error) {
	args := m.Called(ctx, productType, customerCode)
	var c *criteria.ShipmentCriteria
	if v := args.Get(0); v != nil {
		c = v.(*criteria.ShipmentCriteria)
	}
	return c, args.Error(1)
}
func (m *MockCriteriaRepository) FindProductTypeByCode(ctx context.Context, productCode string) (*criteria.ProductType, error) {
	args := m.Called(ctx, productCode)
	var p *criteria.ProductType
	if v := args.Get(0); v != nil {
		p = v.(*criteria.ProductType)
	}
	return p, args.Error(1)
}
func (m *MockCriteriaRepository) FindProductTypesByCustomer(ctx context.Context, customerCode string) ([]*criteria.ProductType, error) {
	args := m.Called(ctx, customerCode)
	var types []*criteria.ProductType
	if v := args.Get(0); v != nil {
		types = v.([]*criteria.ProductType)
	}
	return types, args.Error(1)
}

type MockInventoryService struct{ mock.Mock }

func (m *MockInventoryService) ValidateInventory(ctx context.Context, request inventory.ValidationRequest) (*inventory.Validation, error) {
	args := m.Called(ctx, request)
	var validation *inventory.Validation
	if v := args.Get(0); v != nil {
		validation = v.(*inventory.Validation)
	}
	return validation, args.Error(1)
}
func (m *MockInventoryService) ValidateInventoryBatch(ctx context.Context, requests []inventory.ValidationRequest) ([]*inventory.Validation, error) {
	args := m.Called(ctx, requests)
	var validations []*inventory.Validation
	if v := args.Get(0); v != nil {
		validations = v.([]*inventory.Validation)
	}
	return validations, args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockUnitValidator struct{ mock.Mock }

func (m *MockUnitValidator) Validate(ctx context.Context, request services.Request) (*inventory.Inventory, error) {
	args := m.Called(ctx, request)
	var inv *inventory.Inventory
	if v := args.Get(0); v != nil {
		inv = v.(*inventory.Inventory)
	}
	return inv, args.Error(1)
}

func (m *MockUnitValidator) ValidateVerification(ctx context.Context, request services.Request) (*inventory.Inventory, error) {
	args := m.Called(ctx, request)
	var inv *inventory.Inventory
	if v := args.Get(0); v != nil {
		inv = v.(*inventory.Inventory)
	}
	return inv, args.Error(1)
}

// MockUoW satisfies every unit of work shape used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}
func (m *MockUoW) CartonRepository() ports.CartonRepository {
	args := m.Called()
	return args.Get(0).(ports.CartonRepository)
}
func (m *MockUoW) UnacceptableUnitReportRepository() ports.UnacceptableUnitReportRepository {
	args := m.Called()
	return args.Get(0).(ports.UnacceptableUnitReportRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockCartonUoWFactory struct{ mock.Mock }

func (m *MockCartonUoWFactory) Create() commands.CartonUoW {
	args := m.Called()
	return args.Get(0).(commands.CartonUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}
