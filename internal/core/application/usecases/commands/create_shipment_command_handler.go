package commands

import (
	"context"
	"errors"
	"fmt"

	"plasmashipping/internal/core/domain/events"
	"plasmashipping/internal/core/domain/model/shipment"
	"plasmashipping/internal/core/domain/services"
	"plasmashipping/internal/core/ports"
	"plasmashipping/internal/pkg/errs"
)

// CreateShipmentCommandHandler processes shipment creation requests.
// Resolves location and customer reference data, draws the next shipment
// number and persists the new aggregate.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	locations  ports.LocationRepository
	customers  ports.CustomerService
	criteria   ports.CriteriaRepository
	publisher  ports.EventPublisher
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
func NewCreateShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	locations ports.LocationRepository,
	customers ports.CustomerService,
	criteriaRepo ports.CriteriaRepository,
	publisher ports.EventPublisher,
) (*CreateShipmentCommandHandler, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	if locations == nil {
		return nil, errs.NewValueIsRequiredError("locations")
	}
	if customers == nil {
		return nil, errs.NewValueIsRequiredError("customers")
	}
	if criteriaRepo == nil {
		return nil, errs.NewValueIsRequiredError("criteriaRepo")
	}
	if publisher == nil {
		return nil, errs.NewValueIsRequiredError("publisher")
	}

	return &CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		locations:  locations,
		customers:  customers,
		criteria:   criteriaRepo,
		publisher:  publisher,
	}, nil
}

// Handle opens a new shipment and returns the persisted aggregate.
// The customer must exist in the reference-data service and must have
// shipment criteria configured for the requested product type.
func (h *CreateShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	loc, err := h.locations.GetByCode(ctx, cmd.LocationCode())
	if err != nil {
		return nil, fmt.Errorf("resolving location %s: %w", cmd.LocationCode(), err)
	}

	cust, err := h.customers.GetByCode(ctx, cmd.CustomerCode())
	if err != nil {
		return nil, fmt.Errorf("resolving customer %s: %w", cmd.CustomerCode(), err)
	}
	if cust == nil {
		return nil, errs.NewObjectNotFoundErrorWithCause(
			"customerCode",
			cmd.CustomerCode(),
			fmt.Errorf("Customer not found for code: %s", cmd.CustomerCode()),
		)
	}

	productCriteria, err := h.criteria.FindProductCriteria(ctx, cmd.ProductType(), cmd.CustomerCode())
	if err != nil {
		return nil, fmt.Errorf("resolving shipment criteria: %w", err)
	}
	if productCriteria == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"productType",
			errors.New("Product Criteria not found"),
		)
	}

	snapshot, err := shipment.CustomerFromMaster(cust)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	repo := uow.ShipmentRepository()

	shipmentID, err := repo.NextShipmentID(ctx)
	if err != nil {
		return nil, fmt.Errorf("drawing shipment number: %w", err)
	}

	shipmentNumber, err := services.GenerateShipmentNumber(shipmentID, loc)
	if err != nil {
		return nil, err
	}

	aggregate, err := shipment.NewShipment(
		shipmentNumber,
		cmd.LocationCode(),
		snapshot,
		cmd.ProductType(),
		cmd.ShipmentDate(),
		cmd.CartonTareWeight(),
		cmd.TransportationReferenceNumber(),
		cmd.EmployeeID(),
	)
	if err != nil {
		return nil, err
	}
	aggregate.SetID(shipmentID)

	if err := repo.Add(ctx, aggregate); err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishEvent(ctx, h.publisher, events.ShipmentCreated{
		ShipmentID:     aggregate.ID(),
		ShipmentNumber: aggregate.ShipmentNumber(),
		LocationCode:   aggregate.LocationCode(),
		CustomerCode:   aggregate.Customer().Code(),
		ProductType:    aggregate.ProductType(),
		ShipmentDate:   aggregate.ShipmentDate(),
		EmployeeID:     aggregate.CreateEmployeeID(),
	})

	return aggregate, nil
}
