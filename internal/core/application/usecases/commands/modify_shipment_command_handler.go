package commands

import (
	"context"
	"errors"
	"fmt"

	"plasmashipping/internal/core/domain/events"
	"plasmashipping/internal/core/domain/model/shipment"
	"plasmashipping/internal/core/ports"
	"plasmashipping/internal/pkg/errs"
)

// ModifyShipmentCommandHandler processes shipment modification requests.
// Re-resolves the customer snapshot, applies the changes through the
// aggregate and records the audit history entry.
type ModifyShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	customers  ports.CustomerService
	criteria   ports.CriteriaRepository
	publisher  ports.EventPublisher
}

// NewModifyShipmentCommandHandler creates a handler for shipment modification.
func NewModifyShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	customers ports.CustomerService,
	criteriaRepo ports.CriteriaRepository,
	publisher ports.EventPublisher,
) (*ModifyShipmentCommandHandler, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
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

	return &ModifyShipmentCommandHandler{
		uowFactory: uowFactory,
		customers:  customers,
		criteria:   criteriaRepo,
		publisher:  publisher,
	}, nil
}

// Handle applies the modification and returns the updated aggregate.
func (h *ModifyShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd ModifyShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
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

	aggregate, err := repo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	record, err := aggregate.Modify(
		snapshot,
		cmd.ProductType(),
		cmd.ShipmentDate(),
		cmd.CartonTareWeight(),
		cmd.TransportationReferenceNumber(),
		cmd.EmployeeID(),
		cmd.Comments(),
	)
	if err != nil {
		return nil, err
	}

	if err := repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}
	if err := repo.AddHistory(ctx, record); err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishEvent(ctx, h.publisher, events.ShipmentModified{
		ShipmentID:     aggregate.ID(),
		ShipmentNumber: aggregate.ShipmentNumber(),
		CustomerCode:   aggregate.Customer().Code(),
		ProductType:    aggregate.ProductType(),
		ShipmentDate:   aggregate.ShipmentDate(),
		EmployeeID:     cmd.EmployeeID(),
		Comments:       record.Comments(),
	})

	return aggregate, nil
}
