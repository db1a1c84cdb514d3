package commands

import (
	"context"

	"plasmashipping/internal/core/domain/events"
	"plasmashipping/internal/core/domain/model/shipment"
	"plasmashipping/internal/core/ports"
	"plasmashipping/internal/pkg/errs"
)

// CloseShipmentCommandHandler accepts close requests and hands the shipment
// to the batch revalidation by moving it to Processing.
type CloseShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	publisher  ports.EventPublisher
}

// NewCloseShipmentCommandHandler creates a handler for shipment close requests.
func NewCloseShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	publisher ports.EventPublisher,
) (*CloseShipmentCommandHandler, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	if publisher == nil {
		return nil, errs.NewValueIsRequiredError("publisher")
	}

	return &CloseShipmentCommandHandler{uowFactory: uowFactory, publisher: publisher}, nil
}

// Handle accepts the close request. The shipment must have at least one
// carton and every carton must already be closed.
func (h *CloseShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd CloseShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
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

	if err := aggregate.MarkAsProcessing(cmd.ShipDate(), cmd.EmployeeID()); err != nil {
		return nil, err
	}

	if err := repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishEvent(ctx, h.publisher, events.ShipmentProcessing{
		ShipmentID:     aggregate.ID(),
		ShipmentNumber: aggregate.ShipmentNumber(),
		LocationCode:   aggregate.LocationCode(),
		EmployeeID:     cmd.EmployeeID(),
	})

	return aggregate, nil
}
