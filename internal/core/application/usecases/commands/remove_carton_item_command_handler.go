package commands

import (
	"context"

	"plasmashipping/internal/core/domain/events"
	"plasmashipping/internal/core/domain/model/carton"
	"plasmashipping/internal/core/ports"
	"plasmashipping/internal/pkg/errs"
)

// RemoveCartonItemCommandHandler takes packed units back out of open cartons.
type RemoveCartonItemCommandHandler struct {
	uowFactory CartonUoWFactory
	publisher  ports.EventPublisher
}

// NewRemoveCartonItemCommandHandler creates a handler for unpack requests.
func NewRemoveCartonItemCommandHandler(
	uowFactory CartonUoWFactory,
	publisher ports.EventPublisher,
) (*RemoveCartonItemCommandHandler, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	if publisher == nil {
		return nil, errs.NewValueIsRequiredError("publisher")
	}

	return &RemoveCartonItemCommandHandler{uowFactory: uowFactory, publisher: publisher}, nil
}

// Handle removes the unit and returns the updated carton.
func (h *RemoveCartonItemCommandHandler) Handle(
	ctx context.Context,
	cmd RemoveCartonItemCommand,
) (*carton.Carton, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	cartonRepo := uow.CartonRepository()

	aggregate, err := cartonRepo.Get(ctx, cmd.CartonID())
	if err != nil {
		return nil, err
	}

	if _, err := aggregate.RemoveItem(cmd.UnitNumber(), cmd.ProductCode()); err != nil {
		return nil, err
	}

	if err := cartonRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishEvent(ctx, h.publisher, events.CartonUnpacked{
		CartonID:     aggregate.ID(),
		CartonNumber: aggregate.CartonNumber(),
		ShipmentID:   aggregate.ShipmentID(),
		UnitNumber:   cmd.UnitNumber(),
		ProductCode:  cmd.ProductCode(),
		EmployeeID:   cmd.EmployeeID(),
	})

	return aggregate, nil
}
