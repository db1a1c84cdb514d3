package commands

import (
	"context"

	"plasmashipping/internal/core/domain/events"
	"plasmashipping/internal/core/domain/model/carton"
	"plasmashipping/internal/core/ports"
	"plasmashipping/internal/pkg/errs"
)

// CloseCartonCommandHandler seals cartons whose contents have been fully
// verified.
type CloseCartonCommandHandler struct {
	uowFactory CartonUoWFactory
	publisher  ports.EventPublisher
}

// NewCloseCartonCommandHandler creates a handler for carton close requests.
func NewCloseCartonCommandHandler(
	uowFactory CartonUoWFactory,
	publisher ports.EventPublisher,
) (*CloseCartonCommandHandler, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	if publisher == nil {
		return nil, errs.NewValueIsRequiredError("publisher")
	}

	return &CloseCartonCommandHandler{uowFactory: uowFactory, publisher: publisher}, nil
}

// Handle seals the carton and returns the updated aggregate.
func (h *CloseCartonCommandHandler) Handle(
	ctx context.Context,
	cmd CloseCartonCommand,
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

	shp, err := uow.ShipmentRepository().Get(ctx, aggregate.ShipmentID())
	if err != nil {
		return nil, err
	}

	if err := aggregate.Close(cmd.EmployeeID()); err != nil {
		return nil, err
	}

	if err := cartonRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishEvent(ctx, h.publisher, events.CartonClosed{
		CartonID:       aggregate.ID(),
		CartonNumber:   aggregate.CartonNumber(),
		ShipmentID:     shp.ID(),
		ShipmentNumber: shp.ShipmentNumber(),
		TotalProducts:  aggregate.TotalProducts(),
		EmployeeID:     cmd.EmployeeID(),
	})

	return aggregate, nil
}
