package commands

import (
	"context"

	"plasmashipping/internal/core/domain/events"
	"plasmashipping/internal/core/domain/model/carton"
	"plasmashipping/internal/core/ports"
	"plasmashipping/internal/pkg/errs"
)

// RemoveCartonCommandHandler deletes cartons from shipments. Deletion is a
// soft delete: the carton keeps its audit trail and goes to the Removed
// status.
type RemoveCartonCommandHandler struct {
	uowFactory CartonUoWFactory
	publisher  ports.EventPublisher
}

// NewRemoveCartonCommandHandler creates a handler for carton removal.
func NewRemoveCartonCommandHandler(
	uowFactory CartonUoWFactory,
	publisher ports.EventPublisher,
) (*RemoveCartonCommandHandler, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	if publisher == nil {
		return nil, errs.NewValueIsRequiredError("publisher")
	}

	return &RemoveCartonCommandHandler{uowFactory: uowFactory, publisher: publisher}, nil
}

// Handle deletes the carton and returns the removed aggregate.
func (h *RemoveCartonCommandHandler) Handle(
	ctx context.Context,
	cmd RemoveCartonCommand,
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

	totalCartons, err := cartonRepo.CountByShipment(ctx, shp.ID())
	if err != nil {
		return nil, err
	}

	if err := aggregate.Remove(cmd.EmployeeID(), shp.CanModify(), totalCartons); err != nil {
		return nil, err
	}

	if err := cartonRepo.DeleteItems(ctx, aggregate.ID()); err != nil {
		return nil, err
	}
	if err := cartonRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishEvent(ctx, h.publisher, events.CartonRemoved{
		CartonID:       aggregate.ID(),
		CartonNumber:   aggregate.CartonNumber(),
		ShipmentID:     shp.ID(),
		ShipmentNumber: shp.ShipmentNumber(),
		EmployeeID:     cmd.EmployeeID(),
	})

	return aggregate, nil
}
