package commands

import (
	"context"
	"fmt"

	"plasmashipping/internal/core/domain/events"
	"plasmashipping/internal/core/domain/model/carton"
	"plasmashipping/internal/core/ports"
	"plasmashipping/internal/pkg/errs"
)

// RepackCartonCommandHandler reopens cartons that the batch revalidation
// flagged for repack. The previous contents are discarded.
type RepackCartonCommandHandler struct {
	uowFactory CartonUoWFactory
	publisher  ports.EventPublisher
}

// NewRepackCartonCommandHandler creates a handler for carton repack requests.
func NewRepackCartonCommandHandler(
	uowFactory CartonUoWFactory,
	publisher ports.EventPublisher,
) (*RepackCartonCommandHandler, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	if publisher == nil {
		return nil, errs.NewValueIsRequiredError("publisher")
	}

	return &RepackCartonCommandHandler{uowFactory: uowFactory, publisher: publisher}, nil
}

// Handle reopens the carton and returns the emptied aggregate.
func (h *RepackCartonCommandHandler) Handle(
	ctx context.Context,
	cmd RepackCartonCommand,
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
	if !shp.CanModify() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"shipment status",
			fmt.Errorf("shipment %s is %s and cannot be modified", shp.ShipmentNumber(), shp.Status()),
		)
	}

	// Reopening clears the aggregate's items, so capture them first for the
	// unpacked events.
	unpacked := aggregate.Items()

	if err := aggregate.MarkAsReopen(cmd.EmployeeID(), cmd.Comments()); err != nil {
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

	for _, item := range unpacked {
		publishEvent(ctx, h.publisher, events.CartonUnpacked{
			CartonID:     aggregate.ID(),
			CartonNumber: aggregate.CartonNumber(),
			ShipmentID:   aggregate.ShipmentID(),
			UnitNumber:   item.UnitNumber(),
			ProductCode:  item.ProductCode(),
			EmployeeID:   cmd.EmployeeID(),
		})
	}

	return aggregate, nil
}
