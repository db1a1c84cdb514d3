package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"plasmashipping/internal/core/domain/events"
	"plasmashipping/internal/core/domain/model/carton"
	"plasmashipping/internal/core/domain/services"
	"plasmashipping/internal/core/ports"
	"plasmashipping/internal/pkg/errs"
)

// CreateCartonCommandHandler processes carton creation requests. Assigns the
// next carton number and sequence, copies the per-carton unit limits from the
// customer criteria and moves the shipment to InProgress.
type CreateCartonCommandHandler struct {
	uowFactory CartonUoWFactory
	locations  ports.LocationRepository
	criteria   ports.CriteriaRepository
	publisher  ports.EventPublisher
}

// NewCreateCartonCommandHandler creates a handler for carton creation.
func NewCreateCartonCommandHandler(
	uowFactory CartonUoWFactory,
	locations ports.LocationRepository,
	criteriaRepo ports.CriteriaRepository,
	publisher ports.EventPublisher,
) (*CreateCartonCommandHandler, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	if locations == nil {
		return nil, errs.NewValueIsRequiredError("locations")
	}
	if criteriaRepo == nil {
		return nil, errs.NewValueIsRequiredError("criteriaRepo")
	}
	if publisher == nil {
		return nil, errs.NewValueIsRequiredError("publisher")
	}

	return &CreateCartonCommandHandler{
		uowFactory: uowFactory,
		locations:  locations,
		criteria:   criteriaRepo,
		publisher:  publisher,
	}, nil
}

// Handle adds a carton to the shipment and returns the persisted aggregate.
func (h *CreateCartonCommandHandler) Handle(
	ctx context.Context,
	cmd CreateCartonCommand,
) (*carton.Carton, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	shipmentRepo := uow.ShipmentRepository()
	cartonRepo := uow.CartonRepository()

	shp, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		// A missing shipment surfaces as the opaque generation error.
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return nil, cartonGenerationError(err)
		}
		return nil, err
	}
	if !shp.CanModify() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"shipment status",
			fmt.Errorf("shipment %s is %s and cannot be modified", shp.ShipmentNumber(), shp.Status()),
		)
	}

	loc, err := h.locations.GetByCode(ctx, shp.LocationCode())
	if err != nil {
		return nil, err
	}

	productCriteria, err := h.criteria.FindProductCriteria(ctx, shp.ProductType(), shp.Customer().Code())
	if err != nil {
		return nil, cartonGenerationError(err)
	}
	if productCriteria == nil {
		return nil, cartonGenerationError(errors.New("no shipment criteria configured"))
	}

	totalCartons, err := cartonRepo.CountByShipment(ctx, shp.ID())
	if err != nil {
		return nil, err
	}

	cartonID, err := cartonRepo.NextCartonID(ctx)
	if err != nil {
		return nil, cartonGenerationError(err)
	}

	cartonNumber, err := services.GenerateCartonNumber(cartonID, loc)
	if err != nil {
		return nil, cartonGenerationError(err)
	}

	aggregate, err := carton.NewCarton(
		cartonNumber,
		shp.ID(),
		totalCartons+1,
		cmd.EmployeeID(),
		productCriteria.MinUnitsPerCarton(),
		productCriteria.MaxUnitsPerCarton(),
	)
	if err != nil {
		return nil, err
	}
	aggregate.SetID(cartonID)

	if err := cartonRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err := shp.MarkAsInProgress(); err != nil {
		return nil, err
	}
	if err := shipmentRepo.Update(ctx, shp); err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishEvent(ctx, h.publisher, events.CartonCreated{
		CartonID:       aggregate.ID(),
		CartonNumber:   aggregate.CartonNumber(),
		CartonSequence: aggregate.CartonSequence(),
		ShipmentID:     shp.ID(),
		ShipmentNumber: shp.ShipmentNumber(),
		EmployeeID:     cmd.EmployeeID(),
	})

	return aggregate, nil
}

// cartonGenerationError hides number assignment internals from the caller.
// The underlying cause goes to the log only.
func cartonGenerationError(cause error) error {
	slog.Error("carton generation failed", "error", cause)
	return errs.NewValueIsInvalidErrorWithCause("carton", errors.New("Carton generation error"))
}
