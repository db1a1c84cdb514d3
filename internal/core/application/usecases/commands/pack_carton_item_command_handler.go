package commands

import (
	"context"

	"plasmashipping/internal/core/domain/model/carton"
	"plasmashipping/internal/core/domain/model/inventory"
	"plasmashipping/internal/core/domain/services"
	"plasmashipping/internal/pkg/errs"
)

// UnitValidator runs the packing validation pipeline for one scanned unit.
// Satisfied by services.ItemValidator.
type UnitValidator interface {
	Validate(ctx context.Context, request services.Request) (*inventory.Inventory, error)
}

// PackCartonItemCommandHandler processes pack requests. Runs the validation
// pipeline, builds the carton item from the validated inventory snapshot and
// advances the shipment to InProgress.
type PackCartonItemCommandHandler struct {
	uowFactory CartonUoWFactory
	validator  UnitValidator
}

// NewPackCartonItemCommandHandler creates a handler for pack requests.
func NewPackCartonItemCommandHandler(
	uowFactory CartonUoWFactory,
	validator UnitValidator,
) (*PackCartonItemCommandHandler, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	if validator == nil {
		return nil, errs.NewValueIsRequiredError("validator")
	}

	return &PackCartonItemCommandHandler{uowFactory: uowFactory, validator: validator}, nil
}

// Handle packs the unit and returns the updated carton. Validation failures
// surface as *inventory.RejectedError or *criteria.ValidationError so the
// transport layer can render structured notifications.
func (h *PackCartonItemCommandHandler) Handle(
	ctx context.Context,
	cmd PackCartonItemCommand,
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
	shipmentRepo := uow.ShipmentRepository()

	aggregate, err := cartonRepo.Get(ctx, cmd.CartonID())
	if err != nil {
		return nil, err
	}

	shp, err := shipmentRepo.Get(ctx, aggregate.ShipmentID())
	if err != nil {
		return nil, err
	}

	inv, err := h.validator.Validate(ctx, services.Request{
		UnitNumber:    cmd.UnitNumber(),
		ProductCode:   cmd.ProductCode(),
		LocationCode:  cmd.LocationCode(),
		EmployeeID:    cmd.EmployeeID(),
		ProductType:   shp.ProductType(),
		CustomerCode:  shp.Customer().Code(),
		TotalProducts: aggregate.TotalProducts(),
	})
	if err != nil {
		return nil, err
	}

	item, err := carton.NewCartonItem(aggregate.ID(), inv, shp.ProductType(), cmd.EmployeeID())
	if err != nil {
		return nil, err
	}
	if err := aggregate.PackItem(item); err != nil {
		return nil, err
	}

	if err := cartonRepo.Update(ctx, aggregate); err != nil {
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

	return aggregate, nil
}
