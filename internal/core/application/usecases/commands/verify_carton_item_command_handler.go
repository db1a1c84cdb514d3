package commands

import (
	"context"
	"errors"
	"fmt"

	"plasmashipping/internal/core/domain/model/carton"
	"plasmashipping/internal/core/domain/model/inventory"
	"plasmashipping/internal/core/domain/services"
	"plasmashipping/internal/pkg/errs"
)

// VerificationValidator re-runs the packing pipeline for an already packed
// unit. Satisfied by services.ItemValidator.
type VerificationValidator interface {
	ValidateVerification(ctx context.Context, request services.Request) (*inventory.Inventory, error)
}

// VerifyCartonItemCommandHandler processes verification scans. A unit that no
// longer passes the validation pipeline voids the whole carton: every packed
// item is dropped and the carton must be repacked from scratch. Only a
// SYSTEM-typed inventory fault leaves the carton contents untouched.
type VerifyCartonItemCommandHandler struct {
	uowFactory CartonUoWFactory
	validator  VerificationValidator
}

// NewVerifyCartonItemCommandHandler creates a handler for verification scans.
func NewVerifyCartonItemCommandHandler(
	uowFactory CartonUoWFactory,
	validator VerificationValidator,
) (*VerifyCartonItemCommandHandler, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	if validator == nil {
		return nil, errs.NewValueIsRequiredError("validator")
	}

	return &VerifyCartonItemCommandHandler{uowFactory: uowFactory, validator: validator}, nil
}

// Handle verifies one packed unit and returns the updated carton.
func (h *VerifyCartonItemCommandHandler) Handle(
	ctx context.Context,
	cmd VerifyCartonItemCommand,
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
	if !aggregate.CanVerify() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"carton",
			fmt.Errorf("carton %s cannot be verified", aggregate.CartonNumber()),
		)
	}
	if _, ok := aggregate.FindItem(cmd.UnitNumber(), cmd.ProductCode()); !ok {
		return nil, errs.NewObjectNotFoundError("unitNumber", cmd.UnitNumber())
	}

	shp, err := shipmentRepo.Get(ctx, aggregate.ShipmentID())
	if err != nil {
		return nil, err
	}

	if _, err := h.validator.ValidateVerification(ctx, services.Request{
		UnitNumber:   cmd.UnitNumber(),
		ProductCode:  cmd.ProductCode(),
		LocationCode: cmd.LocationCode(),
		EmployeeID:   cmd.EmployeeID(),
		ProductType:  shp.ProductType(),
		CustomerCode: shp.Customer().Code(),
		// The unit counts itself among the packed products.
		TotalProducts: aggregate.TotalProducts() - 1,
	}); err != nil {
		var rejected *inventory.RejectedError
		if errors.As(err, &rejected) && rejected.IsSystem() {
			return nil, err
		}

		// The carton contents can no longer be trusted. Drop everything and
		// force a repack.
		if deleteErr := cartonRepo.DeleteItems(ctx, aggregate.ID()); deleteErr != nil {
			return nil, deleteErr
		}
		if commitErr := uow.Commit(ctx); commitErr != nil {
			return nil, commitErr
		}
		return nil, err
	}

	if _, err := aggregate.MarkItemVerified(cmd.UnitNumber(), cmd.ProductCode()); err != nil {
		return nil, err
	}

	if err := cartonRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
