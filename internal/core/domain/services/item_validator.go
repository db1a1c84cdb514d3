package services

import (
	"context"
	"errors"

	"plasmashipping/internal/core/domain/model/criteria"
	"plasmashipping/internal/core/domain/model/inventory"
	"plasmashipping/internal/pkg/errs"
)

// PackedUnitCounter reports how many times a unit is already packed across
// all cartons.
type PackedUnitCounter interface {
	CountByProduct(ctx context.Context, unitNumber, productCode string) (int64, error)
}

// ProductTypeResolver maps a product code to its registered product type.
type ProductTypeResolver interface {
	FindProductTypeByCode(ctx context.Context, productCode string) (*criteria.ProductType, error)
}

// CriteriaResolver loads the packing criteria configured for a customer and
// product type.
type CriteriaResolver interface {
	FindProductCriteria(ctx context.Context, productType, customerCode string) (*criteria.ShipmentCriteria, error)
}

// InventoryGateway validates a unit against the live inventory system.
type InventoryGateway interface {
	ValidateInventory(ctx context.Context, request inventory.ValidationRequest) (*inventory.Validation, error)
}

// ItemValidator runs the packing validation pipeline: duplicate packing
// check, product type check, inventory validation and product criteria
// checks, in that order. The first failing stage rejects the unit.
//
// Failures map to three error categories:
//   - *inventory.RejectedError with SYSTEM severity for infrastructure faults
//   - *inventory.RejectedError with WARN severity for business rejections
//   - *criteria.ValidationError for customer criteria breaches
type ItemValidator struct {
	packedUnits      PackedUnitCounter
	productTypes     ProductTypeResolver
	criteriaResolver CriteriaResolver
	inventoryGateway InventoryGateway
}

// NewItemValidator wires the pipeline dependencies.
func NewItemValidator(
	packedUnits PackedUnitCounter,
	productTypes ProductTypeResolver,
	criteriaResolver CriteriaResolver,
	inventoryGateway InventoryGateway,
) (*ItemValidator, error) {
	if packedUnits == nil {
		return nil, errs.NewValueIsRequiredError("packedUnits")
	}
	if productTypes == nil {
		return nil, errs.NewValueIsRequiredError("productTypes")
	}
	if criteriaResolver == nil {
		return nil, errs.NewValueIsRequiredError("criteriaResolver")
	}
	if inventoryGateway == nil {
		return nil, errs.NewValueIsRequiredError("inventoryGateway")
	}
	return &ItemValidator{
		packedUnits:      packedUnits,
		productTypes:     productTypes,
		criteriaResolver: criteriaResolver,
		inventoryGateway: inventoryGateway,
	}, nil
}

// Request carries the unit and packing context being validated.
type Request struct {
	UnitNumber    string
	ProductCode   string
	LocationCode  string
	EmployeeID    string
	ProductType   string
	CustomerCode  string
	TotalProducts int
}

// Validate runs the full pipeline and returns the validated inventory
// snapshot that the carton item is built from.
func (v *ItemValidator) Validate(ctx context.Context, request Request) (*inventory.Inventory, error) {
	if err := v.checkAlreadyPacked(ctx, request); err != nil {
		return nil, err
	}
	if err := v.checkProductType(ctx, request); err != nil {
		return nil, err
	}

	validation, err := v.checkInventory(ctx, request)
	if err != nil {
		return nil, err
	}

	if err := v.checkCriteria(ctx, request, validation.Inventory); err != nil {
		return nil, err
	}

	return validation.Inventory, nil
}

// ValidateVerification re-runs the pipeline for a unit that is already
// packed. The duplicate guard is skipped since the unit legitimately sits in
// its carton; product type, inventory and criteria checks run unchanged.
// Request.TotalProducts must exclude the unit under verification.
func (v *ItemValidator) ValidateVerification(ctx context.Context, request Request) (*inventory.Inventory, error) {
	if err := v.checkProductType(ctx, request); err != nil {
		return nil, err
	}

	validation, err := v.checkInventory(ctx, request)
	if err != nil {
		return nil, err
	}

	if err := v.checkCriteria(ctx, request, validation.Inventory); err != nil {
		return nil, err
	}

	return validation.Inventory, nil
}

func (v *ItemValidator) checkAlreadyPacked(ctx context.Context, request Request) error {
	count, err := v.packedUnits.CountByProduct(ctx, request.UnitNumber, request.ProductCode)
	if err != nil {
		return inventory.NewRejectedError(err.Error(), inventory.ErrorTypeSystem)
	}
	if count > 0 {
		return inventory.NewRejectedError("Product already used", inventory.ErrorTypeWarn)
	}
	return nil
}

func (v *ItemValidator) checkProductType(ctx context.Context, request Request) error {
	productType, err := v.productTypes.FindProductTypeByCode(ctx, request.ProductCode)
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return inventory.NewRejectedError("Product Type does not match", inventory.ErrorTypeWarn)
		}
		return inventory.NewRejectedError(err.Error(), inventory.ErrorTypeSystem)
	}
	if productType == nil || productType.Code() != request.ProductType {
		return inventory.NewRejectedError("Product Type does not match", inventory.ErrorTypeWarn)
	}
	return nil
}

func (v *ItemValidator) checkInventory(ctx context.Context, request Request) (*inventory.Validation, error) {
	validation, err := v.inventoryGateway.ValidateInventory(ctx, inventory.ValidationRequest{
		UnitNumber:   request.UnitNumber,
		ProductCode:  request.ProductCode,
		LocationCode: request.LocationCode,
		EmployeeID:   request.EmployeeID,
	})
	if err != nil {
		return nil, inventory.NewRejectedError(err.Error(), inventory.ErrorTypeSystem)
	}
	if validation == nil || validation.Inventory == nil || !validation.IsAccepted() {
		return nil, inventory.NewRejectedErrorWithValidation(
			"Inventory Validation failed", inventory.ErrorTypeWarn, validation)
	}
	return validation, nil
}

func (v *ItemValidator) checkCriteria(ctx context.Context, request Request, inv *inventory.Inventory) error {
	shipmentCriteria, err := v.criteriaResolver.FindProductCriteria(ctx, request.ProductType, request.CustomerCode)
	if err != nil {
		return err
	}
	if shipmentCriteria == nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"criteria",
			errors.New("Product Criteria not found"),
		)
	}

	if item, ok := shipmentCriteria.FindItemByType(criteria.MinimumVolumeType); ok {
		minVolume, err := item.IntValue()
		if err != nil {
			return err
		}
		if inv.VolumeByType(inventory.VolumeTypeVolume) < minVolume {
			return criteria.NewValidationError(item)
		}
	}

	if item, ok := shipmentCriteria.FindItemByType(criteria.MaximumUnitsByCartonType); ok {
		maxUnits, err := item.IntValue()
		if err != nil {
			return err
		}
		if request.TotalProducts+1 > maxUnits {
			return criteria.NewValidationError(item)
		}
	}

	return nil
}
