package commands

import (
	"context"
	"fmt"
	"log/slog"

	"plasmashipping/internal/core/domain/events"
	"plasmashipping/internal/core/domain/model/carton"
	"plasmashipping/internal/core/domain/model/inventory"
	"plasmashipping/internal/core/domain/model/report"
	"plasmashipping/internal/core/domain/model/shipment"
	"plasmashipping/internal/core/ports"
	"plasmashipping/internal/pkg/errs"
)

// inventoryIsPacked marks the rejection the gateway raises for units this
// shipment packed itself. Expected during revalidation, not a failure.
const inventoryIsPacked = "INVENTORY_IS_PACKED"

// ProcessShipmentCommandHandler runs the close-time batch revalidation.
// Every packed unit is re-checked against the inventory system; units that
// no longer pass become unacceptable unit report entries and their cartons
// are flagged for repack. A clean run closes the shipment.
type ProcessShipmentCommandHandler struct {
	uowFactory UoWFactory
	inventory  ports.InventoryService
	publisher  ports.EventPublisher
}

// NewProcessShipmentCommandHandler creates a handler for batch revalidation.
func NewProcessShipmentCommandHandler(
	uowFactory UoWFactory,
	inventoryService ports.InventoryService,
	publisher ports.EventPublisher,
) (*ProcessShipmentCommandHandler, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	if inventoryService == nil {
		return nil, errs.NewValueIsRequiredError("inventoryService")
	}
	if publisher == nil {
		return nil, errs.NewValueIsRequiredError("publisher")
	}

	return &ProcessShipmentCommandHandler{
		uowFactory: uowFactory,
		inventory:  inventoryService,
		publisher:  publisher,
	}, nil
}

// packedUnit pairs one revalidation request with the carton it came from.
type packedUnit struct {
	carton *carton.Carton
	item   *carton.CartonItem
}

// Handle revalidates one shipment. An inventory transport failure marks the
// shipment with ERROR_PROCESSING and returns it to InProgress; business
// rejections produce report entries and a COMPLETED_FAILED outcome.
func (h *ProcessShipmentCommandHandler) Handle(ctx context.Context, cmd ProcessShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	shipmentRepo := uow.ShipmentRepository()
	cartonRepo := uow.CartonRepository()
	reportRepo := uow.UnacceptableUnitReportRepository()

	shp, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}
	if shp.Status() != shipment.Processing {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipment status",
			fmt.Errorf("shipment %s is %s and cannot be processed", shp.ShipmentNumber(), shp.Status()),
		)
	}

	cartons, err := cartonRepo.GetAllByShipment(ctx, shp.ID())
	if err != nil {
		return err
	}

	// Entries from a previous failed run are stale once a new run starts.
	if err := reportRepo.DeleteAllByShipment(ctx, shp.ID()); err != nil {
		return err
	}

	units, requests := collectPackedUnits(cartons, shp.LocationCode(), shp.CloseEmployeeID())

	validations, err := h.inventory.ValidateInventoryBatch(ctx, requests)
	if err != nil {
		slog.Error("batch inventory validation failed",
			"shipmentNumber", shp.ShipmentNumber(),
			"error", err,
		)
		return h.completeWithError(ctx, uow, shipmentRepo, shp)
	}

	flagged, err := h.recordRejections(ctx, reportRepo, shp, units, validations)
	if err != nil {
		return err
	}

	for _, flaggedCarton := range flagged {
		if err := flaggedCarton.MarkAsRepack(); err != nil {
			return err
		}
		if err := cartonRepo.Update(ctx, flaggedCarton); err != nil {
			return err
		}
	}

	shp.CompleteProcessing(len(flagged) > 0)
	if err := shipmentRepo.Update(ctx, shp); err != nil {
		return err
	}
	if err := uow.Commit(ctx); err != nil {
		return err
	}

	if shp.Status() == shipment.Closed {
		publishEvent(ctx, h.publisher, events.ShipmentClosed{
			ShipmentID:     shp.ID(),
			ShipmentNumber: shp.ShipmentNumber(),
			CloseDate:      *shp.CloseDate(),
			TotalCartons:   len(cartons),
			TotalProducts:  totalPackedProducts(cartons),
		})
	}

	return nil
}

// completeWithError records the system failure outcome. The shipment returns
// to InProgress so the operator can retry the close.
func (h *ProcessShipmentCommandHandler) completeWithError(
	ctx context.Context,
	uow UoW,
	shipmentRepo ports.ShipmentRepository,
	shp *shipment.Shipment,
) error {
	shp.MarkAsProcessingError()
	if err := shipmentRepo.Update(ctx, shp); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

// recordRejections writes one report entry per rejected unit and returns the
// cartons that must be repacked, keyed by carton id.
func (h *ProcessShipmentCommandHandler) recordRejections(
	ctx context.Context,
	reportRepo ports.UnacceptableUnitReportRepository,
	shp *shipment.Shipment,
	units []packedUnit,
	validations []*inventory.Validation,
) (map[int64]*carton.Carton, error) {
	flagged := make(map[int64]*carton.Carton)

	for i, validation := range validations {
		if i >= len(units) || validation.IsAccepted() {
			continue
		}

		unit := units[i]

		note := validation.FirstNotification()
		if note == nil {
			slog.Warn("rejected validation carries no notifications",
				"shipmentNumber", shp.ShipmentNumber(),
				"unitNumber", unit.item.UnitNumber(),
				"productCode", unit.item.ProductCode(),
			)
			continue
		}
		if note.ErrorName == inventoryIsPacked {
			continue
		}

		entry, err := report.NewUnacceptableUnitItem(
			shp.ID(),
			unit.carton.CartonNumber(),
			unit.item.UnitNumber(),
			unit.item.ProductCode(),
			note.ErrorName,
			note.Reason,
			note.Details,
		)
		if err != nil {
			return nil, err
		}
		if err := reportRepo.Add(ctx, entry); err != nil {
			return nil, err
		}

		flagged[unit.carton.ID()] = unit.carton
	}

	return flagged, nil
}

func collectPackedUnits(
	cartons []*carton.Carton,
	locationCode string,
	employeeID string,
) ([]packedUnit, []inventory.ValidationRequest) {
	var units []packedUnit
	var requests []inventory.ValidationRequest

	for _, c := range cartons {
		if c.Status() != carton.Closed {
			continue
		}
		for _, item := range c.Items() {
			units = append(units, packedUnit{carton: c, item: item})
			requests = append(requests, inventory.ValidationRequest{
				UnitNumber:   item.UnitNumber(),
				ProductCode:  item.ProductCode(),
				LocationCode: locationCode,
				EmployeeID:   employeeID,
			})
		}
	}

	return units, requests
}

func totalPackedProducts(cartons []*carton.Carton) int {
	total := 0
	for _, c := range cartons {
		if c.Status() == carton.Closed {
			total += c.TotalProducts()
		}
	}
	return total
}
