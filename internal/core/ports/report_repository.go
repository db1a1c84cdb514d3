package ports

import (
	"context"

	"plasmashipping/internal/core/domain/model/report"
)

// UnacceptableUnitReportRepository persists the rejection entries produced by
// the close-time batch revalidation.
type UnacceptableUnitReportRepository interface {
	// Add persists a rejection entry.
	Add(ctx context.Context, item *report.UnacceptableUnitItem) error

	// GetAllByShipment retrieves the rejection entries of a shipment.
	GetAllByShipment(ctx context.Context, shipmentID int64) ([]*report.UnacceptableUnitItem, error)

	// DeleteAllByShipment drops the entries of a previous revalidation run.
	DeleteAllByShipment(ctx context.Context, shipmentID int64) error
}
