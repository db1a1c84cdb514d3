package ports

import (
	"context"

	"plasmashipping/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment
// aggregates, including the atomic shipment number counter and the
// modification audit trail.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage and assigns its ID.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by its identifier, with cartons and their
	// items loaded.
	Get(ctx context.Context, id int64) (*shipment.Shipment, error)

	// GetAllInStatus retrieves all shipments currently in the given status.
	GetAllInStatus(ctx context.Context, status shipment.Status) ([]*shipment.Shipment, error)

	// NextShipmentID draws the next value from the shipment number counter.
	// The counter is atomic at the storage layer; values are never reused.
	NextShipmentID(ctx context.Context) (int64, error)

	// AddHistory appends a modification audit record.
	AddHistory(ctx context.Context, record *shipment.History) error
}
