package ports

import (
	"context"

	"plasmashipping/internal/core/domain/model/carton"
)

// CartonRepository defines the persistence contract for carton aggregates,
// including the atomic carton number counter.
type CartonRepository interface {
	// Add persists a new carton aggregate to storage and assigns its ID.
	Add(ctx context.Context, aggregate *carton.Carton) error

	// Update persists changes to an existing carton aggregate and its items.
	Update(ctx context.Context, aggregate *carton.Carton) error

	// Get retrieves a carton by its identifier, with items loaded.
	Get(ctx context.Context, id int64) (*carton.Carton, error)

	// GetAllByShipment retrieves every carton of a shipment in sequence order.
	GetAllByShipment(ctx context.Context, shipmentID int64) ([]*carton.Carton, error)

	// CountByShipment returns the number of cartons attached to a shipment,
	// removed cartons excluded. Used to assign the next carton sequence.
	CountByShipment(ctx context.Context, shipmentID int64) (int, error)

	// NextCartonID draws the next value from the carton number counter.
	// The counter is atomic at the storage layer; values are never reused.
	NextCartonID(ctx context.Context) (int64, error)

	// CountByProduct returns how many times a unit is packed across all
	// cartons. Used by the duplicate packing check.
	CountByProduct(ctx context.Context, unitNumber, productCode string) (int64, error)

	// DeleteItems removes all packed items of a carton.
	DeleteItems(ctx context.Context, cartonID int64) error
}
