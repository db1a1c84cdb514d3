package ports

import (
	"context"

	"plasmashipping/internal/core/domain/model/inventory"
)

// InventoryService validates physical units against the live inventory
// system.
type InventoryService interface {
	// ValidateInventory checks a single unit. The returned validation carries
	// the inventory snapshot and any rejection notifications.
	ValidateInventory(ctx context.Context, request inventory.ValidationRequest) (*inventory.Validation, error)

	// ValidateInventoryBatch checks every unit of a shipment during the
	// close-time batch revalidation.
	ValidateInventoryBatch(ctx context.Context, requests []inventory.ValidationRequest) ([]*inventory.Validation, error)
}
