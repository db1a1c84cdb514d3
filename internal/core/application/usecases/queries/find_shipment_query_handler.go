package queries

import (
	"context"

	"plasmashipping/internal/core/ports"
	"plasmashipping/internal/pkg/errs"
)

// FindShipmentQueryHandler loads a shipment aggregate with its cartons.
type FindShipmentQueryHandler struct {
	shipments ports.ShipmentRepository
}

// NewFindShipmentQueryHandler creates a handler for shipment detail queries.
func NewFindShipmentQueryHandler(shipments ports.ShipmentRepository) (*FindShipmentQueryHandler, error) {
	if shipments == nil {
		return nil, errs.NewValueIsRequiredError("shipments")
	}

	return &FindShipmentQueryHandler{shipments: shipments}, nil
}

// Handle loads the shipment. CanAddCarton is true only when the requesting
// location created the shipment and the shipment is still modifiable.
func (h *FindShipmentQueryHandler) Handle(
	ctx context.Context,
	query FindShipmentQuery,
) (*FindShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shp, err := h.shipments.Get(ctx, query.ShipmentID())
	if err != nil {
		return nil, err
	}

	sameLocation := shp.LocationCode() == query.LocationCode()

	return &FindShipmentQueryResponse{
		Shipment:     shp,
		CanAddCarton: sameLocation && shp.CanModify(),
		CanClose:     sameLocation && shp.CanClose(),
	}, nil
}
