package queries

import (
	"errors"

	"plasmashipping/internal/core/domain/model/shipment"
	"plasmashipping/internal/pkg/guard"
)

var (
	ErrFindShipmentQueryIsNotConstructed = errors.New(
		"FindShipmentQuery must be created via NewFindShipmentQuery constructor",
	)
	ErrShipmentIDIsRequired = errors.New("shipment id is required")
)

// FindShipmentQuery retrieves one shipment with its cartons for the packing
// screen. The requesting location decides whether cartons can be added: a
// shipment is only packable at the location that created it.
type FindShipmentQuery struct {
	shipmentID   int64
	locationCode string

	guard guard.ConstructorGuard
}

// NewFindShipmentQuery creates a query for the shipment detail screen.
func NewFindShipmentQuery(shipmentID int64, locationCode string) (FindShipmentQuery, error) {
	if shipmentID <= 0 {
		return FindShipmentQuery{}, ErrShipmentIDIsRequired
	}
	if locationCode == "" {
		return FindShipmentQuery{}, ErrLocationCodeIsRequired
	}

	return FindShipmentQuery{
		shipmentID:   shipmentID,
		locationCode: locationCode,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q FindShipmentQuery) Validate() error {
	return q.guard.Validate(ErrFindShipmentQueryIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to load.
func (q FindShipmentQuery) ShipmentID() int64 {
	return q.shipmentID
}

// LocationCode returns the code of the requesting location.
func (q FindShipmentQuery) LocationCode() string {
	return q.locationCode
}

// FindShipmentQueryResponse carries the loaded aggregate and the packing
// permissions computed for the requesting location.
type FindShipmentQueryResponse struct {
	Shipment     *shipment.Shipment
	CanAddCarton bool
	CanClose     bool
}
