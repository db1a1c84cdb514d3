package queries

import (
	"errors"

	"plasmashipping/internal/pkg/guard"
)

var ErrGetUnacceptableUnitsQueryIsNotConstructed = errors.New(
	"GetUnacceptableUnitsQuery must be created via NewGetUnacceptableUnitsQuery constructor",
)

// GetUnacceptableUnitsQuery retrieves the rejection report of the last batch
// revalidation run for a shipment.
type GetUnacceptableUnitsQuery struct {
	shipmentID int64

	guard guard.ConstructorGuard
}

// NewGetUnacceptableUnitsQuery creates a query for the rejection report.
func NewGetUnacceptableUnitsQuery(shipmentID int64) (GetUnacceptableUnitsQuery, error) {
	if shipmentID <= 0 {
		return GetUnacceptableUnitsQuery{}, ErrShipmentIDIsRequired
	}

	return GetUnacceptableUnitsQuery{shipmentID: shipmentID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUnacceptableUnitsQuery) Validate() error {
	return q.guard.Validate(ErrGetUnacceptableUnitsQueryIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to report on.
func (q GetUnacceptableUnitsQuery) ShipmentID() int64 {
	return q.shipmentID
}
