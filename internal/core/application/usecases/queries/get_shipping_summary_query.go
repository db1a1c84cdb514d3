package queries

import (
	"errors"

	"plasmashipping/internal/pkg/guard"
)

var ErrGetShippingSummaryQueryIsNotConstructed = errors.New(
	"GetShippingSummaryQuery must be created via NewGetShippingSummaryQuery constructor",
)

// GetShippingSummaryQuery retrieves the summary report of a closed
// shipment.
type GetShippingSummaryQuery struct {
	shipmentID int64

	guard guard.ConstructorGuard
}

// NewGetShippingSummaryQuery creates a query for a shipping summary report.
func NewGetShippingSummaryQuery(shipmentID int64) (GetShippingSummaryQuery, error) {
	if shipmentID <= 0 {
		return GetShippingSummaryQuery{}, ErrShipmentIDIsRequired
	}

	return GetShippingSummaryQuery{shipmentID: shipmentID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShippingSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetShippingSummaryQueryIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to print.
func (q GetShippingSummaryQuery) ShipmentID() int64 {
	return q.shipmentID
}
