// Package queries contains read-only operations against the shipping data.
// Implements the query side of the CQRS architecture: list queries read the
// database directly, document queries assemble domain aggregates and hand
// them to the report generators.
package queries

import (
	"errors"
	"time"

	"plasmashipping/internal/pkg/guard"
)

var (
	ErrGetShipmentsQueryIsNotConstructed = errors.New(
		"GetShipmentsQuery must be created via NewGetShipmentsQuery constructor",
	)
	ErrLocationCodeIsRequired = errors.New("location code is required")
)

// GetShipmentsQuery retrieves the shipments of a collection location,
// optionally narrowed by status and ship date range.
//
// Example:
//
//	query, err := NewGetShipmentsQuery("MH1", "OPEN", nil, nil)
//	handler := NewGetShipmentsQueryHandler(db)
//	shipments, err := handler.Handle(ctx, query)
type GetShipmentsQuery struct {
	locationCode string
	status       string
	dateFrom     *time.Time
	dateTo       *time.Time

	guard guard.ConstructorGuard
}

// NewGetShipmentsQuery creates a query for the shipment list screen.
// Status and date range are optional filters.
func NewGetShipmentsQuery(locationCode, status string, dateFrom, dateTo *time.Time) (GetShipmentsQuery, error) {
	if locationCode == "" {
		return GetShipmentsQuery{}, ErrLocationCodeIsRequired
	}

	return GetShipmentsQuery{
		locationCode: locationCode,
		status:       status,
		dateFrom:     dateFrom,
		dateTo:       dateTo,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentsQueryIsNotConstructed)
}

// LocationCode returns the collection location filter.
func (q GetShipmentsQuery) LocationCode() string {
	return q.locationCode
}

// Status returns the optional status filter, empty for all statuses.
func (q GetShipmentsQuery) Status() string {
	return q.status
}

// DateFrom returns the optional lower bound of the ship date filter.
func (q GetShipmentsQuery) DateFrom() *time.Time {
	return q.dateFrom
}

// DateTo returns the optional upper bound of the ship date filter.
func (q GetShipmentsQuery) DateTo() *time.Time {
	return q.dateTo
}

// GetShipmentsQueryResponse is one row of the shipment list screen.
type GetShipmentsQueryResponse struct {
	ShipmentID     int64
	ShipmentNumber string
	Status         string
	CustomerCode   string
	CustomerName   string
	ProductType    string
	ShipmentDate   time.Time
	TotalCartons   int
	CreateDate     time.Time
}
