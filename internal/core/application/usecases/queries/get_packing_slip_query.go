package queries

import (
	"errors"

	"plasmashipping/internal/pkg/guard"
)

var (
	ErrGetPackingSlipQueryIsNotConstructed = errors.New(
		"GetPackingSlipQuery must be created via NewGetPackingSlipQuery constructor",
	)
	ErrCartonIDIsRequired = errors.New("carton id is required")
)

// GetPackingSlipQuery retrieves the packing slip document of a closed
// carton.
type GetPackingSlipQuery struct {
	cartonID int64

	guard guard.ConstructorGuard
}

// NewGetPackingSlipQuery creates a query for a carton packing slip.
func NewGetPackingSlipQuery(cartonID int64) (GetPackingSlipQuery, error) {
	if cartonID <= 0 {
		return GetPackingSlipQuery{}, ErrCartonIDIsRequired
	}

	return GetPackingSlipQuery{cartonID: cartonID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPackingSlipQuery) Validate() error {
	return q.guard.Validate(ErrGetPackingSlipQueryIsNotConstructed)
}

// CartonID returns the identifier of the carton to print.
func (q GetPackingSlipQuery) CartonID() int64 {
	return q.cartonID
}
