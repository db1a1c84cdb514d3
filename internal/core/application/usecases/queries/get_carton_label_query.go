package queries

import (
	"errors"

	"plasmashipping/internal/pkg/guard"
)

var ErrGetCartonLabelQueryIsNotConstructed = errors.New(
	"GetCartonLabelQuery must be created via NewGetCartonLabelQuery constructor",
)

// GetCartonLabelQuery retrieves the shipping label of a closed carton.
type GetCartonLabelQuery struct {
	cartonID int64

	guard guard.ConstructorGuard
}

// NewGetCartonLabelQuery creates a query for a carton label.
func NewGetCartonLabelQuery(cartonID int64) (GetCartonLabelQuery, error) {
	if cartonID <= 0 {
		return GetCartonLabelQuery{}, ErrCartonIDIsRequired
	}

	return GetCartonLabelQuery{cartonID: cartonID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartonLabelQuery) Validate() error {
	return q.guard.Validate(ErrGetCartonLabelQueryIsNotConstructed)
}

// CartonID returns the identifier of the carton to print.
func (q GetCartonLabelQuery) CartonID() int64 {
	return q.cartonID
}
