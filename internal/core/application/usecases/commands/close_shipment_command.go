package commands

import (
	"errors"
	"time"

	"plasmashipping/internal/pkg/guard"
)

var ErrCloseShipmentCommandIsNotConstructed = errors.New(
	"CloseShipmentCommand must be created via NewCloseShipmentCommand constructor",
)

// CloseShipmentCommand represents a request to close a shipment. Accepting
// the request moves the shipment to Processing; the final close happens
// asynchronously once the batch revalidation confirms every packed unit.
type CloseShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID int64
	shipDate   time.Time
	employeeID string

	guard guard.ConstructorGuard
}

// NewCloseShipmentCommand creates a command to request a shipment close.
// The ship date rule is enforced by the shipment aggregate.
func NewCloseShipmentCommand(shipmentID int64, shipDate time.Time, employeeID string) (CloseShipmentCommand, error) {
	closeCommand := CloseShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		closeCommand.setShipmentID(shipmentID),
		closeCommand.setEmployeeID(employeeID),
	); err != nil {
		return CloseShipmentCommand{}, err
	}

	closeCommand.shipDate = shipDate
	return closeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCloseShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to close.
func (c CloseShipmentCommand) ShipmentID() int64 {
	return c.shipmentID
}

// ShipDate returns the actual ship date recorded at close time.
func (c CloseShipmentCommand) ShipDate() time.Time {
	return c.shipDate
}

// EmployeeID returns the identifier of the closing employee.
func (c CloseShipmentCommand) EmployeeID() string {
	return c.employeeID
}

func (c *CloseShipmentCommand) setShipmentID(shipmentID int64) error {
	if shipmentID <= 0 {
		return ErrShipmentIDIsRequired
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CloseShipmentCommand) setEmployeeID(employeeID string) error {
	if employeeID == "" {
		return ErrEmployeeIDIsRequired
	}

	c.employeeID = employeeID
	return nil
}
