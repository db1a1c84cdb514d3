package commands

import (
	"errors"

	"plasmashipping/internal/pkg/guard"
)

var ErrCreateCartonCommandIsNotConstructed = errors.New(
	"CreateCartonCommand must be created via NewCreateCartonCommand constructor",
)

// CreateCartonCommand represents a request to add a new carton to an open
// shipment. The carton number and sequence are assigned by the handler.
type CreateCartonCommand struct { //nolint:recvcheck //using for validation
	shipmentID int64
	employeeID string

	guard guard.ConstructorGuard
}

// NewCreateCartonCommand creates a command to add a carton to a shipment.
func NewCreateCartonCommand(shipmentID int64, employeeID string) (CreateCartonCommand, error) {
	cartonCommand := CreateCartonCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cartonCommand.setShipmentID(shipmentID),
		cartonCommand.setEmployeeID(employeeID),
	); err != nil {
		return CreateCartonCommand{}, err
	}

	return cartonCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCartonCommand) Validate() error {
	return c.guard.Validate(ErrCreateCartonCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment receiving the carton.
func (c CreateCartonCommand) ShipmentID() int64 {
	return c.shipmentID
}

// EmployeeID returns the identifier of the creating employee.
func (c CreateCartonCommand) EmployeeID() string {
	return c.employeeID
}

func (c *CreateCartonCommand) setShipmentID(shipmentID int64) error {
	if shipmentID <= 0 {
		return ErrShipmentIDIsRequired
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateCartonCommand) setEmployeeID(employeeID string) error {
	if employeeID == "" {
		return ErrEmployeeIDIsRequired
	}

	c.employeeID = employeeID
	return nil
}
