package commands

import (
	"errors"

	"plasmashipping/internal/pkg/guard"
)

var ErrProcessShipmentCommandIsNotConstructed = errors.New(
	"ProcessShipmentCommand must be created via NewProcessShipmentCommand constructor",
)

// ProcessShipmentCommand represents one batch revalidation run for a
// shipment in the Processing status. Issued by the background job, not by
// the HTTP boundary.
type ProcessShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID int64

	guard guard.ConstructorGuard
}

// NewProcessShipmentCommand creates a command to revalidate a shipment.
func NewProcessShipmentCommand(shipmentID int64) (ProcessShipmentCommand, error) {
	processCommand := ProcessShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := processCommand.setShipmentID(shipmentID); err != nil {
		return ProcessShipmentCommand{}, err
	}

	return processCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessShipmentCommand) Validate() error {
	return c.guard.Validate(ErrProcessShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to revalidate.
func (c ProcessShipmentCommand) ShipmentID() int64 {
	return c.shipmentID
}

func (c *ProcessShipmentCommand) setShipmentID(shipmentID int64) error {
	if shipmentID <= 0 {
		return ErrShipmentIDIsRequired
	}

	c.shipmentID = shipmentID
	return nil
}
