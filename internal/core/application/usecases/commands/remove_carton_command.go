package commands

import (
	"errors"

	"plasmashipping/internal/pkg/guard"
)

var ErrRemoveCartonCommandIsNotConstructed = errors.New(
	"RemoveCartonCommand must be created via NewRemoveCartonCommand constructor",
)

// RemoveCartonCommand represents a request to delete a carton from a
// shipment. Only the carton with the highest sequence can be removed, so the
// numbering stays contiguous.
type RemoveCartonCommand struct { //nolint:recvcheck //using for validation
	cartonID   int64
	employeeID string

	guard guard.ConstructorGuard
}

// NewRemoveCartonCommand creates a command to delete a carton.
func NewRemoveCartonCommand(cartonID int64, employeeID string) (RemoveCartonCommand, error) {
	removeCommand := RemoveCartonCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		removeCommand.setCartonID(cartonID),
		removeCommand.setEmployeeID(employeeID),
	); err != nil {
		return RemoveCartonCommand{}, err
	}

	return removeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartonCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartonCommandIsNotConstructed)
}

// CartonID returns the identifier of the carton to delete.
func (c RemoveCartonCommand) CartonID() int64 {
	return c.cartonID
}

// EmployeeID returns the identifier of the deleting employee.
func (c RemoveCartonCommand) EmployeeID() string {
	return c.employeeID
}

func (c *RemoveCartonCommand) setCartonID(cartonID int64) error {
	if cartonID <= 0 {
		return ErrCartonIDIsRequired
	}

	c.cartonID = cartonID
	return nil
}

func (c *RemoveCartonCommand) setEmployeeID(employeeID string) error {
	if employeeID == "" {
		return ErrEmployeeIDIsRequired
	}

	c.employeeID = employeeID
	return nil
}
