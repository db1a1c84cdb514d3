package commands

import (
	"errors"

	"plasmashipping/internal/pkg/guard"
)

var ErrCloseCartonCommandIsNotConstructed = errors.New(
	"CloseCartonCommand must be created via NewCloseCartonCommand constructor",
)

// CloseCartonCommand represents a request to seal a fully verified carton.
type CloseCartonCommand struct { //nolint:recvcheck //using for validation
	cartonID   int64
	employeeID string

	guard guard.ConstructorGuard
}

// NewCloseCartonCommand creates a command to seal a carton.
func NewCloseCartonCommand(cartonID int64, employeeID string) (CloseCartonCommand, error) {
	closeCommand := CloseCartonCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		closeCommand.setCartonID(cartonID),
		closeCommand.setEmployeeID(employeeID),
	); err != nil {
		return CloseCartonCommand{}, err
	}

	return closeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseCartonCommand) Validate() error {
	return c.guard.Validate(ErrCloseCartonCommandIsNotConstructed)
}

// CartonID returns the identifier of the carton to seal.
func (c CloseCartonCommand) CartonID() int64 {
	return c.cartonID
}

// EmployeeID returns the identifier of the closing employee.
func (c CloseCartonCommand) EmployeeID() string {
	return c.employeeID
}

func (c *CloseCartonCommand) setCartonID(cartonID int64) error {
	if cartonID <= 0 {
		return ErrCartonIDIsRequired
	}

	c.cartonID = cartonID
	return nil
}

func (c *CloseCartonCommand) setEmployeeID(employeeID string) error {
	if employeeID == "" {
		return ErrEmployeeIDIsRequired
	}

	c.employeeID = employeeID
	return nil
}
