package commands

import (
	"errors"

	"plasmashipping/internal/pkg/guard"
)

var ErrRepackCartonCommandIsNotConstructed = errors.New(
	"RepackCartonCommand must be created via NewRepackCartonCommand constructor",
)

// RepackCartonCommand represents a request to reopen a carton flagged for
// repack. Reopening empties the carton; the reason is kept on the audit
// trail.
type RepackCartonCommand struct { //nolint:recvcheck //using for validation
	cartonID   int64
	employeeID string
	comments   string

	guard guard.ConstructorGuard
}

// NewRepackCartonCommand creates a command to reopen a flagged carton.
// The comment length rule is enforced by the carton aggregate.
func NewRepackCartonCommand(cartonID int64, employeeID, comments string) (RepackCartonCommand, error) {
	repackCommand := RepackCartonCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		repackCommand.setCartonID(cartonID),
		repackCommand.setEmployeeID(employeeID),
	); err != nil {
		return RepackCartonCommand{}, err
	}

	repackCommand.comments = comments
	return repackCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RepackCartonCommand) Validate() error {
	return c.guard.Validate(ErrRepackCartonCommandIsNotConstructed)
}

// CartonID returns the identifier of the carton to reopen.
func (c RepackCartonCommand) CartonID() int64 {
	return c.cartonID
}

// EmployeeID returns the identifier of the employee reopening the carton.
func (c RepackCartonCommand) EmployeeID() string {
	return c.employeeID
}

// Comments returns the repack reason for the audit trail.
func (c RepackCartonCommand) Comments() string {
	return c.comments
}

func (c *RepackCartonCommand) setCartonID(cartonID int64) error {
	if cartonID <= 0 {
		return ErrCartonIDIsRequired
	}

	c.cartonID = cartonID
	return nil
}

func (c *RepackCartonCommand) setEmployeeID(employeeID string) error {
	if employeeID == "" {
		return ErrEmployeeIDIsRequired
	}

	c.employeeID = employeeID
	return nil
}
