package commands

import (
	"errors"

	"plasmashipping/internal/pkg/guard"
)

var ErrRemoveCartonItemCommandIsNotConstructed = errors.New(
	"RemoveCartonItemCommand must be created via NewRemoveCartonItemCommand constructor",
)

// RemoveCartonItemCommand represents a request to take one packed unit back
// out of an open carton. Removing a unit voids all prior verification scans
// of the carton.
type RemoveCartonItemCommand struct { //nolint:recvcheck //using for validation
	cartonID    int64
	unitNumber  string
	productCode string
	employeeID  string

	guard guard.ConstructorGuard
}

// NewRemoveCartonItemCommand creates a command to unpack a unit.
func NewRemoveCartonItemCommand(
	cartonID int64,
	unitNumber string,
	productCode string,
	employeeID string,
) (RemoveCartonItemCommand, error) {
	removeCommand := RemoveCartonItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		removeCommand.setCartonID(cartonID),
		removeCommand.setUnitNumber(unitNumber),
		removeCommand.setProductCode(productCode),
		removeCommand.setEmployeeID(employeeID),
	); err != nil {
		return RemoveCartonItemCommand{}, err
	}

	return removeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartonItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartonItemCommandIsNotConstructed)
}

// CartonID returns the identifier of the carton being unpacked.
func (c RemoveCartonItemCommand) CartonID() int64 {
	return c.cartonID
}

// UnitNumber returns the unit number to remove.
func (c RemoveCartonItemCommand) UnitNumber() string {
	return c.unitNumber
}

// ProductCode returns the product code to remove.
func (c RemoveCartonItemCommand) ProductCode() string {
	return c.productCode
}

// EmployeeID returns the identifier of the unpacking employee.
func (c RemoveCartonItemCommand) EmployeeID() string {
	return c.employeeID
}

func (c *RemoveCartonItemCommand) setCartonID(cartonID int64) error {
	if cartonID <= 0 {
		return ErrCartonIDIsRequired
	}

	c.cartonID = cartonID
	return nil
}

func (c *RemoveCartonItemCommand) setUnitNumber(unitNumber string) error {
	if unitNumber == "" {
		return ErrUnitNumberIsRequired
	}

	c.unitNumber = unitNumber
	return nil
}

func (c *RemoveCartonItemCommand) setProductCode(productCode string) error {
	if productCode == "" {
		return ErrProductCodeIsRequired
	}

	c.productCode = productCode
	return nil
}

func (c *RemoveCartonItemCommand) setEmployeeID(employeeID string) error {
	if employeeID == "" {
		return ErrEmployeeIDIsRequired
	}

	c.employeeID = employeeID
	return nil
}
