package commands

import (
	"errors"

	"plasmashipping/internal/pkg/guard"
)

var ErrVerifyCartonItemCommandIsNotConstructed = errors.New(
	"VerifyCartonItemCommand must be created via NewVerifyCartonItemCommand constructor",
)

// VerifyCartonItemCommand represents a request to verify one packed unit by
// a second scan before the carton can be closed.
type VerifyCartonItemCommand struct { //nolint:recvcheck //using for validation
	cartonID     int64
	unitNumber   string
	productCode  string
	locationCode string
	employeeID   string

	guard guard.ConstructorGuard
}

// NewVerifyCartonItemCommand creates a command to verify a packed unit.
func NewVerifyCartonItemCommand(
	cartonID int64,
	unitNumber string,
	productCode string,
	locationCode string,
	employeeID string,
) (VerifyCartonItemCommand, error) {
	verifyCommand := VerifyCartonItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		verifyCommand.setCartonID(cartonID),
		verifyCommand.setUnitNumber(unitNumber),
		verifyCommand.setProductCode(productCode),
		verifyCommand.setLocationCode(locationCode),
		verifyCommand.setEmployeeID(employeeID),
	); err != nil {
		return VerifyCartonItemCommand{}, err
	}

	return verifyCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyCartonItemCommand) Validate() error {
	return c.guard.Validate(ErrVerifyCartonItemCommandIsNotConstructed)
}

// CartonID returns the identifier of the target carton.
func (c VerifyCartonItemCommand) CartonID() int64 {
	return c.cartonID
}

// UnitNumber returns the scanned unit number.
func (c VerifyCartonItemCommand) UnitNumber() string {
	return c.unitNumber
}

// ProductCode returns the scanned product code.
func (c VerifyCartonItemCommand) ProductCode() string {
	return c.productCode
}

// LocationCode returns the code of the verifying location.
func (c VerifyCartonItemCommand) LocationCode() string {
	return c.locationCode
}

// EmployeeID returns the identifier of the verifying employee.
func (c VerifyCartonItemCommand) EmployeeID() string {
	return c.employeeID
}

func (c *VerifyCartonItemCommand) setCartonID(cartonID int64) error {
	if cartonID <= 0 {
		return ErrCartonIDIsRequired
	}

	c.cartonID = cartonID
	return nil
}

func (c *VerifyCartonItemCommand) setUnitNumber(unitNumber string) error {
	if unitNumber == "" {
		return ErrUnitNumberIsRequired
	}

	c.unitNumber = unitNumber
	return nil
}

func (c *VerifyCartonItemCommand) setProductCode(productCode string) error {
	if productCode == "" {
		return ErrProductCodeIsRequired
	}

	c.productCode = productCode
	return nil
}

func (c *VerifyCartonItemCommand) setLocationCode(locationCode string) error {
	if locationCode == "" {
		return ErrLocationCodeIsRequired
	}

	c.locationCode = locationCode
	return nil
}

func (c *VerifyCartonItemCommand) setEmployeeID(employeeID string) error {
	if employeeID == "" {
		return ErrEmployeeIDIsRequired
	}

	c.employeeID = employeeID
	return nil
}
