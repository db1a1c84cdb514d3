package commands

import (
	"errors"

	"plasmashipping/internal/pkg/guard"
)

var (
	ErrPackCartonItemCommandIsNotConstructed = errors.New(
		"PackCartonItemCommand must be created via NewPackCartonItemCommand constructor",
	)
	ErrCartonIDIsRequired    = errors.New("carton id is required")
	ErrUnitNumberIsRequired  = errors.New("unit number is required")
	ErrProductCodeIsRequired = errors.New("product code is required")
)

// PackCartonItemCommand represents a request to pack one scanned unit into
// an open carton. The unit runs the full validation pipeline before it is
// added.
type PackCartonItemCommand struct { //nolint:recvcheck //using for validation
	cartonID     int64
	unitNumber   string
	productCode  string
	locationCode string
	employeeID   string

	guard guard.ConstructorGuard
}

// NewPackCartonItemCommand creates a command to pack a unit into a carton.
func NewPackCartonItemCommand(
	cartonID int64,
	unitNumber string,
	productCode string,
	locationCode string,
	employeeID string,
) (PackCartonItemCommand, error) {
	packCommand := PackCartonItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		packCommand.setCartonID(cartonID),
		packCommand.setUnitNumber(unitNumber),
		packCommand.setProductCode(productCode),
		packCommand.setLocationCode(locationCode),
		packCommand.setEmployeeID(employeeID),
	); err != nil {
		return PackCartonItemCommand{}, err
	}

	return packCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PackCartonItemCommand) Validate() error {
	return c.guard.Validate(ErrPackCartonItemCommandIsNotConstructed)
}

// CartonID returns the identifier of the target carton.
func (c PackCartonItemCommand) CartonID() int64 {
	return c.cartonID
}

// UnitNumber returns the scanned unit number.
func (c PackCartonItemCommand) UnitNumber() string {
	return c.unitNumber
}

// ProductCode returns the scanned product code.
func (c PackCartonItemCommand) ProductCode() string {
	return c.productCode
}

// LocationCode returns the code of the packing location.
func (c PackCartonItemCommand) LocationCode() string {
	return c.locationCode
}

// EmployeeID returns the identifier of the packing employee.
func (c PackCartonItemCommand) EmployeeID() string {
	return c.employeeID
}

func (c *PackCartonItemCommand) setCartonID(cartonID int64) error {
	if cartonID <= 0 {
		return ErrCartonIDIsRequired
	}

	c.cartonID = cartonID
	return nil
}

func (c *PackCartonItemCommand) setUnitNumber(unitNumber string) error {
	if unitNumber == "" {
		return ErrUnitNumberIsRequired
	}

	c.unitNumber = unitNumber
	return nil
}

func (c *PackCartonItemCommand) setProductCode(productCode string) error {
	if productCode == "" {
		return ErrProductCodeIsRequired
	}

	c.productCode = productCode
	return nil
}

func (c *PackCartonItemCommand) setLocationCode(locationCode string) error {
	if locationCode == "" {
		return ErrLocationCodeIsRequired
	}

	c.locationCode = locationCode
	return nil
}

func (c *PackCartonItemCommand) setEmployeeID(employeeID string) error {
	if employeeID == "" {
		return ErrEmployeeIDIsRequired
	}

	c.employeeID = employeeID
	return nil
}
