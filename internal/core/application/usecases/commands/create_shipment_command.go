package commands

import (
	"errors"
	"time"

	"plasmashipping/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrLocationCodeIsRequired    = errors.New("location code is required")
	ErrCustomerCodeIsRequired    = errors.New("customer code is required")
	ErrProductTypeIsRequired     = errors.New("product type is required")
	ErrEmployeeIDIsRequired      = errors.New("employee id is required")
	ErrCartonTareWeightIsInvalid = errors.New("carton tare weight must be greater than 0")
	ErrShipmentDateIsInThePast   = errors.New("Ship date cannot be in the past")
)

// CreateShipmentCommand represents a request to open a new recovered plasma
// shipment for a collection location and customer.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand("MIA", "CUST01", "RP_FROZEN",
//	    shipDate, 1.5, "TRN-99", "emp-001")
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory, locations, customers, criteriaRepo, publisher)
//	created, err := handler.Handle(ctx, cmd)
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	locationCode                  string
	customerCode                  string
	productType                   string
	shipmentDate                  time.Time
	cartonTareWeight              float64
	transportationReferenceNumber string
	employeeID                    string

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to open a new shipment.
// Validates that location, customer, product type and employee are present,
// that the tare weight is positive and that the ship date is not in the past.
func NewCreateShipmentCommand(
	locationCode string,
	customerCode string,
	productType string,
	shipmentDate time.Time,
	cartonTareWeight float64,
	transportationReferenceNumber string,
	employeeID string,
) (CreateShipmentCommand, error) {
	shipmentCommand := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipmentCommand.setLocationCode(locationCode),
		shipmentCommand.setCustomerCode(customerCode),
		shipmentCommand.setProductType(productType),
		shipmentCommand.setShipmentDate(shipmentDate),
		shipmentCommand.setCartonTareWeight(cartonTareWeight),
		shipmentCommand.setEmployeeID(employeeID),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	shipmentCommand.transportationReferenceNumber = transportationReferenceNumber
	return shipmentCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// LocationCode returns the code of the creating collection location.
func (c CreateShipmentCommand) LocationCode() string {
	return c.locationCode
}

// CustomerCode returns the code of the receiving customer.
func (c CreateShipmentCommand) CustomerCode() string {
	return c.customerCode
}

// ProductType returns the product type the shipment accepts.
func (c CreateShipmentCommand) ProductType() string {
	return c.productType
}

// ShipmentDate returns the planned ship date.
func (c CreateShipmentCommand) ShipmentDate() time.Time {
	return c.shipmentDate
}

// CartonTareWeight returns the empty carton weight used on reports.
func (c CreateShipmentCommand) CartonTareWeight() float64 {
	return c.cartonTareWeight
}

// TransportationReferenceNumber returns the optional transport reference.
func (c CreateShipmentCommand) TransportationReferenceNumber() string {
	return c.transportationReferenceNumber
}

// EmployeeID returns the identifier of the creating employee.
func (c CreateShipmentCommand) EmployeeID() string {
	return c.employeeID
}

func (c *CreateShipmentCommand) setLocationCode(locationCode string) error {
	if locationCode == "" {
		return ErrLocationCodeIsRequired
	}

	c.locationCode = locationCode
	return nil
}

func (c *CreateShipmentCommand) setCustomerCode(customerCode string) error {
	if customerCode == "" {
		return ErrCustomerCodeIsRequired
	}

	c.customerCode = customerCode
	return nil
}

func (c *CreateShipmentCommand) setProductType(productType string) error {
	if productType == "" {
		return ErrProductTypeIsRequired
	}

	c.productType = productType
	return nil
}

func (c *CreateShipmentCommand) setShipmentDate(shipmentDate time.Time) error {
	if truncateToDate(shipmentDate).Before(truncateToDate(time.Now())) {
		return ErrShipmentDateIsInThePast
	}

	c.shipmentDate = shipmentDate
	return nil
}

func (c *CreateShipmentCommand) setCartonTareWeight(cartonTareWeight float64) error {
	if cartonTareWeight <= 0 {
		return ErrCartonTareWeightIsInvalid
	}

	c.cartonTareWeight = cartonTareWeight
	return nil
}

func (c *CreateShipmentCommand) setEmployeeID(employeeID string) error {
	if employeeID == "" {
		return ErrEmployeeIDIsRequired
	}

	c.employeeID = employeeID
	return nil
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
