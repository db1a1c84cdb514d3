package commands

import (
	"errors"
	"time"

	"plasmashipping/internal/pkg/guard"
)

var (
	ErrModifyShipmentCommandIsNotConstructed = errors.New(
		"ModifyShipmentCommand must be created via NewModifyShipmentCommand constructor",
	)
	ErrShipmentIDIsRequired = errors.New("shipment id is required")
)

// ModifyShipmentCommand represents a request to update the mutable
// attributes of an open shipment. Every modification carries an audit
// comment that is appended to the shipment history.
type ModifyShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID                    int64
	customerCode                  string
	productType                   string
	shipmentDate                  time.Time
	cartonTareWeight              float64
	transportationReferenceNumber string
	employeeID                    string
	comments                      string

	guard guard.ConstructorGuard
}

// NewModifyShipmentCommand creates a command to modify an existing shipment.
// Date and comment rules are enforced by the shipment aggregate.
func NewModifyShipmentCommand(
	shipmentID int64,
	customerCode string,
	productType string,
	shipmentDate time.Time,
	cartonTareWeight float64,
	transportationReferenceNumber string,
	employeeID string,
	comments string,
) (ModifyShipmentCommand, error) {
	modifyCommand := ModifyShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		modifyCommand.setShipmentID(shipmentID),
		modifyCommand.setCustomerCode(customerCode),
		modifyCommand.setProductType(productType),
		modifyCommand.setCartonTareWeight(cartonTareWeight),
		modifyCommand.setEmployeeID(employeeID),
	); err != nil {
		return ModifyShipmentCommand{}, err
	}

	modifyCommand.shipmentDate = shipmentDate
	modifyCommand.transportationReferenceNumber = transportationReferenceNumber
	modifyCommand.comments = comments
	return modifyCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ModifyShipmentCommand) Validate() error {
	return c.guard.Validate(ErrModifyShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to modify.
func (c ModifyShipmentCommand) ShipmentID() int64 {
	return c.shipmentID
}

// CustomerCode returns the code of the receiving customer.
func (c ModifyShipmentCommand) CustomerCode() string {
	return c.customerCode
}

// ProductType returns the product type the shipment accepts.
func (c ModifyShipmentCommand) ProductType() string {
	return c.productType
}

// ShipmentDate returns the new planned ship date.
func (c ModifyShipmentCommand) ShipmentDate() time.Time {
	return c.shipmentDate
}

// CartonTareWeight returns the empty carton weight used on reports.
func (c ModifyShipmentCommand) CartonTareWeight() float64 {
	return c.cartonTareWeight
}

// TransportationReferenceNumber returns the optional transport reference.
func (c ModifyShipmentCommand) TransportationReferenceNumber() string {
	return c.transportationReferenceNumber
}

// EmployeeID returns the identifier of the modifying employee.
func (c ModifyShipmentCommand) EmployeeID() string {
	return c.employeeID
}

// Comments returns the audit comment for the shipment history.
func (c ModifyShipmentCommand) Comments() string {
	return c.comments
}

func (c *ModifyShipmentCommand) setShipmentID(shipmentID int64) error {
	if shipmentID <= 0 {
		return ErrShipmentIDIsRequired
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *ModifyShipmentCommand) setCustomerCode(customerCode string) error {
	if customerCode == "" {
		return ErrCustomerCodeIsRequired
	}

	c.customerCode = customerCode
	return nil
}

func (c *ModifyShipmentCommand) setProductType(productType string) error {
	if productType == "" {
		return ErrProductTypeIsRequired
	}

	c.productType = productType
	return nil
}

func (c *ModifyShipmentCommand) setCartonTareWeight(cartonTareWeight float64) error {
	if cartonTareWeight <= 0 {
		return ErrCartonTareWeightIsInvalid
	}

	c.cartonTareWeight = cartonTareWeight
	return nil
}

func (c *ModifyShipmentCommand) setEmployeeID(employeeID string) error {
	if employeeID == "" {
		return ErrEmployeeIDIsRequired
	}

	c.employeeID = employeeID
	return nil
}
