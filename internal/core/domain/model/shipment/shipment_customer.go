package shipment

import (
	"plasmashipping/internal/core/domain/model/customer"
	"plasmashipping/internal/pkg/errs"
)

// ShipmentCustomer is a denormalized snapshot of the customer captured when a
// shipment is created or modified. The shipment keeps the snapshot, not a
// live reference, so later customer master-data changes never alter shipped
// documents.
type ShipmentCustomer struct {
	code    string
	name    string
	address customer.Address

	isConstructed bool
}

// CustomerFromMaster snapshots the current customer master data.
func CustomerFromMaster(c *customer.Customer) (ShipmentCustomer, error) {
	if err := c.Validate(); err != nil {
		return ShipmentCustomer{}, err
	}
	return ShipmentCustomer{
		code:          c.Code(),
		name:          c.Name(),
		address:       c.Address(),
		isConstructed: true,
	}, nil
}

// CustomerFromDetails restores a snapshot from persisted shipment columns.
func CustomerFromDetails(code, name string, address customer.Address) (ShipmentCustomer, error) {
	if code == "" {
		return ShipmentCustomer{}, errs.NewValueIsRequiredError("customerCode")
	}
	if name == "" {
		return ShipmentCustomer{}, errs.NewValueIsRequiredError("customerName")
	}
	return ShipmentCustomer{
		code:          code,
		name:          name,
		address:       address,
		isConstructed: true,
	}, nil
}

// Validate ensures the snapshot was built through a constructor.
func (c ShipmentCustomer) Validate() error {
	if !c.isConstructed {
		return errs.NewValueIsRequiredError("shipmentCustomer")
	}
	return nil
}

func (c ShipmentCustomer) Code() string {
	return c.code
}

func (c ShipmentCustomer) Name() string {
	return c.name
}

func (c ShipmentCustomer) Address() customer.Address {
	return c.address
}
