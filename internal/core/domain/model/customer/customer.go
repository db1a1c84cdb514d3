// Package customer holds customer reference data resolved through the
// customer service. A Customer is never mutated by the lifecycle engine;
// shipments snapshot its fields at creation/modification time.
package customer

import (
	"errors"

	"plasmashipping/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through the NewCustomer factory method.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Address carries the shipping address and contact fields of a customer.
type Address struct {
	State          string
	PostalCode     string
	Country        string
	CountryCode    string
	City           string
	District       string
	AddressLine1   string
	AddressLine2   string
	ContactName    string
	PhoneNumber    string
	DepartmentName string
}

// Customer represents a recovered-plasma customer.
type Customer struct {
	code          string
	name          string
	address       Address
	isConstructed bool
}

// NewCustomer creates a Customer. Code and name are mandatory.
func NewCustomer(code, name string, address Address) (*Customer, error) {
	if code == "" {
		return nil, errs.NewValueIsRequiredError("customer code")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("customer name")
	}
	return &Customer{
		code:          code,
		name:          name,
		address:       address,
		isConstructed: true,
	}, nil
}

// Validate ensures the Customer was created through NewCustomer.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// Code returns the customer code.
func (c *Customer) Code() string {
	return c.code
}

// Name returns the customer name.
func (c *Customer) Name() string {
	return c.name
}

// Address returns the customer shipping address.
func (c *Customer) Address() Address {
	return c.address
}
