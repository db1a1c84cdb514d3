// Package criteria holds the customer-specific shipment criteria: which
// product types a customer accepts and the per-carton packing rules
// (minimum unit volume, maximum units per carton) that gate item packing.
package criteria

import (
	"strconv"

	"plasmashipping/internal/pkg/errs"
)

// Criteria item types understood by the packing pipeline. Items of other
// types are carried but not evaluated.
const (
	MinimumVolumeType        = "MINIMUM_VOLUME"
	MaximumUnitsByCartonType = "MAXIMUM_UNITS_BY_CARTON"
)

// ProductType describes a registered plasma product type.
type ProductType struct {
	productType string
	description string
}

// NewProductType creates a ProductType. The type code is mandatory.
func NewProductType(productType, description string) (*ProductType, error) {
	if productType == "" {
		return nil, errs.NewValueIsRequiredError("product type")
	}
	return &ProductType{productType: productType, description: description}, nil
}

// Code returns the product type code.
func (p *ProductType) Code() string {
	return p.productType
}

// Description returns the human-readable product type description.
func (p *ProductType) Description() string {
	return p.description
}

// Item is one configured criteria rule with the user-facing message emitted
// when the rule is breached.
type Item struct {
	itemType    string
	value       string
	message     string
	messageType string
}

// NewItem creates a criteria item.
func NewItem(itemType, value, message, messageType string) (Item, error) {
	if itemType == "" {
		return Item{}, errs.NewValueIsRequiredError("criteria item type")
	}
	return Item{itemType: itemType, value: value, message: message, messageType: messageType}, nil
}

// Type returns the rule type.
func (i Item) Type() string {
	return i.itemType
}

// Value returns the configured rule threshold as text.
func (i Item) Value() string {
	return i.value
}

// IntValue parses the rule threshold as an integer.
func (i Item) IntValue() (int, error) {
	v, err := strconv.Atoi(i.value)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("criteria item value", err)
	}
	return v, nil
}

// Message returns the user-facing message for a breach of the rule.
func (i Item) Message() string {
	return i.message
}

// MessageType returns the severity of the breach message.
func (i Item) MessageType() string {
	return i.messageType
}

// ShipmentCriteria is the set of packing rules a customer applies to one
// product type.
type ShipmentCriteria struct {
	customerCode      string
	productType       string
	minUnitsPerCarton int
	maxUnitsPerCarton int
	items             []Item
}

// NewShipmentCriteria creates a ShipmentCriteria for one customer/product-type pair.
func NewShipmentCriteria(customerCode, productType string, minUnitsPerCarton, maxUnitsPerCarton int, items []Item) (*ShipmentCriteria, error) {
	if customerCode == "" {
		return nil, errs.NewValueIsRequiredError("customer code")
	}
	if productType == "" {
		return nil, errs.NewValueIsRequiredError("product type")
	}
	return &ShipmentCriteria{
		customerCode:      customerCode,
		productType:       productType,
		minUnitsPerCarton: minUnitsPerCarton,
		maxUnitsPerCarton: maxUnitsPerCarton,
		items:             items,
	}, nil
}

// CustomerCode returns the customer the criteria apply to.
func (c *ShipmentCriteria) CustomerCode() string {
	return c.customerCode
}

// ProductType returns the product type the criteria apply to.
func (c *ShipmentCriteria) ProductType() string {
	return c.productType
}

// MinUnitsPerCarton returns the minimum number of units a carton must hold
// before it can be verified and closed.
func (c *ShipmentCriteria) MinUnitsPerCarton() int {
	return c.minUnitsPerCarton
}

// MaxUnitsPerCarton returns the maximum number of units a carton may hold.
func (c *ShipmentCriteria) MaxUnitsPerCarton() int {
	return c.maxUnitsPerCarton
}

// FindItemByType returns the criteria item of the given type, if configured.
func (c *ShipmentCriteria) FindItemByType(itemType string) (Item, bool) {
	for _, item := range c.items {
		if item.itemType == itemType {
			return item, true
		}
	}
	return Item{}, false
}
