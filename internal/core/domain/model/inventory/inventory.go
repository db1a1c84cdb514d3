// Package inventory holds the read model returned by the inventory validation
// gateway: the unit snapshot attached to packed items and the structured
// rejection payload surfaced when a unit is not eligible for shipment.
package inventory

import (
	"time"

	"plasmashipping/internal/pkg/errs"
)

// VolumeTypeVolume is the volume measurement attached to plasma units.
const VolumeTypeVolume = "volume"

// Volume is one typed volume measurement of a unit.
type Volume struct {
	volumeType string
	value      int
}

// NewVolume creates a typed volume measurement.
func NewVolume(volumeType string, value int) Volume {
	return Volume{volumeType: volumeType, value: value}
}

// Type returns the measurement type.
func (v Volume) Type() string {
	return v.volumeType
}

// Value returns the measurement value in milliliters.
func (v Volume) Value() int {
	return v.value
}

// Inventory is the snapshot of a physical unit as known by the inventory
// system at validation time.
type Inventory struct {
	unitNumber         string
	productCode        string
	productDescription string
	aboRh              string
	weight             int
	volumes            []Volume
	expirationDate     time.Time
	collectionDate     time.Time
}

// NewInventory creates an inventory snapshot. Unit number and product code
// are mandatory.
func NewInventory(unitNumber, productCode, productDescription, aboRh string, weight int,
	volumes []Volume, expirationDate, collectionDate time.Time) (*Inventory, error) {
	if unitNumber == "" {
		return nil, errs.NewValueIsRequiredError("unit number")
	}
	if productCode == "" {
		return nil, errs.NewValueIsRequiredError("product code")
	}
	return &Inventory{
		unitNumber:         unitNumber,
		productCode:        productCode,
		productDescription: productDescription,
		aboRh:              aboRh,
		weight:             weight,
		volumes:            volumes,
		expirationDate:     expirationDate,
		collectionDate:     collectionDate,
	}, nil
}

// UnitNumber returns the unit number.
func (i *Inventory) UnitNumber() string {
	return i.unitNumber
}

// ProductCode returns the product code.
func (i *Inventory) ProductCode() string {
	return i.productCode
}

// ProductDescription returns the product description.
func (i *Inventory) ProductDescription() string {
	return i.productDescription
}

// AboRh returns the blood group of the unit.
func (i *Inventory) AboRh() string {
	return i.aboRh
}

// Weight returns the unit weight in grams.
func (i *Inventory) Weight() int {
	return i.weight
}

// ExpirationDate returns the product expiration date.
func (i *Inventory) ExpirationDate() time.Time {
	return i.expirationDate
}

// CollectionDate returns the date the unit was collected.
func (i *Inventory) CollectionDate() time.Time {
	return i.collectionDate
}

// VolumeByType returns the value of the volume measurement with the given
// type, or 0 when the unit carries no such measurement.
func (i *Inventory) VolumeByType(volumeType string) int {
	for _, v := range i.volumes {
		if v.volumeType == volumeType {
			return v.value
		}
	}
	return 0
}

// ValidationRequest identifies the unit to validate and the packing context.
type ValidationRequest struct {
	UnitNumber   string
	ProductCode  string
	LocationCode string
	EmployeeID   string
}

// Notification is one structured rejection emitted by the inventory gateway.
// Severity is data-driven: ErrorType carries the UI-facing level.
type Notification struct {
	ErrorName    string
	ErrorType    string
	Action       string
	Reason       string
	ErrorMessage string
	Details      []string
}

// Validation is the outcome of one inventory gateway call. A validation with
// an inventory snapshot and no notifications is a pass; anything else is a
// rejection.
type Validation struct {
	Inventory     *Inventory
	Notifications []Notification
}

// IsAccepted reports whether the unit passed inventory validation.
func (v *Validation) IsAccepted() bool {
	return v != nil && v.Inventory != nil && len(v.Notifications) == 0
}

// FirstNotification returns the leading rejection notification, or nil when
// the validation passed.
func (v *Validation) FirstNotification() *Notification {
	if v == nil || len(v.Notifications) == 0 {
		return nil
	}
	return &v.Notifications[0]
}
