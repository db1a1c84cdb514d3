package carton

import (
	"time"

	"plasmashipping/internal/core/domain/model/inventory"
	"plasmashipping/internal/pkg/errs"
)

// CartonItem is a plasma unit packed into a carton. Items are created from a
// validated inventory snapshot and start in the PACKED status; a second scan
// moves them to VERIFIED.
type CartonItem struct {
	id                 int64
	cartonID           int64
	unitNumber         string
	productCode        string
	productDescription string
	productType        string
	aboRh              string
	volume             int
	weight             int
	status             ItemStatus
	expirationDate     time.Time
	collectionDate     time.Time
	packedByEmployeeID string
	createDate         time.Time
	modificationDate   time.Time
}

// NewCartonItem creates an item from a validated inventory unit.
func NewCartonItem(
	cartonID int64,
	inv *inventory.Inventory,
	productType string,
	packedByEmployeeID string,
) (*CartonItem, error) {
	if cartonID == 0 {
		return nil, errs.NewValueIsRequiredError("cartonId")
	}
	if inv == nil {
		return nil, errs.NewValueIsRequiredError("inventory")
	}
	if productType == "" {
		return nil, errs.NewValueIsRequiredError("productType")
	}
	if packedByEmployeeID == "" {
		return nil, errs.NewValueIsRequiredError("packedByEmployeeId")
	}

	item := &CartonItem{
		cartonID:           cartonID,
		unitNumber:         inv.UnitNumber(),
		productCode:        inv.ProductCode(),
		productDescription: inv.ProductDescription(),
		productType:        productType,
		aboRh:              inv.AboRh(),
		volume:             inv.VolumeByType(inventory.VolumeTypeVolume),
		weight:             inv.Weight(),
		status:             ItemStatusPacked,
		expirationDate:     inv.ExpirationDate(),
		collectionDate:     inv.CollectionDate(),
		packedByEmployeeID: packedByEmployeeID,
		createDate:         time.Now().UTC(),
	}
	if err := item.validate(); err != nil {
		return nil, err
	}
	return item, nil
}

// ItemFromRepository restores a CartonItem from persisted state.
func ItemFromRepository(
	id int64,
	cartonID int64,
	unitNumber string,
	productCode string,
	productDescription string,
	productType string,
	aboRh string,
	volume int,
	weight int,
	status ItemStatus,
	expirationDate time.Time,
	collectionDate time.Time,
	packedByEmployeeID string,
	createDate time.Time,
	modificationDate time.Time,
) (*CartonItem, error) {
	item := &CartonItem{
		id:                 id,
		cartonID:           cartonID,
		unitNumber:         unitNumber,
		productCode:        productCode,
		productDescription: productDescription,
		productType:        productType,
		aboRh:              aboRh,
		volume:             volume,
		weight:             weight,
		status:             status,
		expirationDate:     expirationDate,
		collectionDate:     collectionDate,
		packedByEmployeeID: packedByEmployeeID,
		createDate:         createDate,
		modificationDate:   modificationDate,
	}
	if err := item.validate(); err != nil {
		return nil, err
	}
	return item, nil
}

func (i *CartonItem) validate() error {
	if i.unitNumber == "" {
		return errs.NewValueIsRequiredError("unitNumber")
	}
	if i.productCode == "" {
		return errs.NewValueIsRequiredError("productCode")
	}
	return i.status.Validate()
}

func (i *CartonItem) ID() int64 {
	return i.id
}

func (i *CartonItem) CartonID() int64 {
	return i.cartonID
}

func (i *CartonItem) UnitNumber() string {
	return i.unitNumber
}

func (i *CartonItem) ProductCode() string {
	return i.productCode
}

func (i *CartonItem) ProductDescription() string {
	return i.productDescription
}

func (i *CartonItem) ProductType() string {
	return i.productType
}

func (i *CartonItem) AboRh() string {
	return i.aboRh
}

func (i *CartonItem) Volume() int {
	return i.volume
}

func (i *CartonItem) Weight() int {
	return i.weight
}

func (i *CartonItem) Status() ItemStatus {
	return i.status
}

func (i *CartonItem) ExpirationDate() time.Time {
	return i.expirationDate
}

func (i *CartonItem) CollectionDate() time.Time {
	return i.collectionDate
}

func (i *CartonItem) PackedByEmployeeID() string {
	return i.packedByEmployeeID
}

func (i *CartonItem) CreateDate() time.Time {
	return i.createDate
}

func (i *CartonItem) ModificationDate() time.Time {
	return i.modificationDate
}

// IsVerified reports whether the item passed the verification scan.
func (i *CartonItem) IsVerified() bool {
	return i.status == ItemStatusVerified
}

func (i *CartonItem) markVerified() {
	i.status = ItemStatusVerified
	i.modificationDate = time.Now().UTC()
}

func (i *CartonItem) resetVerification() {
	i.status = ItemStatusPacked
	i.modificationDate = time.Now().UTC()
}
