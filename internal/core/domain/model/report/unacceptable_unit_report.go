package report

import (
	"time"

	"plasmashipping/internal/core/domain/model/location"
	"plasmashipping/internal/core/domain/model/shipment"
	"plasmashipping/internal/core/domain/model/sysprop"
	"plasmashipping/internal/pkg/errs"
)

// UnacceptableUnitItem records a single unit rejected by the close-time batch
// revalidation.
type UnacceptableUnitItem struct {
	id           int64
	shipmentID   int64
	cartonNumber string
	unitNumber   string
	productCode  string
	errorName    string
	reason       string
	details      []string
	createDate   time.Time
}

// NewUnacceptableUnitItem creates a rejection entry for a revalidated unit.
func NewUnacceptableUnitItem(shipmentID int64, cartonNumber, unitNumber, productCode, errorName, reason string, details []string) (*UnacceptableUnitItem, error) {
	if shipmentID == 0 {
		return nil, errs.NewValueIsRequiredError("shipmentId")
	}
	if unitNumber == "" {
		return nil, errs.NewValueIsRequiredError("unitNumber")
	}
	if errorName == "" {
		return nil, errs.NewValueIsRequiredError("errorName")
	}
	return &UnacceptableUnitItem{
		shipmentID:   shipmentID,
		cartonNumber: cartonNumber,
		unitNumber:   unitNumber,
		productCode:  productCode,
		errorName:    errorName,
		reason:       reason,
		details:      details,
		createDate:   time.Now().UTC(),
	}, nil
}

// UnacceptableUnitItemFromRepository restores a rejection entry from
// persisted state.
func UnacceptableUnitItemFromRepository(id, shipmentID int64, cartonNumber, unitNumber, productCode, errorName, reason string, details []string, createDate time.Time) *UnacceptableUnitItem {
	return &UnacceptableUnitItem{
		id:           id,
		shipmentID:   shipmentID,
		cartonNumber: cartonNumber,
		unitNumber:   unitNumber,
		productCode:  productCode,
		errorName:    errorName,
		reason:       reason,
		details:      details,
		createDate:   createDate,
	}
}

func (i *UnacceptableUnitItem) ID() int64 {
	return i.id
}

func (i *UnacceptableUnitItem) ShipmentID() int64 {
	return i.shipmentID
}

func (i *UnacceptableUnitItem) CartonNumber() string {
	return i.cartonNumber
}

func (i *UnacceptableUnitItem) UnitNumber() string {
	return i.unitNumber
}

func (i *UnacceptableUnitItem) ProductCode() string {
	return i.productCode
}

func (i *UnacceptableUnitItem) ErrorName() string {
	return i.errorName
}

func (i *UnacceptableUnitItem) Reason() string {
	return i.reason
}

func (i *UnacceptableUnitItem) Details() []string {
	return i.details
}

func (i *UnacceptableUnitItem) CreateDate() time.Time {
	return i.createDate
}

// UnacceptableUnitReport lists the units rejected during the latest batch
// revalidation of a shipment.
type UnacceptableUnitReport struct {
	ShipmentNumber string
	ReportStatus   string
	LastRunDate    string
	ShipFrom       Party
	Items          []*UnacceptableUnitItem
}

// GenerateUnacceptableUnitReport builds the rejection report for a shipment.
// The properties are the RPS_UNACCEPTABLE_UNIT_REPORT system properties.
func GenerateUnacceptableUnitReport(
	shp *shipment.Shipment,
	items []*UnacceptableUnitItem,
	loc *location.Location,
	properties []sysprop.Property,
) (*UnacceptableUnitReport, error) {
	if err := shp.Validate(); err != nil {
		return nil, err
	}
	if err := loc.Validate(); err != nil {
		return nil, err
	}
	if err := shp.CanPrintUnacceptableUnitReport(); err != nil {
		return nil, err
	}

	lastRunDate := ""
	if shp.LastReportRunDate() != nil {
		formatted, err := formatDateTime(*shp.LastReportRunDate(), properties, loc)
		if err != nil {
			return nil, err
		}
		lastRunDate = formatted
	}

	shipFrom, err := shipFromParty(properties, loc)
	if err != nil {
		return nil, err
	}

	return &UnacceptableUnitReport{
		ShipmentNumber: shp.ShipmentNumber(),
		ReportStatus:   shp.ReportStatus().String(),
		LastRunDate:    lastRunDate,
		ShipFrom:       shipFrom,
		Items:          items,
	}, nil
}
