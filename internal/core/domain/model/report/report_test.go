package report_test

import (
	"testing"
	"time"

	"plasmashipping/internal/core/domain/model/carton"
	"plasmashipping/internal/core/domain/model/customer"
	"plasmashipping/internal/core/domain/model/inventory"
	"plasmashipping/internal/core/domain/model/location"
	"plasmashipping/internal/core/domain/model/report"
	"plasmashipping/internal/core/domain/model/shipment"
	"plasmashipping/internal/core/domain/model/sysprop"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeProperties(t *testing.T, propertyType string) []sysprop.Property {
	t.Helper()
	values := map[string]string{
		sysprop.KeyBloodCenterName:      "OneBlood",
		sysprop.KeyAddressFormat:        "{name}\n{addressLine1} {addressLine2}\n{city}, {state} {postalCode}\n{country}",
		sysprop.KeyDateFormat:           "01/02/2006",
		sysprop.KeyDateTimeFormat:       "01/02/2006 15:04",
		sysprop.KeyUseSignature:         "Y",
		sysprop.KeyUseTransportationNum: "Y",
		sysprop.KeyUseTestingStatement:  "Y",
		sysprop.KeyUseLicenseNumber:     "N",
		sysprop.KeyTestingStatementText: "Tested and released by {employeeName}",
		sysprop.KeyUseHeaderSection:     "Y",
		sysprop.KeyHeaderSectionText:    "FOR FURTHER MANUFACTURE ONLY",
	}

	properties := make([]sysprop.Property, 0, len(values))
	for key, value := range values {
		p, err := sysprop.NewProperty(propertyType, key, value)
		require.NoError(t, err)
		properties = append(properties, p)
	}
	return properties
}

func makeLocation(t *testing.T) *location.Location {
	t.Helper()
	tz, err := location.NewProperty(location.TimeZoneKey, "America/New_York")
	require.NoError(t, err)
	loc, err := location.NewLocation(7, "MH1", "Miami Herald Center", location.Address{
		AddressLine1: "8669 NW 36th St",
		City:         "Doral",
		State:        "FL",
		PostalCode:   "33166",
		Country:      "United States",
	}, []location.Property{tz})
	require.NoError(t, err)
	return loc
}

func makeClosedCarton(t *testing.T, cartonNumber string, sequence int) *carton.Carton {
	t.Helper()
	c, err := carton.NewCarton(cartonNumber, 42, sequence, "emp-001", 1, 10)
	require.NoError(t, err)
	inv, err := inventory.NewInventory("W035625000101", "E2534V00", "Recovered Plasma", "OP", 510,
		[]inventory.Volume{inventory.NewVolume(inventory.VolumeTypeVolume, 250)},
		time.Now().AddDate(1, 0, 0), time.Now().AddDate(0, -1, 0))
	require.NoError(t, err)
	item, err := carton.NewCartonItem(1, inv, "RP_FROZEN", "emp-001")
	require.NoError(t, err)
	require.NoError(t, c.PackItem(item))
	_, err = c.MarkItemVerified(item.UnitNumber(), item.ProductCode())
	require.NoError(t, err)
	require.NoError(t, c.Close("emp-002"))
	return c
}

func makeCustomerSnapshot(t *testing.T) shipment.ShipmentCustomer {
	t.Helper()
	cust, err := customer.NewCustomer("408", "BioLife Plasma Services", customer.Address{
		AddressLine1: "1200 Lakeside Dr",
		City:         "Bannockburn",
		State:        "IL",
		PostalCode:   "60015",
		Country:      "United States",
	})
	require.NoError(t, err)
	snapshot, err := shipment.CustomerFromMaster(cust)
	require.NoError(t, err)
	return snapshot
}

func makeClosedShipment(t *testing.T, cartons ...*carton.Carton) *shipment.Shipment {
	t.Helper()
	s, err := shipment.FromRepository(
		42, "BPM123", "MH1", makeCustomerSnapshot(t), "RP_FROZEN", shipment.InProgress,
		time.Now().AddDate(0, 0, 7), 1.25, "TRN-9921", "emp-001",
		"", nil, shipment.ReportStatusNone, nil, cartons,
		time.Now().AddDate(0, 0, -1), time.Now(),
	)
	require.NoError(t, err)
	require.NoError(t, s.MarkAsProcessing(time.Now().AddDate(0, 0, 7), "emp-002"))
	s.CompleteProcessing(false)
	return s
}

func TestGeneratePackingSlip(t *testing.T) {
	t.Run("should build slip for closed carton", func(t *testing.T) {
		c := makeClosedCarton(t, "BPMMH11", 1)
		s := makeClosedShipment(t, c)
		properties := makeProperties(t, sysprop.TypeCartonPackingSlip)

		slip, err := report.GeneratePackingSlip(c, s, makeLocation(t), "Recovered Plasma Frozen", properties)

		require.NoError(t, err)
		assert.Equal(t, "BPMMH11", slip.CartonNumber)
		assert.Equal(t, 1, slip.TotalProducts)
		assert.Equal(t, "emp-002", slip.PackedByEmployeeID)
		assert.Equal(t, "OneBlood", slip.ShipFrom.Name)
		assert.Contains(t, slip.ShipFrom.Address, "Doral, FL 33166")
		assert.Equal(t, "BioLife Plasma Services", slip.ShipTo.Name)
		assert.Equal(t, "Tested and released by emp-002", slip.TestingStatement)
		assert.True(t, slip.DisplaySignature)
		assert.False(t, slip.DisplayLicenseNumber)
		require.Len(t, slip.PackedProducts, 1)
		assert.Equal(t, "W035625000101", slip.PackedProducts[0].UnitNumber)
		assert.Equal(t, 250, slip.PackedProducts[0].Volume)
	})

	t.Run("should reject open carton", func(t *testing.T) {
		c, err := carton.NewCarton("BPMMH11", 42, 1, "emp-001", 1, 10)
		require.NoError(t, err)
		s := makeClosedShipment(t, makeClosedCarton(t, "BPMMH12", 2))

		_, err = report.GeneratePackingSlip(c, s, makeLocation(t), "Recovered Plasma Frozen",
			makeProperties(t, sysprop.TypeCartonPackingSlip))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not closed and cannot be printed")
	})

	t.Run("should fail when a property is missing", func(t *testing.T) {
		c := makeClosedCarton(t, "BPMMH11", 1)
		s := makeClosedShipment(t, c)

		_, err := report.GeneratePackingSlip(c, s, makeLocation(t), "Recovered Plasma Frozen", nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "System Property value is required for the Key")
	})
}

func TestGenerateCartonLabel(t *testing.T) {
	t.Run("should build label for closed carton", func(t *testing.T) {
		c := makeClosedCarton(t, "BPMMH11", 1)
		s := makeClosedShipment(t, c)

		label, err := report.GenerateCartonLabel(c, s, makeLocation(t), "Recovered Plasma Frozen",
			makeProperties(t, sysprop.TypeCartonLabel))

		require.NoError(t, err)
		assert.Equal(t, "BPMMH11", label.CartonNumber)
		assert.Equal(t, 1, label.CartonSequence)
		assert.Equal(t, 1, label.TotalCartons)
		assert.Equal(t, "BPM123", label.ShipmentNumber)
		assert.NotEmpty(t, label.ShipDate)
	})
}

func TestGenerateShippingSummary(t *testing.T) {
	t.Run("should sort cartons case insensitively by carton number", func(t *testing.T) {
		c1 := makeClosedCarton(t, "bpmMH12", 1)
		c2 := makeClosedCarton(t, "BPMMH11", 2)
		s := makeClosedShipment(t, c1, c2)

		summary, err := report.GenerateShippingSummary(s, []*carton.Carton{c1, c2}, makeLocation(t),
			"Recovered Plasma Frozen", makeProperties(t, sysprop.TypeShippingSummaryReport))

		require.NoError(t, err)
		assert.Equal(t, report.SummaryReportTitle, summary.ReportTitle)
		require.Len(t, summary.CartonList, 2)
		assert.Equal(t, "BPMMH11", summary.CartonList[0].CartonNumber)
		assert.Equal(t, "bpmMH12", summary.CartonList[1].CartonNumber)
		assert.Equal(t, 2, summary.ShipmentDetail.TotalProducts)
		assert.True(t, summary.DisplayHeader)
		assert.Equal(t, "FOR FURTHER MANUFACTURE ONLY", summary.HeaderStatement)
	})

	t.Run("should reject shipment that is not closed", func(t *testing.T) {
		c := makeClosedCarton(t, "BPMMH11", 1)
		s, err := shipment.FromRepository(
			42, "BPM123", "MH1", makeCustomerSnapshot(t), "RP_FROZEN", shipment.InProgress,
			time.Now().AddDate(0, 0, 7), 1.25, "TRN-9921", "emp-001",
			"", nil, shipment.ReportStatusNone, nil, []*carton.Carton{c},
			time.Now().AddDate(0, 0, -1), time.Now(),
		)
		require.NoError(t, err)

		_, err = report.GenerateShippingSummary(s, []*carton.Carton{c}, makeLocation(t),
			"Recovered Plasma Frozen", makeProperties(t, sysprop.TypeShippingSummaryReport))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not closed and cannot be printed")
	})
}

func TestGenerateUnacceptableUnitReport(t *testing.T) {
	t.Run("should build report with rejection entries", func(t *testing.T) {
		c := makeClosedCarton(t, "BPMMH11", 1)
		s := makeClosedShipment(t, c)
		item, err := report.NewUnacceptableUnitItem(42, "BPMMH11", "W035625000101", "E2534V00",
			"INVENTORY_EXPIRED", "Unit is expired", []string{"expired on 01/01/2025"})
		require.NoError(t, err)

		r, err := report.GenerateUnacceptableUnitReport(s, []*report.UnacceptableUnitItem{item},
			makeLocation(t), makeProperties(t, sysprop.TypeUnacceptableReport))

		require.NoError(t, err)
		assert.Equal(t, "BPM123", r.ShipmentNumber)
		assert.Equal(t, "COMPLETED", r.ReportStatus)
		assert.NotEmpty(t, r.LastRunDate)
		require.Len(t, r.Items, 1)
		assert.Equal(t, "INVENTORY_EXPIRED", r.Items[0].ErrorName())
	})

	t.Run("should reject shipment without a report", func(t *testing.T) {
		c := makeClosedCarton(t, "BPMMH11", 1)
		s, err := shipment.FromRepository(
			42, "BPM123", "MH1", makeCustomerSnapshot(t), "RP_FROZEN", shipment.InProgress,
			time.Now().AddDate(0, 0, 7), 1.25, "TRN-9921", "emp-001",
			"", nil, shipment.ReportStatusNone, nil, []*carton.Carton{c},
			time.Now().AddDate(0, 0, -1), time.Now(),
		)
		require.NoError(t, err)

		_, err = report.GenerateUnacceptableUnitReport(s, nil, makeLocation(t),
			makeProperties(t, sysprop.TypeUnacceptableReport))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not available")
	})
}
