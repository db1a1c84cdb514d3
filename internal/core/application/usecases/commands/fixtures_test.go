package commands_test

import (
	"testing"
	"time"

	"plasmashipping/internal/core/domain/model/carton"
	"plasmashipping/internal/core/domain/model/criteria"
	"plasmashipping/internal/core/domain/model/customer"
	"plasmashipping/internal/core/domain/model/inventory"
	"plasmashipping/internal/core/domain/model/location"
	"plasmashipping/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/require"
)

func makeLocation(t *testing.T) *location.Location {
	t.Helper()
	props := map[string]string{
		"RPS_PARTNER_PREFIX":         "BPM",
		"RPS_USE_PARTNER_PREFIX":     "Y",
		"RPS_LOCATION_SHIPMENT_CODE": "MH1",
		"RPS_CARTON_PARTNER_PREFIX":  "BPM",
		"RPS_LOCATION_CARTON_CODE":   "MH1",
	}
	properties := make([]location.Property, 0, len(props))
	for key, value := range props {
		p, err := location.NewProperty(key, value)
		require.NoError(t, err)
		properties = append(properties, p)
	}
	loc, err := location.NewLocation(1, "MH1", "Miami Main Center", location.Address{
		AddressLine1: "8669 NW 36th St",
		City:         "Doral",
		State:        "FL",
		PostalCode:   "33166",
		Country:      "United States",
	}, properties)
	require.NoError(t, err)
	return loc
}

func makeCustomerMaster(t *testing.T) *customer.Customer {
	t.Helper()
	cust, err := customer.NewCustomer("408", "BioLife Plasma Services", customer.Address{
		AddressLine1: "1200 Lakeside Dr",
		City:         "Bannockburn",
		State:        "IL",
		PostalCode:   "60015",
		Country:      "United States",
		CountryCode:  "US",
	})
	require.NoError(t, err)
	return cust
}

func makeCriteria(t *testing.T) *criteria.ShipmentCriteria {
	t.Helper()
	c, err := criteria.NewShipmentCriteria("408", "RP_FROZEN", 1, 10, nil)
	require.NoError(t, err)
	return c
}

func makeInventory(t *testing.T, unitNumber string) *inventory.Inventory {
	t.Helper()
	inv, err := inventory.NewInventory(unitNumber, "E2534V00", "Recovered Plasma", "OP", 510,
		[]inventory.Volume{inventory.NewVolume(inventory.VolumeTypeVolume, 250)},
		time.Now().AddDate(1, 0, 0), time.Now().AddDate(0, -1, 0))
	require.NoError(t, err)
	return inv
}

func makeShipmentSnapshot(t *testing.T) shipment.ShipmentCustomer {
	t.Helper()
	snapshot, err := shipment.CustomerFromMaster(makeCustomerMaster(t))
	require.NoError(t, err)
	return snapshot
}

func makeOpenShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(
		"BPMMH142", "MH1", makeShipmentSnapshot(t), "RP_FROZEN",
		time.Now().AddDate(0, 0, 7), 1.25, "TRN-9921", "emp-001",
	)
	require.NoError(t, err)
	s.SetID(42)
	return s
}

func makeShipmentInStatus(t *testing.T, status shipment.Status, cartons []*carton.Carton) *shipment.Shipment {
	t.Helper()
	closeEmployeeID := ""
	if status == shipment.Processing {
		closeEmployeeID = "emp-009"
	}
	s, err := shipment.FromRepository(
		42, "BPMMH142", "MH1", makeShipmentSnapshot(t), "RP_FROZEN", status,
		time.Now().AddDate(0, 0, 7), 1.25, "TRN-9921", "emp-001",
		closeEmployeeID, nil, shipment.ReportStatusNone, nil, cartons,
		time.Now().AddDate(0, 0, -1), time.Now(),
	)
	require.NoError(t, err)
	return s
}

func makeOpenCarton(t *testing.T, id int64) *carton.Carton {
	t.Helper()
	c, err := carton.NewCarton("BPMMH17", 42, 1, "emp-001", 1, 10)
	require.NoError(t, err)
	c.SetID(id)
	return c
}

func makePackedCarton(t *testing.T, id int64, unitNumbers ...string) *carton.Carton {
	t.Helper()
	c := makeOpenCarton(t, id)
	for _, unitNumber := range unitNumbers {
		item, err := carton.NewCartonItem(id, makeInventory(t, unitNumber), "RP_FROZEN", "emp-001")
		require.NoError(t, err)
		require.NoError(t, c.PackItem(item))
	}
	return c
}

func makeClosedCarton(t *testing.T, id int64, unitNumbers ...string) *carton.Carton {
	t.Helper()
	c := makePackedCarton(t, id, unitNumbers...)
	for _, item := range c.Items() {
		_, err := c.MarkItemVerified(item.UnitNumber(), item.ProductCode())
		require.NoError(t, err)
	}
	require.NoError(t, c.Close("emp-001"))
	return c
}
