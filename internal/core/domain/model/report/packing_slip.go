package report

import (
	"errors"

	"plasmashipping/internal/core/domain/model/carton"
	"plasmashipping/internal/core/domain/model/location"
	"plasmashipping/internal/core/domain/model/shipment"
	"plasmashipping/internal/core/domain/model/sysprop"
	"plasmashipping/internal/pkg/errs"
)

// PackingSlipProduct is a single verified unit line on the packing slip.
type PackingSlipProduct struct {
	UnitNumber     string
	CollectionDate string
	Volume         int
}

// PackingSlipShipment is the shipment header section of the packing slip.
type PackingSlipShipment struct {
	ShipmentID                    int64
	ShipmentNumber                string
	ProductType                   string
	ProductTypeDescription        string
	TransportationReferenceNumber string
}

// PackingSlip is the document enclosed in a closed carton. It lists every
// verified unit together with the ship-from and ship-to parties and the
// configurable statement and toggle sections.
type PackingSlip struct {
	CartonID                 int64
	CartonNumber             string
	CartonSequence           int
	TotalProducts            int
	DateTimePacked           string
	PackedByEmployeeID       string
	ShipFrom                 Party
	ShipTo                   Party
	Shipment                 PackingSlipShipment
	TestingStatement         string
	DisplaySignature         bool
	DisplayTransportationNum bool
	DisplayTestingStatement  bool
	DisplayLicenseNumber     bool
	PackedProducts           []PackingSlipProduct
}

// GeneratePackingSlip builds the packing slip for a closed carton. The
// properties are the RPS_CARTON_PACKING_SLIP system properties and the
// product type description comes from the customer's shipment criteria.
func GeneratePackingSlip(
	c *carton.Carton,
	shp *shipment.Shipment,
	loc *location.Location,
	productTypeDescription string,
	properties []sysprop.Property,
) (*PackingSlip, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := shp.Validate(); err != nil {
		return nil, err
	}
	if err := loc.Validate(); err != nil {
		return nil, err
	}
	if !c.CanPrint() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"carton",
			errors.New("Carton is not closed and cannot be printed"),
		)
	}

	closeDate, err := requireCloseDate(c.CloseDate())
	if err != nil {
		return nil, err
	}
	dateTimePacked, err := formatDateTime(closeDate, properties, loc)
	if err != nil {
		return nil, err
	}

	products, err := buildPackedProducts(c, properties)
	if err != nil {
		return nil, err
	}

	shipFrom, err := shipFromParty(properties, loc)
	if err != nil {
		return nil, err
	}
	shipTo, err := shipToParty(shp.Customer(), properties)
	if err != nil {
		return nil, err
	}

	testingStatement, err := buildTestingStatement(properties, c.CloseEmployeeID())
	if err != nil {
		return nil, err
	}

	return &PackingSlip{
		CartonID:           c.ID(),
		CartonNumber:       c.CartonNumber(),
		CartonSequence:     c.CartonSequence(),
		TotalProducts:      c.TotalProducts(),
		DateTimePacked:     dateTimePacked,
		PackedByEmployeeID: c.CloseEmployeeID(),
		ShipFrom:           shipFrom,
		ShipTo:             shipTo,
		Shipment: PackingSlipShipment{
			ShipmentID:                    shp.ID(),
			ShipmentNumber:                shp.ShipmentNumber(),
			ProductType:                   shp.ProductType(),
			ProductTypeDescription:        productTypeDescription,
			TransportationReferenceNumber: shp.TransportationReferenceNumber(),
		},
		TestingStatement:         testingStatement,
		DisplaySignature:         sysprop.IsEnabled(properties, sysprop.KeyUseSignature),
		DisplayTransportationNum: sysprop.IsEnabled(properties, sysprop.KeyUseTransportationNum),
		DisplayTestingStatement:  sysprop.IsEnabled(properties, sysprop.KeyUseTestingStatement),
		DisplayLicenseNumber:     sysprop.IsEnabled(properties, sysprop.KeyUseLicenseNumber),
		PackedProducts:           products,
	}, nil
}

func buildPackedProducts(c *carton.Carton, properties []sysprop.Property) ([]PackingSlipProduct, error) {
	products := make([]PackingSlipProduct, 0, len(c.Items()))
	for _, item := range c.Items() {
		if !item.IsVerified() {
			continue
		}
		collectionDate, err := formatDate(item.CollectionDate(), properties)
		if err != nil {
			return nil, err
		}
		products = append(products, PackingSlipProduct{
			UnitNumber:     item.UnitNumber(),
			CollectionDate: collectionDate,
			Volume:         item.Volume(),
		})
	}
	if len(products) == 0 {
		return nil, errs.NewValueIsRequiredError("packedProducts")
	}
	return products, nil
}

func shipToParty(cust shipment.ShipmentCustomer, properties []sysprop.Property) (Party, error) {
	format, err := sysprop.FindValue(properties, sysprop.KeyAddressFormat)
	if err != nil {
		return Party{}, err
	}

	address := cust.Address()
	return Party{
		Name: cust.Name(),
		Address: formatAddress(addressFields{
			name:         cust.Name(),
			addressLine1: address.AddressLine1,
			addressLine2: address.AddressLine2,
			city:         address.City,
			state:        address.State,
			postalCode:   address.PostalCode,
			country:      address.Country,
		}, format),
	}, nil
}
