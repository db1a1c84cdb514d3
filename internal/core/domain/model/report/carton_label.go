package report

import (
	"errors"

	"plasmashipping/internal/core/domain/model/carton"
	"plasmashipping/internal/core/domain/model/location"
	"plasmashipping/internal/core/domain/model/shipment"
	"plasmashipping/internal/core/domain/model/sysprop"
	"plasmashipping/internal/pkg/errs"
)

// CartonLabel is the label affixed to a closed carton. It carries the
// identifiers needed to match the physical box to the shipment paperwork.
type CartonLabel struct {
	CartonNumber           string
	CartonSequence         int
	TotalCartons           int
	ShipmentNumber         string
	ProductType            string
	ProductTypeDescription string
	ShipDate               string
	TotalProducts          int
	ShipFrom               Party
	ShipTo                 Party
}

// GenerateCartonLabel builds the label for a closed carton. The properties
// are the RPS_CARTON_LABEL system properties.
func GenerateCartonLabel(
	c *carton.Carton,
	shp *shipment.Shipment,
	loc *location.Location,
	productTypeDescription string,
	properties []sysprop.Property,
) (*CartonLabel, error) {
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

	shipDate, err := formatDate(shp.ShipmentDate(), properties)
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

	return &CartonLabel{
		CartonNumber:           c.CartonNumber(),
		CartonSequence:         c.CartonSequence(),
		TotalCartons:           shp.TotalCartons(),
		ShipmentNumber:         shp.ShipmentNumber(),
		ProductType:            shp.ProductType(),
		ProductTypeDescription: productTypeDescription,
		ShipDate:               shipDate,
		TotalProducts:          c.TotalProducts(),
		ShipFrom:               shipFrom,
		ShipTo:                 shipTo,
	}, nil
}
