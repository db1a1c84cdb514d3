// Package services holds the stateless domain services shared by the
// lifecycle use cases: the configuration-driven numbering engine and the
// packing validation pipeline.
package services

import (
	"fmt"

	"plasmashipping/internal/core/domain/model/location"
	"plasmashipping/internal/pkg/errs"
)

// Location property keys driving the numbering engine.
const (
	CartonPartnerPrefixKey   = "RPS_CARTON_PARTNER_PREFIX"
	CartonLocationCodeKey    = "RPS_LOCATION_CARTON_CODE"
	ShipmentUsePrefixKey     = "RPS_USE_PARTNER_PREFIX"
	ShipmentPartnerPrefixKey = "RPS_PARTNER_PREFIX"
	ShipmentLocationCodeKey  = "RPS_LOCATION_SHIPMENT_CODE"
)

const yes = "Y"

// GenerateCartonNumber derives the human-readable carton number from the
// site configuration: partner prefix, site carton code, then the sequence
// value drawn from the carton counter. Both properties are mandatory.
func GenerateCartonNumber(cartonID int64, loc *location.Location) (string, error) {
	if err := loc.Validate(); err != nil {
		return "", err
	}

	prefix, ok := loc.FindProperty(CartonPartnerPrefixKey)
	if !ok {
		return "", errs.NewConfigurationMissingError(CartonPartnerPrefixKey)
	}

	cartonCode, ok := loc.FindProperty(CartonLocationCodeKey)
	if !ok {
		return "", errs.NewConfigurationMissingError(CartonLocationCodeKey)
	}

	return fmt.Sprintf("%s%s%d", prefix.Value(), cartonCode.Value(), cartonID), nil
}

// GenerateShipmentNumber derives the shipment number from the site
// configuration. The partner prefix is prepended only when the
// RPS_USE_PARTNER_PREFIX toggle is set to Y; the prefix property itself is
// mandatory only in that case.
func GenerateShipmentNumber(shipmentID int64, loc *location.Location) (string, error) {
	if err := loc.Validate(); err != nil {
		return "", err
	}

	usePrefix, ok := loc.FindProperty(ShipmentUsePrefixKey)
	if !ok {
		return "", errs.NewConfigurationMissingError(ShipmentUsePrefixKey)
	}

	shipmentNumber := ""
	if usePrefix.Value() == yes {
		prefix, ok := loc.FindProperty(ShipmentPartnerPrefixKey)
		if !ok {
			return "", errs.NewConfigurationMissingError(ShipmentPartnerPrefixKey)
		}
		shipmentNumber = prefix.Value()
	}

	shipmentCode, ok := loc.FindProperty(ShipmentLocationCodeKey)
	if !ok {
		return "", errs.NewConfigurationMissingError(ShipmentLocationCodeKey)
	}

	return fmt.Sprintf("%s%s%d", shipmentNumber, shipmentCode.Value(), shipmentID), nil
}
