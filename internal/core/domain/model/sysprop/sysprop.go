// Package sysprop holds system process properties: typed key/value settings
// that configure the shipping documents (formats, toggles and statement
// templates for packing slips, labels and summary reports).
package sysprop

import (
	"fmt"

	"plasmashipping/internal/pkg/errs"
)

// Property types grouping the settings of each shipping document.
const (
	TypeCartonPackingSlip     = "RPS_CARTON_PACKING_SLIP"
	TypeCartonLabel           = "RPS_CARTON_LABEL"
	TypeShippingSummaryReport = "RPS_SHIPPING_SUMMARY_REPORT"
	TypeUnacceptableReport    = "RPS_UNACCEPTABLE_UNIT_REPORT"
)

// Well-known property keys shared by the shipping documents.
const (
	KeyBloodCenterName      = "BLOOD_CENTER_NAME"
	KeyAddressFormat        = "ADDRESS_FORMAT"
	KeyDateFormat           = "DATE_FORMAT"
	KeyDateTimeFormat       = "DATE_TIME_FORMAT"
	KeyUseSignature         = "USE_SIGNATURE"
	KeyUseTransportationNum = "USE_TRANSPORTATION_NUMBER"
	KeyUseTestingStatement  = "USE_TESTING_STATEMENT"
	KeyUseLicenseNumber     = "USE_LICENSE_NUMBER"
	KeyTestingStatementText = "TESTING_STATEMENT_TXT"
	KeyUseHeaderSection     = "USE_HEADER_SECTION"
	KeyHeaderSectionText    = "HEADER_SECTION_TXT"
)

// Yes is the affirmative value of toggle properties.
const Yes = "Y"

// Property is a typed system configuration entry.
type Property struct {
	propertyType string
	key          string
	value        string
}

// NewProperty creates a system process property.
func NewProperty(propertyType, key, value string) (Property, error) {
	if propertyType == "" {
		return Property{}, errs.NewValueIsRequiredError("property type")
	}
	if key == "" {
		return Property{}, errs.NewValueIsRequiredError("property key")
	}
	return Property{propertyType: propertyType, key: key, value: value}, nil
}

// Type returns the document type the property belongs to.
func (p Property) Type() string {
	return p.propertyType
}

// Key returns the property key.
func (p Property) Key() string {
	return p.key
}

// Value returns the property value.
func (p Property) Value() string {
	return p.value
}

// FindValue returns the value of the property with the given key, or an error
// naming the key when it is not present. Shipping documents treat a missing
// property as a configuration fault.
func FindValue(properties []Property, key string) (string, error) {
	for _, p := range properties {
		if p.key == key {
			return p.value, nil
		}
	}
	return "", errs.NewValueIsRequiredErrorWithCause(
		"system property",
		fmt.Errorf("System Property value is required for the Key : %s", key),
	)
}

// IsEnabled reports whether the toggle property with the given key is set to Yes.
// A missing toggle reads as disabled.
func IsEnabled(properties []Property, key string) bool {
	value, err := FindValue(properties, key)
	return err == nil && value == Yes
}
