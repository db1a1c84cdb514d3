// Package report holds the read-only document projections generated from
// carton and shipment state: the carton label, the carton packing slip, the
// shipping summary report and the unacceptable unit report. The projections
// are pure transformations; all repository lookups happen in the application
// layer and the resolved data is passed in.
package report

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"plasmashipping/internal/core/domain/model/location"
	"plasmashipping/internal/core/domain/model/sysprop"
	"plasmashipping/internal/pkg/errs"
)

// Party is a formatted name and address block printed in the ship-from and
// ship-to sections of a document.
type Party struct {
	Name    string
	Address string
}

type addressFields struct {
	name         string
	addressLine1 string
	addressLine2 string
	city         string
	state        string
	postalCode   string
	country      string
}

// formatAddress renders an address block using the ADDRESS_FORMAT template.
// The template uses {name}, {addressLine1}, {addressLine2}, {city}, {state},
// {postalCode} and {country} placeholders; empty lines left by unset optional
// fields are dropped.
func formatAddress(fields addressFields, format string) string {
	replacer := strings.NewReplacer(
		"{name}", fields.name,
		"{addressLine1}", fields.addressLine1,
		"{addressLine2}", fields.addressLine2,
		"{city}", fields.city,
		"{state}", fields.state,
		"{postalCode}", fields.postalCode,
		"{country}", fields.country,
	)

	lines := strings.Split(replacer.Replace(format), "\n")
	formatted := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			formatted = append(formatted, trimmed)
		}
	}
	return strings.Join(formatted, "\n")
}

// formatDate renders a date with the layout stored in the DATE_FORMAT
// property.
func formatDate(t time.Time, properties []sysprop.Property) (string, error) {
	layout, err := sysprop.FindValue(properties, sysprop.KeyDateFormat)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}

// formatDateTime renders a timestamp in the site's time zone with the layout
// stored in the DATE_TIME_FORMAT property.
func formatDateTime(t time.Time, properties []sysprop.Property, loc *location.Location) (string, error) {
	layout, err := sysprop.FindValue(properties, sysprop.KeyDateTimeFormat)
	if err != nil {
		return "", err
	}

	tz, err := loc.TimeZone()
	if err != nil {
		return "", err
	}
	zone, err := time.LoadLocation(tz)
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"timeZone",
			fmt.Errorf("%q is not a valid time zone: %w", tz, err),
		)
	}

	return t.In(zone).Format(layout), nil
}

// buildTestingStatement resolves the signed testing statement when the
// USE_TESTING_STATEMENT toggle is enabled. The {employeeName} placeholder is
// substituted with the closing employee.
func buildTestingStatement(properties []sysprop.Property, employeeName string) (string, error) {
	if !sysprop.IsEnabled(properties, sysprop.KeyUseTestingStatement) {
		return "", nil
	}

	text, err := sysprop.FindValue(properties, sysprop.KeyTestingStatementText)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(text, "{employeeName}", employeeName), nil
}

// shipFromParty builds the blood center ship-from block from the site address.
func shipFromParty(properties []sysprop.Property, loc *location.Location) (Party, error) {
	name, err := sysprop.FindValue(properties, sysprop.KeyBloodCenterName)
	if err != nil {
		return Party{}, err
	}
	format, err := sysprop.FindValue(properties, sysprop.KeyAddressFormat)
	if err != nil {
		return Party{}, err
	}

	address := loc.Address()
	return Party{
		Name: name,
		Address: formatAddress(addressFields{
			name:         loc.Name(),
			addressLine1: address.AddressLine1,
			addressLine2: address.AddressLine2,
			city:         address.City,
			state:        address.State,
			postalCode:   address.PostalCode,
			country:      address.Country,
		}, format),
	}, nil
}

func requireCloseDate(closeDate *time.Time) (time.Time, error) {
	if closeDate == nil {
		return time.Time{}, errs.NewValueIsRequiredErrorWithCause(
			"closeDate",
			errors.New("document requires a closed date"),
		)
	}
	return *closeDate, nil
}
