// Package location holds the collection-site reference data used by the
// numbering engine and the reporting projections. A Location carries a set of
// immutable key/value properties (partner prefixes, site codes, feature
// toggles) that drive per-site behavior.
package location

import (
	"errors"

	"plasmashipping/internal/pkg/errs"
)

// ErrLocationIsNotConstructed is returned when a Location instance was not
// created through the NewLocation factory method.
var ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation constructor")

// TimeZoneKey is the location property holding the IANA time zone used when
// formatting report timestamps for the site.
const TimeZoneKey = "TZ"

// Property is an immutable key/value pair scoped to a location. It has no
// lifecycle of its own beyond the owning Location.
type Property struct {
	key   string
	value string
}

// NewProperty creates a location property. Both key and value are mandatory.
func NewProperty(key, value string) (Property, error) {
	if key == "" {
		return Property{}, errs.NewValueIsRequiredError("property key")
	}
	if value == "" {
		return Property{}, errs.NewValueIsRequiredError("property value")
	}
	return Property{key: key, value: value}, nil
}

// Key returns the property key.
func (p Property) Key() string {
	return p.key
}

// Value returns the property value.
func (p Property) Value() string {
	return p.value
}

// Address is the postal address of a collection site, printed in the
// ship-from block of carton and shipment documents.
type Address struct {
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	PostalCode   string
	Country      string
}

// Location represents a collection site. It is reference data: the lifecycle
// engine never mutates a Location, it only reads its properties.
type Location struct {
	id            int64
	code          string
	name          string
	address       Address
	properties    []Property
	isConstructed bool
}

// NewLocation creates a Location with its configuration properties.
// The site code is mandatory.
func NewLocation(id int64, code, name string, address Address, properties []Property) (*Location, error) {
	if code == "" {
		return nil, errs.NewValueIsRequiredError("location code")
	}

	return &Location{
		id:            id,
		code:          code,
		name:          name,
		address:       address,
		properties:    properties,
		isConstructed: true,
	}, nil
}

// Validate ensures the Location was created through NewLocation.
func (l *Location) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLocationIsNotConstructed
	}
	return nil
}

// ID returns the location identifier.
func (l *Location) ID() int64 {
	return l.id
}

// Code returns the site code (e.g. "MH1").
func (l *Location) Code() string {
	return l.code
}

// Name returns the human-readable site name.
func (l *Location) Name() string {
	return l.name
}

// Address returns the postal address of the site.
func (l *Location) Address() Address {
	return l.address
}

// Properties returns the configuration properties of the site.
func (l *Location) Properties() []Property {
	return l.properties
}

// FindProperty looks up a configuration property by key. The second return
// value reports whether the property is configured for this location.
func (l *Location) FindProperty(key string) (Property, bool) {
	for _, p := range l.properties {
		if p.key == key {
			return p, true
		}
	}
	return Property{}, false
}

// TimeZone returns the site's IANA time zone from the TZ property.
func (l *Location) TimeZone() (string, error) {
	tz, ok := l.FindProperty(TimeZoneKey)
	if !ok {
		return "", errs.NewConfigurationMissingError(TimeZoneKey)
	}
	return tz.Value(), nil
}
