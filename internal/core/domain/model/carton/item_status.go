package carton

import (
	"fmt"

	"plasmashipping/internal/pkg/errs"
)

// ItemStatus represents the verification state of a packed item.
type ItemStatus int

const (
	// ItemStatusUnknown represents an invalid or undefined item status.
	ItemStatusUnknown ItemStatus = iota

	// ItemStatusPacked is the initial status of a scanned item.
	ItemStatusPacked

	// ItemStatusVerified marks an item confirmed by the second verification scan.
	ItemStatusVerified
)

func getItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		ItemStatusUnknown:  "Unknown",
		ItemStatusPacked:   "PACKED",
		ItemStatusVerified: "VERIFIED",
	}
}

// ItemStatusFromString maps a persisted item status string back to its value.
func ItemStatusFromString(s string) (ItemStatus, error) {
	switch s {
	case "PACKED":
		return ItemStatusPacked, nil
	case "VERIFIED":
		return ItemStatusVerified, nil
	default:
		return ItemStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"carton item status",
			fmt.Errorf("%q is not a valid carton item status", s),
		)
	}
}

// Validate checks if the ItemStatus value is valid.
func (s ItemStatus) Validate() error {
	if s != ItemStatusPacked && s != ItemStatusVerified {
		return errs.NewValueIsInvalidErrorWithCause(
			"carton item status",
			fmt.Errorf("%d is not a valid carton item status", s),
		)
	}
	return nil
}

// String returns the persisted name of the item status.
func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
