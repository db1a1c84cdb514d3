package shipment

import (
	"errors"
	"fmt"

	"plasmashipping/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// State transitions:
//
//	Open ──> InProgress ──> Processing ──> Closed
//	              ^              │
//	              └──────────────┘ (batch revalidation found unacceptable units)
//
// A shipment moves to InProgress when its first carton is packed, to
// Processing when the close is requested and the batch revalidation starts,
// and to Closed only when the revalidation reports no unacceptable units.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Open is the initial status of a created shipment.
	Open

	// InProgress marks a shipment with packing activity.
	InProgress

	// Processing marks a shipment whose close request is being revalidated.
	// Processing shipments reject all modifications.
	Processing

	// Closed is the terminal status of a successfully shipped shipment.
	Closed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Open:       "OPEN",
		InProgress: "IN_PROGRESS",
		Processing: "PROCESSING",
		Closed:     "CLOSED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:       "OPEN",
		InProgress: "IN_PROGRESS",
		Processing: "PROCESSING",
		Closed:     "CLOSED",
	}
}

// StatusFromString maps a persisted status string back to its Status value.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"shipment status",
		fmt.Errorf("%q is not a valid shipment status", s),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipment status",
			fmt.Errorf("%d is not a valid shipment status", s),
		)
	}
	return nil
}

// String returns the persisted name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// MarkInProgress records packing activity. Open shipments move to InProgress,
// shipments already past Open keep their status, and closed shipments reject
// the transition.
func (s Status) MarkInProgress() (Status, error) {
	if s == Closed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"shipment status",
			errors.New("Shipment is closed and cannot be reopen"),
		)
	}
	if s == Open {
		return InProgress, nil
	}
	return s, nil
}
