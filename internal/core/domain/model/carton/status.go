package carton

import (
	"fmt"

	"plasmashipping/internal/pkg/errs"
)

// Status represents the lifecycle state of a carton.
//
// State transitions:
//
//	Open ──> Closed ──> Repack ──> Open
//	  │                   (reopen clears items)
//	  └────> Removed (destructive, terminal)
//
// Status validates state transitions and provides the string representations
// used for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Open is the initial status. Open cartons accept item packing.
	Open

	// Closed cartons have an immutable item set and can be printed.
	Closed

	// Repack marks a carton whose contents failed batch revalidation and
	// must be reopened and repacked.
	Repack

	// Removed marks a carton deleted from its shipment. Terminal.
	Removed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "Unknown",
		Open:    "OPEN",
		Closed:  "CLOSED",
		Repack:  "REPACK",
		Removed: "REMOVED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:    "OPEN",
		Closed:  "CLOSED",
		Repack:  "REPACK",
		Removed: "REMOVED",
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
		"carton status",
		fmt.Errorf("%q is not a valid carton status", s),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"carton status",
			fmt.Errorf("%d is not a valid carton status", s),
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

// Close transitions the status to Closed. Only open cartons can close.
func (s Status) Close() (Status, error) {
	if s != Open {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"carton status",
			fmt.Errorf("%s is not a valid status to close", s),
		)
	}
	return Closed, nil
}

// MarkRepack transitions the status to Repack. A removed carton cannot be
// flagged for repacking.
func (s Status) MarkRepack() (Status, error) {
	if s != Open && s != Closed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"carton status",
			fmt.Errorf("%s is not a valid status to mark for repack", s),
		)
	}
	return Repack, nil
}

// Reopen transitions the status back to Open. Only cartons flagged for
// repacking can reopen.
func (s Status) Reopen() (Status, error) {
	if s != Repack {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"carton status",
			fmt.Errorf("%s is not a valid status to reopen", s),
		)
	}
	return Open, nil
}

// Remove transitions the status to Removed. Closed cartons cannot be removed.
func (s Status) Remove() (Status, error) {
	if s != Open && s != Repack {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"carton status",
			fmt.Errorf("%s is not a valid status to remove", s),
		)
	}
	return Removed, nil
}
