package shipment

import (
	"fmt"

	"plasmashipping/internal/pkg/errs"
)

// ReportStatus tracks the outcome of the unacceptable unit report produced by
// the close-time batch revalidation. A shipment carries no report status until
// its first close request.
type ReportStatus int

const (
	// ReportStatusNone means no revalidation has run yet.
	ReportStatusNone ReportStatus = iota

	// ReportStatusCompleted means revalidation passed with no unacceptable units.
	ReportStatusCompleted

	// ReportStatusCompletedFailed means revalidation found unacceptable units.
	ReportStatusCompletedFailed

	// ReportStatusErrorProcessing means revalidation aborted on a system error.
	ReportStatusErrorProcessing
)

func getReportStatusStrings() map[ReportStatus]string {
	return map[ReportStatus]string{
		ReportStatusNone:            "",
		ReportStatusCompleted:       "COMPLETED",
		ReportStatusCompletedFailed: "COMPLETED_FAILED",
		ReportStatusErrorProcessing: "ERROR_PROCESSING",
	}
}

// ReportStatusFromString maps a persisted report status string back to its
// value. The empty string maps to ReportStatusNone.
func ReportStatusFromString(s string) (ReportStatus, error) {
	for status, str := range getReportStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return ReportStatusNone, errs.NewValueIsInvalidErrorWithCause(
		"report status",
		fmt.Errorf("%q is not a valid report status", s),
	)
}

// String returns the persisted name of the report status.
func (s ReportStatus) String() string {
	if str, ok := getReportStatusStrings()[s]; ok {
		return str
	}
	return ""
}
