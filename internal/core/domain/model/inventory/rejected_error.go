package inventory

// Severity levels carried by rejection errors. WARN rejections are business
// outcomes the operator can act on; SYSTEM rejections are infrastructure
// faults and must not trigger the carton verification reset.
const (
	ErrorTypeWarn   = "WARN"
	ErrorTypeSystem = "SYSTEM"
)

// RejectedError reports that a unit failed inventory validation. It keeps the
// full structured gateway payload so the boundary can surface the rejection's
// own reason, action, details and severity instead of a hardcoded message.
type RejectedError struct {
	Message    string
	ErrorType  string
	Validation *Validation
}

// NewRejectedError creates a RejectedError without a gateway payload, used for
// rejections raised before the gateway is consulted (e.g. duplicate packing).
func NewRejectedError(message, errorType string) *RejectedError {
	return &RejectedError{Message: message, ErrorType: errorType}
}

// NewRejectedErrorWithValidation creates a RejectedError carrying the full
// gateway validation payload.
func NewRejectedErrorWithValidation(message, errorType string, validation *Validation) *RejectedError {
	return &RejectedError{Message: message, ErrorType: errorType, Validation: validation}
}

func (e *RejectedError) Error() string {
	return e.Message
}

// IsSystem reports whether the rejection is an infrastructure fault rather
// than a business outcome.
func (e *RejectedError) IsSystem() bool {
	return e.ErrorType == ErrorTypeSystem
}
