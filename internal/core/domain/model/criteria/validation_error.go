package criteria

// ValidationError reports that a unit breached a customer criteria rule.
// It is a distinct failure category from inventory rejections: the error name
// identifies the breached rule so callers can emit rule-specific
// notifications.
type ValidationError struct {
	Message     string
	MessageType string
	ErrorName   string
}

// NewValidationError creates a ValidationError from the breached criteria item.
func NewValidationError(item Item) *ValidationError {
	return &ValidationError{
		Message:     item.Message(),
		MessageType: item.MessageType(),
		ErrorName:   item.Type(),
	}
}

func (e *ValidationError) Error() string {
	return e.Message
}
