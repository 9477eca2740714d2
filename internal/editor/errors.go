package editor

import (
	"errors"
)

var (
	ErrNameRequired         = &ValidationError{Field: FieldName, Message: "Member name is required"}
	ErrAmountRequired       = &ValidationError{Field: "total", Message: "Receipt amount must be greater than zero"}
	ErrConfirmationRequired = errors.New("delete must be confirmed")
	ErrNotFound             = errors.New("receipt not found")
	ErrUnknownField         = errors.New("unknown receipt field")
)

// ValidationError reports why a draft cannot be saved. The draft is kept
// as-is so the operator can correct it.
type ValidationError struct {
	Field   Field
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Notice returns the error as an operator-facing notice.
func (e *ValidationError) Notice() Notice {
	return failure(e.Message)
}
