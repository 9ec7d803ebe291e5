package validation

import "errors"

var (
	ErrUnknownTheme   = errors.New("unknown theme")
	ErrMalformedAlert = errors.New("malformed alert payload")
)

// FieldError records a field that was present but unusable and was replaced
// by its default.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
