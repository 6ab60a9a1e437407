package service

import "fmt"

// ValidationError reports a submitted field the directory refuses to
// store.  Handlers should translate this into an HTTP 422 response.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}
