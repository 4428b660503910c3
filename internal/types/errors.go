package types

import (
	"errors"
	"fmt"
)

// ErrNotAuthorized is returned when a privileged operation is attempted on a
// client that has neither an API key nor a proxy domain configured.
var ErrNotAuthorized = errors.New("not authorized: configure an API key or a proxy domain")

// BadRequestError reports caller-supplied data that failed local validation.
// No network call is made when it is returned.
type BadRequestError struct {
	Field string
	Value string
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("bad request data: %q is not a valid %s", e.Value, e.Field)
}

// RequestError reports a transport failure, a non-success HTTP status, or a
// response body that could not be decoded.
type RequestError struct {
	Op     string
	Status int // 0 when the failure happened below the HTTP layer
	Err    error
}

func (e *RequestError) Error() string {
	switch {
	case e.Status > 0 && e.Err != nil:
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.Status, e.Err)
	case e.Status > 0:
		return fmt.Sprintf("%s: status %d", e.Op, e.Status)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

// Unwrap returns the underlying cause for error chain compatibility.
func (e *RequestError) Unwrap() error { return e.Err }
