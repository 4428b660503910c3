package workshop

import (
	"errors"

	"github.com/steamwebapi/workshop/internal/types"
)

// ErrNotAuthorized is returned by privileged operations when the client
// has neither an API key nor a proxy domain configured. It is returned
// before any network activity.
var ErrNotAuthorized = types.ErrNotAuthorized

// Re-export the typed errors so callers compare against a single package.
type (
	// BadRequestError reports caller-supplied data that failed local
	// validation, e.g. a non-numeric published file id.
	BadRequestError = types.BadRequestError
	// RequestError reports a transport failure, a non-success HTTP
	// status, or an undecodable response body.
	RequestError = types.RequestError
)

// IsNotAuthorized reports whether err is an authorization failure.
func IsNotAuthorized(err error) bool { return errors.Is(err, ErrNotAuthorized) }

// IsBadRequest reports whether err is a local validation failure.
func IsBadRequest(err error) bool {
	var e *BadRequestError
	return errors.As(err, &e)
}

// IsRequestError reports whether err is a transport or remote failure.
func IsRequestError(err error) bool {
	var e *RequestError
	return errors.As(err, &e)
}
