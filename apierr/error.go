// Package apierr turns non-2xx API responses into typed errors.
package apierr

import (
	"errors"
	"io/fs"
	"net/http"
)

// RequestIDHeader carries the platform-side request id.
const RequestIDHeader = "BOX-REQUEST-ID"

// APIError is a non-2xx response from the API.
type APIError struct {
	Status    int     // HTTP status
	Message   string  // composed summary, see FormatMessage
	RequestID string  // "inner.outer" identifier fragment, "" when neither id is known
	Payload   Payload // structured fields, zero when the body is not a JSON object
	Raw       string  // body exactly as received, "" when empty
	Header    Header  // response headers, case-insensitive
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return FormatMessage(e.Status, e.RequestID, e.Payload)
}

// StatusText is the standard text for Status.
func (e *APIError) StatusText() string {
	return http.StatusText(e.Status)
}

// Unwrap lets errors.Is match fs.ErrPermission on 403 and fs.ErrNotExist
// on 404.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusForbidden:
		return fs.ErrPermission
	case http.StatusNotFound:
		return fs.ErrNotExist
	}
	return nil
}

// As returns the *APIError in err's chain, if any.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
