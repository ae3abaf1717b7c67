package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingParameter is matched by errors.Is for every MissingParameterError.
var ErrMissingParameter = errors.New("missing required parameter")

// MissingParameterError is returned before any I/O when required fields
// are absent. Fields lists every missing name, not only the first.
type MissingParameterError struct {
	Operation string   `json:"operation"`
	Fields    []string `json:"fields"`
}

// Error implements the error interface.
func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("%s: missing required parameters: %s",
		e.Operation, strings.Join(e.Fields, ", "))
}

// Is reports whether target is ErrMissingParameter.
func (e *MissingParameterError) Is(target error) bool {
	return target == ErrMissingParameter
}

// HTTPError is returned by the transport for non-2xx responses. The full
// response stays available for callers that need headers or the raw body.
type HTTPError struct {
	StatusCode int               `json:"status_code"`
	Status     string            `json:"status"`
	Message    string            `json:"message"`
	Response   *ResponseEnvelope `json:"-"`
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// StatusCodeOf returns the HTTP status carried by err, or 0 when err is not
// (and does not wrap) an HTTPError.
func StatusCodeOf(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.StatusCode
	}
	return 0
}

// IsNotFound reports whether err is an HTTP 404 from the console.
func IsNotFound(err error) bool {
	return StatusCodeOf(err) == 404
}
