package apiclient

import (
	"fmt"
	"strings"
)

// TransportError means the request never produced an HTTP response:
// the backend was unreachable, the connection dropped or the request
// timed out.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("cannot reach backend (%s %s): %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// BackendError is a non-2xx response. Body holds the raw response text so
// it can be shown to the operator verbatim.
type BackendError struct {
	Status int
	Body   string
}

func (e *BackendError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("HTTP error! status: %d", e.Status)
	}
	return fmt.Sprintf("HTTP error! status: %d, message: %s", e.Status, body)
}

// DecodeError means a 2xx response body was not the expected shape.
type DecodeError struct {
	What string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.What, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
