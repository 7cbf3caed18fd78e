package client

import "fmt"

// TransportError signals that the connection could not be established or the
// request timed out before a response arrived
type TransportError struct {
	Err error
}

// Error returns the formatted error message
func (e *TransportError) Error() string {
	return "transport error: " + e.Err.Error()
}

// Unwrap returns the wrapped cause
func (e *TransportError) Unwrap() error {
	return e.Err
}

// HTTPStatusError signals a non-2xx response; the body is preserved for
// diagnostics
type HTTPStatusError struct {
	Status int
	Body   string
}

// Error returns the formatted error message
func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("non-2xx HTTP status code %d: %s", e.Status, e.Body)
}
