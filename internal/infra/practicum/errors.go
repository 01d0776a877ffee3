package practicum

import "fmt"

// TransportError wraps a failure to reach the status endpoint at all.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("endpoint %s request failed: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServerAccessError reports a response with a status code other than 200.
type ServerAccessError struct {
	Endpoint   string
	StatusCode int
}

func (e *ServerAccessError) Error() string {
	return fmt.Sprintf("endpoint %s is unavailable, status code %d", e.Endpoint, e.StatusCode)
}
