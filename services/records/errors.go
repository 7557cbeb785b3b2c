package records

import "fmt"

// TransportError wraps a failed call to the booking-records service. Transport
// failures are isolated per request and never retried automatically.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("records %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func newTransportError(op string, err error) error {
	return &TransportError{Op: op, Err: err}
}
