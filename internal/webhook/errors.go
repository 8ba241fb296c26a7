package webhook

import (
	"fmt"
	"time"
)

// TimeoutError reports that a single attempt exceeded the configured timeout.
type TimeoutError struct {
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("webhook request timed out after %s", e.Timeout)
}

// TransportError reports that the call could not complete at the network
// level, e.g. connection refused or DNS failure.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("webhook transport failure for %s: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError reports a response received with a non-2xx status.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("webhook returned status %d %s", e.Code, e.Status)
}

// DecodeError reports a response body that could not be parsed.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode webhook response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
