package oracle

import "errors"

var (
	// ErrUnavailable indicates the oracle endpoint is unreachable.
	ErrUnavailable = errors.New("planning oracle unavailable")

	// ErrTimeout indicates the oracle call exceeded the configured timeout.
	ErrTimeout = errors.New("oracle request timed out")

	// ErrInvalidOutput indicates the oracle response could not be parsed
	// into a skeleton plan.
	ErrInvalidOutput = errors.New("invalid oracle output format")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("oracle retry attempts exhausted")
)
