package feedback

import "errors"

var (
	// ErrUnavailable indicates the feedback service is unreachable.
	ErrUnavailable = errors.New("feedback service unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("feedback request timed out")

	// ErrBadResponse indicates a 200 response that is not a feedback object.
	ErrBadResponse = errors.New("invalid feedback response")

	// ErrRetryExhausted indicates every attempt got a non-2xx status.
	ErrRetryExhausted = errors.New("feedback retry attempts exhausted")
)
