package notification

import (
	"errors"
)

var (
	ErrValidation  = errors.New("validation error")
	ErrNotFound    = errors.New("not found")
	ErrTransport   = errors.New("transport error")
	ErrPersistence = errors.New("persistence error")
	ErrEnqueue     = errors.New("enqueue error")
)

// Delivery errors that no later attempt can fix.
var (
	ErrSkipRetry              = errors.New("skip retry")
	ErrUnknownChannel         = errors.New("unknown channel")
	ErrTransportNotConfigured = errors.New("transport not configured")
	ErrMissingRecipient       = errors.New("missing recipient")
)

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }

func (e *permanentError) Unwrap() error { return e.err }

func (e *permanentError) Is(target error) bool { return target == ErrSkipRetry }

// Permanent marks err as non-retryable while keeping its message intact.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	
	return &permanentError{err: err}
}

// IsRetryable reports whether a delivery error may succeed on a later attempt.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	
	return !errors.Is(err, ErrSkipRetry) &&
		!errors.Is(err, ErrUnknownChannel) &&
		!errors.Is(err, ErrTransportNotConfigured) &&
		!errors.Is(err, ErrMissingRecipient)
}
