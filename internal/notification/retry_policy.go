package notification

import (
	"time"
)

const (
	DefaultMaxRetries = 3
	DefaultBaseDelay  = 60 * time.Second
)

// RetryPolicy bounds retries and spaces them linearly: the n-th retry
// runs BaseDelay*n after the failure that caused it.
//
// MaxRetries counts retries after the initial attempt, so a notification is
// attempted at most MaxRetries+1 times.
type RetryPolicy struct {
	MaxRetries int32
	BaseDelay  time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries: DefaultMaxRetries,
		BaseDelay:  DefaultBaseDelay,
	}
}

// ShouldRetry reports whether another attempt is allowed after the given
// number of failed attempts.
func (p RetryPolicy) ShouldRetry(failures int32) bool {
	return failures <= p.MaxRetries
}

// Delay returns the wait before retry number retry (1-indexed).
func (p RetryPolicy) Delay(retry int32) time.Duration {
	if retry < 1 {
		retry = 1
	}
	
	return p.BaseDelay * time.Duration(retry)
}
