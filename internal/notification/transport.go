package notification

import (
	"context"
	"fmt"
	
	db "github.com/katatrina/notification-service/internal/db/sqlc"
)

// Transport delivers a notification over one channel. Implementations only
// read the record; lifecycle bookkeeping belongs to the Processor.
// Returning an error that wraps ErrSkipRetry (see Permanent) marks the
// failure as non-retryable; any other error is treated as transient.
type Transport interface {
	Deliver(ctx context.Context, notification db.Notification) error
}

// TransportFunc adapts a plain function to Transport.
type TransportFunc func(ctx context.Context, notification db.Notification) error

func (f TransportFunc) Deliver(ctx context.Context, notification db.Notification) error {
	return f(ctx, notification)
}

// Unconfigured returns a Transport for a channel with no backend. Every
// delivery fails permanently, so nothing is ever reported as sent by accident.
func Unconfigured(channel string) Transport {
	return TransportFunc(func(ctx context.Context, notification db.Notification) error {
		return fmt.Errorf("%w: no %s backend", ErrTransportNotConfigured, channel)
	})
}
