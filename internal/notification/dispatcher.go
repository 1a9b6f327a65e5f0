package notification

import (
	"context"
	"fmt"
	"sync"
	
	db "github.com/katatrina/notification-service/internal/db/sqlc"
	"github.com/rs/zerolog/log"
)

// Dispatcher routes a notification to the transport registered for its
// channel and classifies the result.
type Dispatcher struct {
	mu         sync.RWMutex
	transports map[string]Transport
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		transports: make(map[string]Transport),
	}
}

// Register binds transport to channel, replacing any previous binding.
func (d *Dispatcher) Register(channel string, transport Transport) {
	d.mu.Lock()
	defer d.mu.Unlock()
	
	d.transports[channel] = transport
}

func (d *Dispatcher) transportFor(channel string) (Transport, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	
	t, ok := d.transports[channel]
	return t, ok
}

// Dispatch performs one delivery attempt. It never mutates the record.
func (d *Dispatcher) Dispatch(ctx context.Context, notification db.Notification) (outcome Outcome) {
	transport, ok := d.transportFor(notification.Channel)
	if !ok {
		return FatalFailure(fmt.Errorf("%w: %s", ErrUnknownChannel, notification.Channel))
	}
	
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("notification_id", notification.ID.String()).
				Str("channel", notification.Channel).
				Interface("panic", r).
				Msg("transport panicked")
			outcome = RetryableFailure(fmt.Errorf("%w: panic: %v", ErrTransport, r))
		}
	}()
	
	err := transport.Deliver(ctx, notification)
	if err == nil {
		return Success()
	}
	
	if !IsRetryable(err) {
		return FatalFailure(err)
	}
	
	return RetryableFailure(err)
}
