package notification

import (
	"context"
	"errors"
	"fmt"
	"time"
	
	"github.com/google/uuid"
	db "github.com/katatrina/notification-service/internal/db/sqlc"
	"github.com/katatrina/notification-service/internal/event"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// commitTimeout bounds the status update, retry enqueue and event publish
// that follow a delivery attempt.
const commitTimeout = 10 * time.Second

// Store is the slice of the database the delivery pipeline needs.
// Both update methods are conditional on (status = pending, retry_count =
// ExpectedRetryCount) and return db.ErrRecordNotFound when the condition fails.
type Store interface {
	GetNotificationByID(ctx context.Context, id uuid.UUID) (db.Notification, error)
	MarkNotificationSent(ctx context.Context, arg db.MarkNotificationSentParams) (db.Notification, error)
	RecordNotificationFailure(ctx context.Context, arg db.RecordNotificationFailureParams) (db.Notification, error)
}

// Processor runs one delivery attempt and moves the notification through its
// lifecycle: pending -> sent, pending -> failed, or pending -> pending with a
// retry scheduled on the task queue.
type Processor struct {
	store      Store
	dispatcher *Dispatcher
	queue      TaskQueue
	policy     RetryPolicy
	lease      Lease
	publisher  event.Publisher
}

type ProcessorOption func(*Processor)

func WithRetryPolicy(policy RetryPolicy) ProcessorOption {
	return func(p *Processor) {
		p.policy = policy
	}
}

// WithLease serializes executions for the same notification id.
func WithLease(lease Lease) ProcessorOption {
	return func(p *Processor) {
		p.lease = lease
	}
}

func WithPublisher(publisher event.Publisher) ProcessorOption {
	return func(p *Processor) {
		p.publisher = publisher
	}
}

func NewProcessor(store Store, dispatcher *Dispatcher, queue TaskQueue, opts ...ProcessorOption) *Processor {
	p := &Processor{
		store:      store,
		dispatcher: dispatcher,
		queue:      queue,
		policy:     DefaultRetryPolicy(),
		publisher:  event.NopPublisher{},
	}
	
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process is the task entry point. attempt is the retry_count the record had
// when this attempt was scheduled; a mismatch means the attempt was already
// accounted for by another execution and the call is a no-op, as is any call
// for a missing or terminal record.
//
// A returned error wrapping ErrPersistence means nothing was committed and the
// same attempt should be redelivered. ErrEnqueue means the failure was
// committed but its retry could not be scheduled.
func (p *Processor) Process(ctx context.Context, id uuid.UUID, attempt int32) error {
	logger := log.With().Str("notification_id", id.String()).Int32("attempt", attempt).Logger()
	
	if p.lease != nil {
		release, acquired, err := p.lease.Acquire(ctx, id.String())
		switch {
		case err != nil:
			logger.Warn().Err(err).Msg("failed to acquire execution lease, continuing without it")
		case !acquired:
			logger.Info().Msg("notification is being processed elsewhere, skipping")
			return nil
		default:
			defer release()
		}
	}
	
	notification, err := p.store.GetNotificationByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			logger.Warn().Msg("notification not found, dropping task")
			return nil
		}
		
		return fmt.Errorf("%w: failed to load notification %s: %w", ErrPersistence, id, err)
	}
	
	if notification.IsTerminal() {
		logger.Info().Str("status", string(notification.Status)).Msg("notification already in terminal state, skipping")
		return nil
	}
	
	if notification.RetryCount != attempt {
		logger.Info().Int32("retry_count", notification.RetryCount).Msg("stale attempt, skipping")
		return nil
	}
	
	logger = logger.With().Str("channel", notification.Channel).Logger()
	logger.Info().Msg("processing notification")
	
	outcome := p.dispatcher.Dispatch(ctx, notification)
	
	// The outcome must be recorded even when delivery ran into the task deadline.
	commitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), commitTimeout)
	defer cancel()
	
	switch outcome.Kind {
	case OutcomeSuccess:
		return p.markSent(commitCtx, logger, notification)
	case OutcomeFatal:
		logger.Warn().Str("reason", outcome.Reason).Msg("delivery failed permanently")
		return p.markFailed(commitCtx, logger, notification, outcome.Reason, 0)
	default:
		return p.handleRetryable(commitCtx, logger, notification, outcome.Reason)
	}
}

func (p *Processor) markSent(ctx context.Context, logger zerolog.Logger, notification db.Notification) error {
	updated, err := p.store.MarkNotificationSent(ctx, db.MarkNotificationSentParams{
		ID:                 notification.ID,
		ExpectedRetryCount: notification.RetryCount,
	})
	if err != nil {
		return p.commitError(logger, notification, err)
	}
	
	logger.Info().Msg("notification sent")
	p.publish(ctx, logger, event.EventTypeSent, updated)
	
	return nil
}

// markFailed moves the notification to failed. increment is 1 when the
// failure is a consumed attempt and 0 for fatal outcomes.
func (p *Processor) markFailed(ctx context.Context, logger zerolog.Logger, notification db.Notification, reason string, increment int32) error {
	updated, err := p.store.RecordNotificationFailure(ctx, db.RecordNotificationFailureParams{
		Status:             db.NotificationStatusFailed,
		ErrorMessage:       &reason,
		Increment:          increment,
		ID:                 notification.ID,
		ExpectedRetryCount: notification.RetryCount,
	})
	if err != nil {
		return p.commitError(logger, notification, err)
	}
	
	logger.Warn().Int32("retry_count", updated.RetryCount).Str("reason", reason).Msg("notification failed")
	p.publish(ctx, logger, event.EventTypeFailed, updated)
	
	return nil
}

func (p *Processor) handleRetryable(ctx context.Context, logger zerolog.Logger, notification db.Notification, reason string) error {
	failures := notification.RetryCount + 1
	if !p.policy.ShouldRetry(failures) {
		logger.Warn().Int32("max_retries", p.policy.MaxRetries).Msg("retries exhausted")
		return p.markFailed(ctx, logger, notification, reason, 1)
	}
	
	updated, err := p.store.RecordNotificationFailure(ctx, db.RecordNotificationFailureParams{
		Status:             db.NotificationStatusPending,
		ErrorMessage:       &reason,
		Increment:          1,
		ID:                 notification.ID,
		ExpectedRetryCount: notification.RetryCount,
	})
	if err != nil {
		return p.commitError(logger, notification, err)
	}
	
	delay := p.policy.Delay(failures)
	if err = p.queue.EnqueueNotification(ctx, notification.ID, updated.RetryCount, delay); err != nil {
		logger.Error().Err(err).Dur("delay", delay).Msg("failed to schedule retry")
		return fmt.Errorf("%w: failed to schedule retry %d for notification %s: %w", ErrEnqueue, failures, notification.ID, err)
	}
	
	logger.Warn().
		Str("reason", reason).
		Int32("retry_count", updated.RetryCount).
		Dur("delay", delay).
		Msg("delivery failed, retry scheduled")
	p.publish(ctx, logger, event.EventTypeRetryScheduled, updated)
	
	return nil
}

// commitError treats a conditional update that matched nothing as a lost race
// with another execution, which has already recorded its own outcome.
func (p *Processor) commitError(logger zerolog.Logger, notification db.Notification, err error) error {
	if errors.Is(err, db.ErrRecordNotFound) {
		logger.Info().Msg("notification changed concurrently, outcome discarded")
		return nil
	}
	
	logger.Error().Err(err).Msg("failed to commit notification status")
	return fmt.Errorf("%w: failed to update notification %s: %w", ErrPersistence, notification.ID, err)
}

func (p *Processor) publish(ctx context.Context, logger zerolog.Logger, eventType string, notification db.Notification) {
	if err := p.publisher.Publish(ctx, event.FromNotification(eventType, notification)); err != nil {
		logger.Warn().Err(err).Str("event", eventType).Msg("failed to publish lifecycle event")
	}
}
