package notificationtracking

import (
	"context"
	"time"
	
	"github.com/go-co-op/gocron/v2"
	db "github.com/katatrina/notification-service/internal/db/sqlc"
	"github.com/katatrina/notification-service/internal/notification"
	"github.com/katatrina/notification-service/internal/worker"
	"github.com/rs/zerolog/log"
)

const (
	DefaultInterval   = time.Minute
	DefaultStaleAfter = 10 * time.Minute
	DefaultBatchSize  = 100
)

type Store interface {
	ListStalePendingNotifications(ctx context.Context, arg db.ListStalePendingNotificationsParams) ([]db.Notification, error)
}

// NotificationTracker periodically finds pending notifications whose next
// attempt is missing from the task queue and schedules it again.
type NotificationTracker struct {
	store      Store
	queue      notification.TaskQueue
	inspector  worker.TaskInspector
	scheduler  gocron.Scheduler
	interval   time.Duration
	staleAfter time.Duration
	batchSize  int32
	now        func() time.Time
}

type Option func(*NotificationTracker)

func WithInterval(interval time.Duration) Option {
	return func(t *NotificationTracker) {
		if interval > 0 {
			t.interval = interval
		}
	}
}

// WithStaleAfter sets how long a pending notification may go untouched
// before its task is checked. Keep it above the longest retry delay.
func WithStaleAfter(staleAfter time.Duration) Option {
	return func(t *NotificationTracker) {
		if staleAfter > 0 {
			t.staleAfter = staleAfter
		}
	}
}

func WithBatchSize(size int32) Option {
	return func(t *NotificationTracker) {
		if size > 0 {
			t.batchSize = size
		}
	}
}

func NewNotificationTracker(store Store, queue notification.TaskQueue, inspector worker.TaskInspector, opts ...Option) (*NotificationTracker, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	
	tracker := &NotificationTracker{
		store:      store,
		queue:      queue,
		inspector:  inspector,
		scheduler:  scheduler,
		interval:   DefaultInterval,
		staleAfter: DefaultStaleAfter,
		batchSize:  DefaultBatchSize,
		now:        time.Now,
	}
	
	for _, opt := range opts {
		opt(tracker)
	}
	return tracker, nil
}

// Start schedules the sweep job. Runs never overlap.
func (t *NotificationTracker) Start() error {
	_, err := t.scheduler.NewJob(
		gocron.DurationJob(t.interval),
		gocron.NewTask(
			func() {
				ctx, cancel := context.WithTimeout(context.Background(), t.interval)
				defer cancel()
				
				t.requeueStalePending(ctx)
			},
		),
		gocron.WithName("requeue_stale_notifications"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}
	
	t.scheduler.Start()
	log.Info().Dur("interval", t.interval).Dur("stale_after", t.staleAfter).Msg("notification tracker started")
	return nil
}

func (t *NotificationTracker) Stop() error {
	return t.scheduler.Shutdown()
}
