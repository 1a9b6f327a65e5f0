package notificationtracking

import (
	"context"
	"errors"
	
	"github.com/dustin/go-humanize"
	"github.com/hibiken/asynq"
	db "github.com/katatrina/notification-service/internal/db/sqlc"
	"github.com/katatrina/notification-service/internal/worker"
	"github.com/rs/zerolog/log"
)

// requeueStalePending returns how many attempts were scheduled again.
func (t *NotificationTracker) requeueStalePending(ctx context.Context) int {
	stale, err := t.store.ListStalePendingNotifications(ctx, db.ListStalePendingNotificationsParams{
		UpdatedBefore: t.now().Add(-t.staleAfter),
		MaxResults:    t.batchSize,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to list stale pending notifications")
		return 0
	}
	
	requeued := 0
	for _, n := range stale {
		if t.requeueIfLost(ctx, n) {
			requeued++
		}
	}
	
	if len(stale) > 0 {
		log.Info().Int("stale", len(stale)).Int("requeued", requeued).Msg("stale pending notifications checked")
	}
	return requeued
}

func (t *NotificationTracker) requeueIfLost(ctx context.Context, n db.Notification) bool {
	taskID := worker.SendNotificationTaskID(n.ID, n.RetryCount)
	queue := worker.QueueFor(n.RetryCount)
	logger := log.With().
		Str("notification_id", n.ID.String()).
		Str("task_id", taskID).
		Str("pending_since", humanize.Time(n.UpdatedAt)).
		Logger()
	
	info, err := t.inspector.GetTaskInfo(ctx, queue, taskID)
	switch {
	case errors.Is(err, asynq.ErrTaskNotFound), errors.Is(err, asynq.ErrQueueNotFound):
		// Lost between commit and enqueue.
	case err != nil:
		logger.Error().Err(err).Msg("failed to inspect task")
		return false
	case info.State == asynq.TaskStateArchived || info.State == asynq.TaskStateCompleted:
		// The id is still taken; free it before scheduling the attempt again.
		if err = t.inspector.DeleteTask(ctx, queue, taskID); err != nil {
			logger.Error().Err(err).Str("state", info.State.String()).Msg("failed to delete dead task")
			return false
		}
	default:
		return false
	}
	
	if err = t.queue.EnqueueNotification(ctx, n.ID, n.RetryCount, 0); err != nil {
		logger.Error().Err(err).Msg("failed to requeue stale notification")
		return false
	}
	
	logger.Warn().Int32("attempt", n.RetryCount).Msg("stale notification requeued")
	return true
}
