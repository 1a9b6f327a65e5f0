package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/katatrina/notification-service/internal/notification"
	"github.com/rs/zerolog/log"
)

// PayloadSendNotification identifies one delivery attempt. The notification
// itself is always reloaded from the database.
type PayloadSendNotification struct {
	NotificationID uuid.UUID `json:"notification_id"`
	Attempt        int32     `json:"attempt"`
}

// SendNotificationTaskID is unique per attempt so a duplicate enqueue of the
// same attempt collapses into one task.
func SendNotificationTaskID(notificationID uuid.UUID, attempt int32) string {
	return fmt.Sprintf("%s:%s:%d", TaskSendNotification, notificationID, attempt)
}

func (distributor *RedisTaskDistributor) DistributeTaskSendNotification(
	ctx context.Context,
	payload *PayloadSendNotification,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal task payload: %w", err)
	}
	
	taskID := SendNotificationTaskID(payload.NotificationID, payload.Attempt)
	defaults := []asynq.Option{
		asynq.Queue(QueueFor(payload.Attempt)),
		asynq.MaxRetry(distributor.maxRedeliveries),
		asynq.Timeout(distributor.timeout),
	}
	task := asynq.NewTask(TaskSendNotification, jsonPayload, append(append(defaults, opts...), asynq.TaskID(taskID))...)
	
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			log.Info().Str("task_id", taskID).Msg("task already scheduled")
			return nil
		}
		
		return fmt.Errorf("failed to enqueue task: %w", err)
	}
	
	log.Info().
		Str("type", task.Type()).
		Str("task_id", taskID).
		Str("queue", info.Queue).
		Int("max_retry", info.MaxRetry).
		Time("process_at", info.NextProcessAt).
		Msg("task enqueued")
	
	return nil
}

// EnqueueNotification implements notification.TaskQueue.
func (distributor *RedisTaskDistributor) EnqueueNotification(ctx context.Context, notificationID uuid.UUID, attempt int32, delay time.Duration) error {
	var opts []asynq.Option
	if delay > 0 {
		opts = append(opts, asynq.ProcessIn(delay))
	}
	
	return distributor.DistributeTaskSendNotification(ctx, &PayloadSendNotification{
		NotificationID: notificationID,
		Attempt:        attempt,
	}, opts...)
}

func (processor *RedisTaskProcessor) ProcessTaskSendNotification(
	ctx context.Context,
	task *asynq.Task,
) error {
	var payload PayloadSendNotification
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}
	
	if payload.NotificationID == uuid.Nil || payload.Attempt < 0 {
		return fmt.Errorf("invalid payload %s: %w", task.Payload(), asynq.SkipRetry)
	}
	
	err := processor.handler.Process(ctx, payload.NotificationID, payload.Attempt)
	if err != nil {
		// The failure is already committed; the stale sweeper schedules the retry.
		if errors.Is(err, notification.ErrEnqueue) {
			return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
		}
		
		return err
	}
	
	log.Info().Str("type", task.Type()).
		Str("notification_id", payload.NotificationID.String()).
		Int32("attempt", payload.Attempt).
		Msg("task processed")
	
	return nil
}
