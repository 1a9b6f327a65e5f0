package worker

import (
	"context"
	
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

/*
 This file contains code that will pick up the tasks from the Redis queue and process them.
*/

const (
	QueueCritical = "critical"
	QueueDefault  = "default"
)

const DefaultConcurrency = 10

// NotificationHandler runs one delivery attempt.
type NotificationHandler interface {
	Process(ctx context.Context, notificationID uuid.UUID, attempt int32) error
}

type TaskProcessor interface {
	Start() error
	Shutdown()
}

type RedisTaskProcessor struct {
	server  *asynq.Server
	handler NotificationHandler
}

func NewRedisTaskProcessor(redisOpt asynq.RedisClientOpt, handler NotificationHandler, concurrency int) *RedisTaskProcessor {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	
	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: concurrency,
			Queues: map[string]int{
				QueueCritical: 10,
				QueueDefault:  5,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				retried, _ := asynq.GetRetryCount(ctx)
				maxRetry, _ := asynq.GetMaxRetry(ctx)
				log.Error().Err(err).Str("type", task.Type()).
					Bytes("payload", task.Payload()).
					Int("retried", retried).
					Int("max_retry", maxRetry).
					Msg("process task failed")
			}),
			Logger: NewLogger(),
		},
	)
	
	return &RedisTaskProcessor{
		server:  server,
		handler: handler,
	}
}

// Start registers the task handlers for the mux, attaches the mux to the asynq server, and starts the server.
func (processor *RedisTaskProcessor) Start() error {
	return processor.server.Start(processor.mux())
}

// Shutdown stops fetching new tasks and waits for active ones up to the
// server's shutdown timeout.
func (processor *RedisTaskProcessor) Shutdown() {
	processor.server.Shutdown()
}

func (processor *RedisTaskProcessor) mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	
	mux.HandleFunc(TaskSendNotification, processor.ProcessTaskSendNotification)
	
	return mux
}
