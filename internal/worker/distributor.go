package worker

import (
	"context"
	"time"
	
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const (
	TaskSendNotification = "notification:send"
)

const (
	DefaultMaxRedeliveries = 3
	DefaultTaskTimeout     = 5 * time.Minute
)

/*
This file will contain the codes to create tasks and distributes them to the Redis queue.
*/

type TaskDistributor interface {
	DistributeTaskSendNotification(ctx context.Context, payload *PayloadSendNotification, opts ...asynq.Option) error
	EnqueueNotification(ctx context.Context, notificationID uuid.UUID, attempt int32, delay time.Duration) error
	Close() error
}

// taskEnqueuer is the part of *asynq.Client the distributor uses.
type taskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

type RedisTaskDistributor struct {
	client          taskEnqueuer // client sends tasks to redis queue.
	maxRedeliveries int
	timeout         time.Duration
}

type DistributorOption func(*RedisTaskDistributor)

// WithMaxRedeliveries bounds how many times asynq re-runs one attempt whose
// handler returned an error (crash, lost database). Delivery retries are
// scheduled as new tasks and are not counted here.
func WithMaxRedeliveries(n int) DistributorOption {
	return func(d *RedisTaskDistributor) {
		d.maxRedeliveries = n
	}
}

func WithTaskTimeout(timeout time.Duration) DistributorOption {
	return func(d *RedisTaskDistributor) {
		d.timeout = timeout
	}
}

func NewTaskDistributor(redisOpt asynq.RedisClientOpt, opts ...DistributorOption) TaskDistributor {
	return newTaskDistributor(asynq.NewClient(redisOpt), opts...)
}

func newTaskDistributor(client taskEnqueuer, opts ...DistributorOption) *RedisTaskDistributor {
	distributor := &RedisTaskDistributor{
		client:          client,
		maxRedeliveries: DefaultMaxRedeliveries,
		timeout:         DefaultTaskTimeout,
	}
	
	for _, opt := range opts {
		opt(distributor)
	}
	return distributor
}

func (distributor *RedisTaskDistributor) Close() error {
	return distributor.client.Close()
}

// QueueFor picks the queue of an attempt: first attempts jump ahead of retries.
func QueueFor(attempt int32) string {
	if attempt == 0 {
		return QueueCritical
	}
	
	return QueueDefault
}
