package notification

import (
	"context"
	"time"
	
	"github.com/google/uuid"
)

// TaskQueue schedules a delivery attempt for a notification. Implementations
// provide at-least-once execution; attempt is echoed back to Processor.Process.
type TaskQueue interface {
	EnqueueNotification(ctx context.Context, notificationID uuid.UUID, attempt int32, delay time.Duration) error
}

// Lease grants exclusive processing of one notification for a bounded time.
// acquired is false when another execution already holds it.
type Lease interface {
	Acquire(ctx context.Context, key string) (release func(), acquired bool, err error)
}
