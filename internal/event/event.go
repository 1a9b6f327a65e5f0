package event

import (
	"context"
	"time"
	
	"github.com/google/uuid"
	db "github.com/katatrina/notification-service/internal/db/sqlc"
)

// Event is a notification lifecycle change published after the change is committed.
type Event struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	NotificationID string    `json:"notification_id"`
	UserID         string    `json:"user_id"`
	Channel        string    `json:"channel"`
	Status         string    `json:"status"`
	RetryCount     int32     `json:"retry_count"`
	ErrorMessage   *string   `json:"error_message,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

const (
	EventTypeSent           = "notification.sent"            // Delivered by its transport
	EventTypeRetryScheduled = "notification.retry_scheduled" // Failed transiently, another attempt is queued
	EventTypeFailed         = "notification.failed"          // Terminal failure
)

// Publisher delivers lifecycle events to interested consumers (analytics, audit).
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// FromNotification builds an event of the given type from the committed record.
func FromNotification(eventType string, notification db.Notification) Event {
	return Event{
		ID:             uuid.NewString(),
		Type:           eventType,
		NotificationID: notification.ID.String(),
		UserID:         notification.UserID,
		Channel:        notification.Channel,
		Status:         string(notification.Status),
		RetryCount:     notification.RetryCount,
		ErrorMessage:   notification.ErrorMessage,
		OccurredAt:     notification.UpdatedAt,
	}
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

func (NopPublisher) Close() error { return nil }
