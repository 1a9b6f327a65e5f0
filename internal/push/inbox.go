package push

import (
	"context"
	"fmt"
	
	"cloud.google.com/go/firestore"
	db "github.com/katatrina/notification-service/internal/db/sqlc"
)

const inboxCollection = "notifications"

// Inbox keeps a client-readable copy of delivered notifications.
type Inbox interface {
	Mirror(ctx context.Context, n db.Notification) error
}

type FirestoreInbox struct {
	client *firestore.Client
}

func NewFirestoreInbox(client *firestore.Client) *FirestoreInbox {
	return &FirestoreInbox{client: client}
}

// inboxDocument is keyed by notification id, so a redelivered task
// overwrites the same document.
func inboxDocument(n db.Notification) map[string]interface{} {
	return map[string]interface{}{
		"recipientID": n.UserID,
		"title":       n.SubjectOr(""),
		"message":     n.Message,
		"type":        n.Type,
		"channel":     n.Channel,
		"isRead":      n.ReadAt != nil,
		"createdAt":   n.CreatedAt,
	}
}

func (inbox *FirestoreInbox) Mirror(ctx context.Context, n db.Notification) error {
	_, err := inbox.client.Collection(inboxCollection).Doc(n.ID.String()).Set(ctx, inboxDocument(n))
	if err != nil {
		return fmt.Errorf("failed to write inbox document: %w", err)
	}
	
	return nil
}
