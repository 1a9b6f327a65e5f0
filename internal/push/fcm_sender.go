package push

import (
	"context"
	"fmt"
	
	"firebase.google.com/go/v4/messaging"
	db "github.com/katatrina/notification-service/internal/db/sqlc"
	"github.com/katatrina/notification-service/internal/notification"
	"github.com/rs/zerolog/log"
)

const RecipientField = "device_token"

type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// FCMSender delivers the push channel through Firebase Cloud Messaging and
// optionally mirrors each delivered notification into a Firestore inbox.
type FCMSender struct {
	client messageSender
	inbox  Inbox
}

type FCMOption func(*FCMSender)

func WithInbox(inbox Inbox) FCMOption {
	return func(s *FCMSender) {
		s.inbox = inbox
	}
}

func NewFCMSender(client *messaging.Client, opts ...FCMOption) *FCMSender {
	return newFCMSender(client, opts...)
}

func newFCMSender(client messageSender, opts ...FCMOption) *FCMSender {
	sender := &FCMSender{client: client}
	for _, opt := range opts {
		opt(sender)
	}
	return sender
}

func buildMessage(token string, n db.Notification) *messaging.Message {
	return &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: n.SubjectOr(""),
			Body:  n.Message,
		},
		Data: map[string]string{
			"notification_id": n.ID.String(),
			"type":            n.Type,
		},
	}
}

func (sender *FCMSender) Deliver(ctx context.Context, n db.Notification) error {
	token, err := notification.RecipientPolicy{}.Resolve(n, RecipientField)
	if err != nil {
		return err
	}
	
	messageID, err := sender.client.Send(ctx, buildMessage(token, n))
	if err != nil {
		permanent := messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err)
		err = fmt.Errorf("failed to send push notification: %w", err)
		if permanent {
			return notification.Permanent(err)
		}
		return err
	}
	
	log.Info().Str("notification_id", n.ID.String()).Str("message_id", messageID).Msg("push notification sent")
	
	if sender.inbox != nil {
		if err = sender.inbox.Mirror(ctx, n); err != nil {
			log.Warn().Err(err).Str("notification_id", n.ID.String()).Msg("failed to mirror notification to inbox")
		}
	}
	
	return nil
}
