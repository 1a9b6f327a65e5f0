package mailer

import (
	"context"
	"errors"
	"fmt"
	
	db "github.com/katatrina/notification-service/internal/db/sqlc"
	"github.com/katatrina/notification-service/internal/notification"
	"github.com/mrz1836/postmark"
	"github.com/rs/zerolog/log"
)

// Postmark API error codes that no retry can fix.
const (
	postmarkInvalidEmailRequest = 300
	postmarkInactiveRecipient   = 406
)

type PostmarkConfig struct {
	ServerToken  string
	AccountToken string
	From         string
	BaseURL      string // Overrides the API endpoint, for tests
}

// PostmarkSender delivers the email channel through the Postmark HTTP API.
type PostmarkSender struct {
	client     *postmark.Client
	from       string
	recipients notification.RecipientPolicy
}

func NewPostmarkSender(config PostmarkConfig, recipients notification.RecipientPolicy) (*PostmarkSender, error) {
	if config.ServerToken == "" {
		return nil, fmt.Errorf("postmark server token is required")
	}
	
	client := postmark.NewClient(config.ServerToken, config.AccountToken)
	if config.BaseURL != "" {
		client.BaseURL = config.BaseURL
	}
	
	return &PostmarkSender{
		client:     client,
		from:       config.From,
		recipients: recipients,
	}, nil
}

// postmarkErrorCode extracts the API error code from either a 200 response
// body or a non-2xx APIError.
func postmarkErrorCode(resp postmark.EmailResponse, err error) int64 {
	if resp.ErrorCode != 0 {
		return resp.ErrorCode
	}
	
	var apiErr postmark.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode
	}
	
	return 0
}

func (sender *PostmarkSender) Deliver(ctx context.Context, n db.Notification) error {
	envelope, err := NewEnvelope(sender.from, sender.recipients, n)
	if err != nil {
		return err
	}
	
	resp, err := sender.client.SendEmail(ctx, postmark.Email{
		From:     envelope.From,
		To:       envelope.To,
		Subject:  envelope.Subject,
		TextBody: envelope.Body,
		Tag:      n.Type,
		Metadata: map[string]string{
			"notification_id": n.ID.String(),
		},
	})
	if code := postmarkErrorCode(resp, err); code != 0 {
		if err == nil {
			err = errors.New(resp.Message)
		}
		err = fmt.Errorf("postmark error: %d - %w", code, err)
		if code == postmarkInvalidEmailRequest || code == postmarkInactiveRecipient {
			return notification.Permanent(err)
		}
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	
	log.Info().Str("notification_id", n.ID.String()).Str("message_id", resp.MessageID).Msg("email sent")
	return nil
}
