package mailer

import (
	"context"
	"errors"
	"fmt"
	"time"
	
	db "github.com/katatrina/notification-service/internal/db/sqlc"
	"github.com/katatrina/notification-service/internal/notification"
	"github.com/rs/zerolog/log"
	"github.com/wneessen/go-mail"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// SMTPSender delivers the email channel over plain SMTP. A connection is
// opened per message.
type SMTPSender struct {
	client     *mail.Client
	from       string
	recipients notification.RecipientPolicy
}

func NewSMTPSender(config SMTPConfig, recipients notification.RecipientPolicy) (*SMTPSender, error) {
	opts := []mail.Option{
		mail.WithPort(config.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if config.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(config.Timeout))
	}
	
	// Authenticate only when both credentials are present.
	if config.Username != "" && config.Password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(config.Username),
			mail.WithPassword(config.Password),
		)
	}
	
	client, err := mail.NewClient(config.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}
	
	return &SMTPSender{
		client:     client,
		from:       config.From,
		recipients: recipients,
	}, nil
}

// buildMessage turns an envelope into a plain-text message. Address errors
// are permanent.
func buildMessage(envelope Envelope) (*mail.Msg, error) {
	msg := mail.NewMsg()
	
	if err := msg.From(envelope.From); err != nil {
		return nil, notification.Permanent(fmt.Errorf("failed to set From address: %w", err))
	}
	
	if err := msg.To(envelope.To); err != nil {
		return nil, notification.Permanent(fmt.Errorf("failed to set To address: %w", err))
	}
	
	msg.Subject(envelope.Subject)
	msg.SetDate()
	msg.SetMessageID()
	msg.SetBodyString(mail.TypeTextPlain, envelope.Body)
	
	return msg, nil
}

func (sender *SMTPSender) Deliver(ctx context.Context, n db.Notification) error {
	envelope, err := NewEnvelope(sender.from, sender.recipients, n)
	if err != nil {
		return err
	}
	
	msg, err := buildMessage(envelope)
	if err != nil {
		return err
	}
	
	if err = sender.client.DialAndSendWithContext(ctx, msg); err != nil {
		return classifySendError(err)
	}
	
	log.Info().Str("notification_id", n.ID.String()).Str("to", envelope.To).Msg("email sent")
	return nil
}

// classifySendError marks a permanent rejection of the recipient as fatal;
// everything else (dial, auth, temporary replies) may succeed later.
func classifySendError(err error) error {
	wrapped := fmt.Errorf("failed to send email: %w", err)
	
	var sendErr *mail.SendError
	if errors.As(err, &sendErr) && sendErr.Reason == mail.ErrSMTPRcptTo && !sendErr.IsTemp() {
		return notification.Permanent(wrapped)
	}
	
	return wrapped
}
