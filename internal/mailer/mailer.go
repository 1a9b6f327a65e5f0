package mailer

import (
	"strings"
	
	db "github.com/katatrina/notification-service/internal/db/sqlc"
	"github.com/katatrina/notification-service/internal/notification"
)

const (
	DefaultSubject = "Notification"
	RecipientField = "email"
)

// Envelope is what every email backend sends for a notification.
type Envelope struct {
	From    string
	To      string
	Subject string
	Body    string
}

// NewEnvelope resolves the recipient through policy and fills the defaults.
// A missing recipient is returned as a permanent error.
func NewEnvelope(from string, policy notification.RecipientPolicy, n db.Notification) (Envelope, error) {
	to, err := policy.Resolve(n, RecipientField)
	if err != nil {
		return Envelope{}, err
	}
	
	return Envelope{
		From:    from,
		To:      to,
		Subject: strings.TrimSpace(n.SubjectOr(DefaultSubject)),
		Body:    n.Message,
	}, nil
}
