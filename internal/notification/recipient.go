package notification

import (
	"fmt"
	"strings"
	
	db "github.com/katatrina/notification-service/internal/db/sqlc"
)

const (
	RecipientPolicyReject   = "reject"
	RecipientPolicyFallback = "fallback"
)

// RecipientPolicy decides what happens when a notification carries no
// destination for its channel. With an empty Fallback the delivery fails
// permanently instead of guessing a recipient.
type RecipientPolicy struct {
	Fallback string
}

// NewRecipientPolicy builds a policy from its configured mode.
func NewRecipientPolicy(mode, fallback string) (RecipientPolicy, error) {
	switch mode {
	case "", RecipientPolicyReject:
		return RecipientPolicy{}, nil
	case RecipientPolicyFallback:
		if strings.TrimSpace(fallback) == "" {
			return RecipientPolicy{}, fmt.Errorf("recipient policy %q requires a fallback address", mode)
		}
		return RecipientPolicy{Fallback: fallback}, nil
	default:
		return RecipientPolicy{}, fmt.Errorf("unknown recipient policy %q", mode)
	}
}

// Resolve returns data[field] or the fallback.
func (p RecipientPolicy) Resolve(notification db.Notification, field string) (string, error) {
	if v := strings.TrimSpace(notification.DataString(field)); v != "" {
		return v, nil
	}
	
	if p.Fallback != "" {
		return p.Fallback, nil
	}
	
	return "", fmt.Errorf("%w: data.%s is empty", ErrMissingRecipient, field)
}
