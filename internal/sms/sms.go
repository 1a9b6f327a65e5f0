package sms

import (
	db "github.com/katatrina/notification-service/internal/db/sqlc"
	"github.com/katatrina/notification-service/internal/notification"
)

const RecipientField = "phone_number"

// recipient never falls back: a text to the wrong number cannot be recalled.
func recipient(n db.Notification) (string, error) {
	return notification.RecipientPolicy{}.Resolve(n, RecipientField)
}
