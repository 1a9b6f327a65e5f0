package db

import (
	"encoding/json"
	"fmt"
)

// IsTerminal reports whether the notification has reached sent or failed.
func (n Notification) IsTerminal() bool {
	return n.Status == NotificationStatusSent || n.Status == NotificationStatusFailed
}

// DataString returns data[key] as a string. Non-string scalars are formatted
// with %v; missing keys, nulls and malformed data yield "".
func (n Notification) DataString(key string) string {
	if len(n.Data) == 0 {
		return ""
	}
	
	var fields map[string]any
	if err := json.Unmarshal(n.Data, &fields); err != nil {
		return ""
	}
	
	switch v := fields[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case map[string]any, []any:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// SubjectOr returns the subject, or fallback when it is absent or empty.
func (n Notification) SubjectOr(fallback string) string {
	if n.Subject == nil || *n.Subject == "" {
		return fallback
	}
	
	return *n.Subject
}

// ChannelEnabled reports whether the user allows delivery over channel.
// Channels the preferences know nothing about are allowed.
func (p UserNotificationPreference) ChannelEnabled(channel string) bool {
	switch channel {
	case "email":
		return p.EmailEnabled
	case "sms":
		return p.SmsEnabled
	case "push":
		return p.PushEnabled
	default:
		return true
	}
}

func IsValidNotificationStatus(status string) error {
	switch NotificationStatus(status) {
	case NotificationStatusPending, NotificationStatusSent, NotificationStatusFailed:
		return nil
	default:
		return fmt.Errorf("invalid notification status: %s", status)
	}
}
