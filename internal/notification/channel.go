package notification

const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
	ChannelPush  = "push"
)

// IsKnownChannel reports whether channel is one the service can deliver over.
func IsKnownChannel(channel string) bool {
	switch channel {
	case ChannelEmail, ChannelSMS, ChannelPush:
		return true
	default:
		return false
	}
}
