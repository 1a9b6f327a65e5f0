package sms

import (
	"context"
	"errors"
	"fmt"
	
	"github.com/bwmarrin/discordgo"
	db "github.com/katatrina/notification-service/internal/db/sqlc"
	"github.com/katatrina/notification-service/internal/notification"
	"github.com/rs/zerolog/log"
)

type channelMessenger interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// DiscordSender relays SMS messages to a Discord channel instead of a phone
// network. Used in staging where no gateway contract exists.
type DiscordSender struct {
	session   channelMessenger
	channelID string
}

func NewDiscordSender(botToken, channelID string) (*DiscordSender, error) {
	if channelID == "" {
		return nil, fmt.Errorf("discord channel id is required")
	}
	
	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	
	return &DiscordSender{
		session:   session,
		channelID: channelID,
	}, nil
}

func (sender *DiscordSender) Deliver(ctx context.Context, n db.Notification) error {
	to, err := recipient(n)
	if err != nil {
		return err
	}
	
	content := fmt.Sprintf("SMS to %s | %s", to, n.Message)
	if _, err = sender.session.ChannelMessageSend(sender.channelID, content, discordgo.WithContext(ctx)); err != nil {
		err = fmt.Errorf("failed to relay sms to discord: %w", err)
		
		var restErr *discordgo.RESTError
		if errors.As(err, &restErr) && restErr.Response != nil && !isRetryableStatus(restErr.Response.StatusCode) {
			return notification.Permanent(err)
		}
		return err
	}
	
	log.Info().Str("notification_id", n.ID.String()).Str("channel_id", sender.channelID).Msg("sms relayed to discord")
	return nil
}
