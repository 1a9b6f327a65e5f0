package sms

import (
	"context"
	"fmt"
	"net/http"
	"time"
	
	db "github.com/katatrina/notification-service/internal/db/sqlc"
	"github.com/katatrina/notification-service/internal/notification"
	"github.com/rs/zerolog/log"
	"resty.dev/v3"
)

const defaultGatewayTimeout = 10 * time.Second

type GatewayConfig struct {
	BaseURL string
	APIKey  string
	From    string
	Timeout time.Duration
}

type sendMessageRequest struct {
	To   string `json:"to"`
	From string `json:"from,omitempty"`
	Body string `json:"body"`
}

type sendMessageResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type gatewayError struct {
	Message string `json:"message"`
}

// GatewaySender posts SMS messages to an HTTP gateway.
type GatewaySender struct {
	client *resty.Client
	from   string
}

func NewGatewaySender(config GatewayConfig) (*GatewaySender, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("sms gateway url is required")
	}
	
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultGatewayTimeout
	}
	
	client := resty.New().
		SetBaseURL(config.BaseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	if config.APIKey != "" {
		client.SetAuthToken(config.APIKey)
	}
	
	return &GatewaySender{
		client: client,
		from:   config.From,
	}, nil
}

func (sender *GatewaySender) Close() error {
	return sender.client.Close()
}

func (sender *GatewaySender) Deliver(ctx context.Context, n db.Notification) error {
	to, err := recipient(n)
	if err != nil {
		return err
	}
	
	var result sendMessageResponse
	var failure gatewayError
	resp, err := sender.client.R().
		SetContext(ctx).
		SetBody(sendMessageRequest{To: to, From: sender.from, Body: n.Message}).
		SetResult(&result).
		SetError(&failure).
		Post("/messages")
	if err != nil {
		return fmt.Errorf("failed to call sms gateway: %w", err)
	}
	
	if resp.IsError() {
		err = fmt.Errorf("sms gateway returned status %d: %s", resp.StatusCode(), failure.Message)
		if isRetryableStatus(resp.StatusCode()) {
			return err
		}
		return notification.Permanent(err)
	}
	
	log.Info().Str("notification_id", n.ID.String()).Str("message_id", result.ID).Msg("sms sent")
	return nil
}

func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status == http.StatusRequestTimeout || status >= http.StatusInternalServerError
}
