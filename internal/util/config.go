package util

import (
	"errors"
	"fmt"
	"io/fs"
	"time"
	
	"github.com/katatrina/notification-service/internal/validator"
	"github.com/spf13/viper"
)

const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

const (
	EmailDriverSMTP     = "smtp"
	EmailDriverPostmark = "postmark"
	
	SMSDriverGateway = "gateway"
	SMSDriverDiscord = "discord"
	
	PushDriverFCM = "fcm"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Environment        string   `mapstructure:"ENVIRONMENT"`
	LogLevel           string   `mapstructure:"LOG_LEVEL"`
	HTTPServerAddress  string   `mapstructure:"HTTP_SERVER_ADDRESS"`
	AllowedOrigins     []string `mapstructure:"ALLOWED_ORIGINS"`
	DatabaseURL        string   `mapstructure:"DATABASE_URL"`
	RedisServerAddress string   `mapstructure:"REDIS_SERVER_ADDRESS"`
	RedisPassword      string   `mapstructure:"REDIS_PASSWORD"`
	TokenSecretKey     string   `mapstructure:"TOKEN_SECRET_KEY"`
	
	WorkerConcurrency          int           `mapstructure:"WORKER_CONCURRENCY"`
	NotificationMaxRetries     int32         `mapstructure:"NOTIFICATION_MAX_RETRIES"`
	NotificationRetryBaseDelay time.Duration `mapstructure:"NOTIFICATION_RETRY_BASE_DELAY"`
	TaskTimeout                time.Duration `mapstructure:"TASK_TIMEOUT"`
	TaskMaxRedeliveries        int           `mapstructure:"TASK_MAX_REDELIVERIES"`
	LeaseTTL                   time.Duration `mapstructure:"LEASE_TTL"`
	StalePendingAfter          time.Duration `mapstructure:"STALE_PENDING_AFTER"`
	StaleSweepInterval         time.Duration `mapstructure:"STALE_SWEEP_INTERVAL"`
	
	EmailDriver            string `mapstructure:"EMAIL_DRIVER"`
	SMTPHost               string `mapstructure:"SMTP_HOST"`
	SMTPPort               int    `mapstructure:"SMTP_PORT"`
	SMTPUser               string `mapstructure:"SMTP_USER"`
	SMTPPassword           string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom               string `mapstructure:"SMTP_FROM"`
	PostmarkServerToken    string `mapstructure:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken   string `mapstructure:"POSTMARK_ACCOUNT_TOKEN"`
	MissingRecipientPolicy string `mapstructure:"MISSING_RECIPIENT_POLICY"`
	EmailFallbackAddress   string `mapstructure:"EMAIL_FALLBACK_ADDRESS"`
	
	SMSDriver        string `mapstructure:"SMS_DRIVER"`
	SMSGatewayURL    string `mapstructure:"SMS_GATEWAY_URL"`
	SMSGatewayAPIKey string `mapstructure:"SMS_GATEWAY_API_KEY"`
	SMSFrom          string `mapstructure:"SMS_FROM"`
	DiscordBotToken  string `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordChannelID string `mapstructure:"DISCORD_CHANNEL_ID"`
	
	PushDriver              string `mapstructure:"PUSH_DRIVER"`
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	FirestoreInboxEnabled   bool   `mapstructure:"FIRESTORE_INBOX_ENABLED"`
	
	AMQPURL      string `mapstructure:"AMQP_URL"`
	AMQPExchange string `mapstructure:"AMQP_EXCHANGE"`
}

var defaults = map[string]any{
	"ENVIRONMENT":          EnvironmentDevelopment,
	"LOG_LEVEL":            "info",
	"HTTP_SERVER_ADDRESS":  "0.0.0.0:8083",
	"ALLOWED_ORIGINS":      []string{"http://localhost:3000"},
	"DATABASE_URL":         "",
	"REDIS_SERVER_ADDRESS": "",
	"REDIS_PASSWORD":       "",
	"TOKEN_SECRET_KEY":     "",
	
	"WORKER_CONCURRENCY":            10,
	"NOTIFICATION_MAX_RETRIES":      3,
	"NOTIFICATION_RETRY_BASE_DELAY": "60s",
	"TASK_TIMEOUT":                  "5m",
	"TASK_MAX_REDELIVERIES":         3,
	"LEASE_TTL":                     "5m",
	"STALE_PENDING_AFTER":           "10m",
	"STALE_SWEEP_INTERVAL":          "1m",
	
	"EMAIL_DRIVER":             EmailDriverSMTP,
	"SMTP_HOST":                "localhost",
	"SMTP_PORT":                1025,
	"SMTP_USER":                "",
	"SMTP_PASSWORD":            "",
	"SMTP_FROM":                "noreply@devsecops.local",
	"POSTMARK_SERVER_TOKEN":    "",
	"POSTMARK_ACCOUNT_TOKEN":   "",
	"MISSING_RECIPIENT_POLICY": "reject",
	"EMAIL_FALLBACK_ADDRESS":   "",
	
	"SMS_DRIVER":          "",
	"SMS_GATEWAY_URL":     "",
	"SMS_GATEWAY_API_KEY": "",
	"SMS_FROM":            "",
	"DISCORD_BOT_TOKEN":   "",
	"DISCORD_CHANNEL_ID":  "",
	
	"PUSH_DRIVER":               "",
	"FIREBASE_CREDENTIALS_FILE": "",
	"FIRESTORE_INBOX_ENABLED":   false,
	
	"AMQP_URL":      "",
	"AMQP_EXCHANGE": "notifications",
}

// LoadConfig reads configuration from file or environment variables.
// A missing file is not an error; every key can come from the environment.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	
	// Every key needs a default so AutomaticEnv can see it during Unmarshal.
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	
	// Prefer environment variables over config file
	v.AutomaticEnv()
	
	// Load config file
	v.SetConfigFile(path)
	if err = v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return config, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		err = nil
	}
	
	// Unmarshal config into struct
	err = v.UnmarshalExact(&config)
	if err != nil {
		return config, fmt.Errorf("failed to decode config: %w", err)
	}
	
	// Validate required configuration
	err = validateConfig(config)
	return
}

func validateConfig(config Config) error {
	if config.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if config.RedisServerAddress == "" {
		return fmt.Errorf("REDIS_SERVER_ADDRESS is required")
	}
	if config.NotificationMaxRetries < 0 {
		return fmt.Errorf("NOTIFICATION_MAX_RETRIES must not be negative")
	}
	if config.NotificationRetryBaseDelay <= 0 {
		return fmt.Errorf("NOTIFICATION_RETRY_BASE_DELAY must be positive")
	}
	
	switch config.EmailDriver {
	case EmailDriverSMTP:
		if config.SMTPHost == "" {
			return fmt.Errorf("SMTP_HOST is required for EMAIL_DRIVER=%s", config.EmailDriver)
		}
	case EmailDriverPostmark:
		if config.PostmarkServerToken == "" {
			return fmt.Errorf("POSTMARK_SERVER_TOKEN is required for EMAIL_DRIVER=%s", config.EmailDriver)
		}
	default:
		return fmt.Errorf("unknown EMAIL_DRIVER %q", config.EmailDriver)
	}
	if err := validator.ValidateEmail(config.SMTPFrom); err != nil {
		return fmt.Errorf("SMTP_FROM %w", err)
	}
	if config.EmailFallbackAddress != "" {
		if err := validator.ValidateEmail(config.EmailFallbackAddress); err != nil {
			return fmt.Errorf("EMAIL_FALLBACK_ADDRESS %w", err)
		}
	}
	
	switch config.SMSDriver {
	case "":
	case SMSDriverGateway:
		if config.SMSGatewayURL == "" {
			return fmt.Errorf("SMS_GATEWAY_URL is required for SMS_DRIVER=%s", config.SMSDriver)
		}
	case SMSDriverDiscord:
		if config.DiscordBotToken == "" || config.DiscordChannelID == "" {
			return fmt.Errorf("DISCORD_BOT_TOKEN and DISCORD_CHANNEL_ID are required for SMS_DRIVER=%s", config.SMSDriver)
		}
	default:
		return fmt.Errorf("unknown SMS_DRIVER %q", config.SMSDriver)
	}
	
	switch config.PushDriver {
	case "":
	case PushDriverFCM:
		if config.FirebaseCredentialsFile == "" {
			return fmt.Errorf("FIREBASE_CREDENTIALS_FILE is required for PUSH_DRIVER=%s", config.PushDriver)
		}
	default:
		return fmt.Errorf("unknown PUSH_DRIVER %q", config.PushDriver)
	}
	
	return nil
}
