package util

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	
	path := filepath.Join(t.TempDir(), "app.env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfigFile(t, "DATABASE_URL=postgres://localhost/notifications\nREDIS_SERVER_ADDRESS=localhost:6379\n")
	
	config, err := LoadConfig(path)
	require.NoError(t, err)
	
	assert.Equal(t, "postgres://localhost/notifications", config.DatabaseURL)
	assert.Equal(t, "0.0.0.0:8083", config.HTTPServerAddress)
	assert.Equal(t, []string{"http://localhost:3000"}, config.AllowedOrigins)
	assert.EqualValues(t, 3, config.NotificationMaxRetries)
	assert.Equal(t, 60*time.Second, config.NotificationRetryBaseDelay)
	assert.Equal(t, 5*time.Minute, config.TaskTimeout)
	assert.Equal(t, 10*time.Minute, config.StalePendingAfter)
	assert.Equal(t, EmailDriverSMTP, config.EmailDriver)
	assert.Equal(t, "localhost", config.SMTPHost)
	assert.Equal(t, 1025, config.SMTPPort)
	assert.Equal(t, "noreply@devsecops.local", config.SMTPFrom)
	assert.Equal(t, "reject", config.MissingRecipientPolicy)
	assert.Empty(t, config.SMSDriver)
	assert.Empty(t, config.PushDriver)
	assert.Equal(t, "notifications", config.AMQPExchange)
}

func TestLoadConfigEnvironmentOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "DATABASE_URL=postgres://file/db\nREDIS_SERVER_ADDRESS=localhost:6379\nSMTP_PORT=2525\n")
	t.Setenv("DATABASE_URL", "postgres://env/db")
	t.Setenv("NOTIFICATION_RETRY_BASE_DELAY", "2s")
	
	config, err := LoadConfig(path)
	require.NoError(t, err)
	
	assert.Equal(t, "postgres://env/db", config.DatabaseURL)
	assert.Equal(t, 2525, config.SMTPPort)
	assert.Equal(t, 2*time.Second, config.NotificationRetryBaseDelay)
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/db")
	t.Setenv("REDIS_SERVER_ADDRESS", "redis:6379")
	
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "redis:6379", config.RedisServerAddress)
}

func TestValidateConfig(t *testing.T) {
	valid := func() Config {
		return Config{
			DatabaseURL:                "postgres://localhost/db",
			RedisServerAddress:         "localhost:6379",
			NotificationMaxRetries:     3,
			NotificationRetryBaseDelay: time.Minute,
			EmailDriver:                EmailDriverSMTP,
			SMTPHost:                   "localhost",
			SMTPFrom:                   "noreply@example.com",
		}
	}
	
	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "OK", mutate: func(c *Config) {}},
		{name: "MissingDatabase", mutate: func(c *Config) { c.DatabaseURL = "" }, wantErr: "DATABASE_URL"},
		{name: "MissingRedis", mutate: func(c *Config) { c.RedisServerAddress = "" }, wantErr: "REDIS_SERVER_ADDRESS"},
		{name: "NegativeRetries", mutate: func(c *Config) { c.NotificationMaxRetries = -1 }, wantErr: "NOTIFICATION_MAX_RETRIES"},
		{name: "UnknownEmailDriver", mutate: func(c *Config) { c.EmailDriver = "sendgrid" }, wantErr: "EMAIL_DRIVER"},
		{
			name: "PostmarkWithoutToken",
			mutate: func(c *Config) {
				c.EmailDriver = EmailDriverPostmark
			},
			wantErr: "POSTMARK_SERVER_TOKEN",
		},
		{
			name: "GatewayWithoutURL",
			mutate: func(c *Config) {
				c.SMSDriver = SMSDriverGateway
			},
			wantErr: "SMS_GATEWAY_URL",
		},
		{
			name: "DiscordConfigured",
			mutate: func(c *Config) {
				c.SMSDriver = SMSDriverDiscord
				c.DiscordBotToken = "token"
				c.DiscordChannelID = "123"
			},
		},
		{
			name: "FCMWithoutCredentials",
			mutate: func(c *Config) {
				c.PushDriver = PushDriverFCM
			},
			wantErr: "FIREBASE_CREDENTIALS_FILE",
		},
		{name: "InvalidFrom", mutate: func(c *Config) { c.SMTPFrom = "noreply" }, wantErr: "SMTP_FROM"},
		{name: "InvalidFallback", mutate: func(c *Config) { c.EmailFallbackAddress = "ops at example" }, wantErr: "EMAIL_FALLBACK_ADDRESS"},
		{name: "UnknownPushDriver", mutate: func(c *Config) { c.PushDriver = "apns" }, wantErr: "PUSH_DRIVER"},
	}
	
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config := valid()
			tc.mutate(&config)
			
			err := validateConfig(config)
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
