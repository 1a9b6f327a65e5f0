package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	
	firebase "firebase.google.com/go/v4"
	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/katatrina/notification-service/api"
	"github.com/katatrina/notification-service/internal/db/migration"
	db "github.com/katatrina/notification-service/internal/db/sqlc"
	"github.com/katatrina/notification-service/internal/event"
	"github.com/katatrina/notification-service/internal/lease"
	"github.com/katatrina/notification-service/internal/mailer"
	"github.com/katatrina/notification-service/internal/notification"
	notificationtracking "github.com/katatrina/notification-service/internal/notification_tracking"
	"github.com/katatrina/notification-service/internal/push"
	"github.com/katatrina/notification-service/internal/sms"
	"github.com/katatrina/notification-service/internal/util"
	"github.com/katatrina/notification-service/internal/worker"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

const shutdownTimeout = 30 * time.Second

//	@title			Notification Service API
//	@version		1.0.0
//	@description	Accepts notification requests and delivers them over email, SMS and push with bounded retries.

//	@host		localhost:8083
//	@BasePath	/api/v1
//	@schemes	http https

//	@securityDefinitions.apikey	accessToken
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.
func main() {
	config, err := util.LoadConfig("./app.env")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config file 😣")
	}
	
	setupLogger(config)
	log.Info().Msg("configurations loaded successfully ✅")
	
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	
	// Create connection pool
	connPool, err := pgxpool.New(ctx, config.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to validate db connection string 😣")
	}
	defer connPool.Close()
	
	if err = connPool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to db 😣")
	}
	log.Info().Msg("connected to db ✅")
	
	if err = migration.Up(ctx, connPool); err != nil {
		log.Fatal().Err(err).Msg("failed to run db migrations 😣")
	}
	log.Info().Msg("db migrations applied ✅")
	
	store := db.NewStore(connPool)
	
	redisDb := redis.NewClient(&redis.Options{
		Addr:     config.RedisServerAddress,
		Password: config.RedisPassword,
		DB:       0,
	})
	defer redisDb.Close()
	
	if err = redisDb.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis 😣")
	}
	log.Info().Msg("connected to redis ✅")
	
	redisOpt := asynq.RedisClientOpt{
		Addr:     config.RedisServerAddress,
		Password: config.RedisPassword,
	}
	
	taskDistributor := worker.NewTaskDistributor(
		redisOpt,
		worker.WithMaxRedeliveries(config.TaskMaxRedeliveries),
		worker.WithTaskTimeout(config.TaskTimeout),
	)
	defer taskDistributor.Close()
	
	taskInspector := worker.NewTaskInspector(redisOpt)
	defer taskInspector.Close()
	
	dispatcher, cleanup, err := newDispatcher(ctx, config)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure transports 😣")
	}
	defer cleanup()
	
	publisher := newPublisher(config)
	defer publisher.Close()
	
	processor := notification.NewProcessor(store, dispatcher, taskDistributor,
		notification.WithRetryPolicy(notification.RetryPolicy{
			MaxRetries: config.NotificationMaxRetries,
			BaseDelay:  config.NotificationRetryBaseDelay,
		}),
		notification.WithLease(lease.NewRedisLease(redisDb, lease.WithTTL(config.LeaseTTL))),
		notification.WithPublisher(publisher),
	)
	
	taskProcessor := worker.NewRedisTaskProcessor(redisOpt, processor, config.WorkerConcurrency)
	if err = taskProcessor.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start task processor 😣")
	}
	log.Info().Msg("task processor started ✅")
	
	tracker, err := notificationtracking.NewNotificationTracker(store, taskDistributor, taskInspector,
		notificationtracking.WithInterval(config.StaleSweepInterval),
		notificationtracking.WithStaleAfter(config.StalePendingAfter),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create notification tracker 😣")
	}
	
	if err = tracker.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start notification tracker 😣")
	}
	log.Info().Msg("notification tracker started ✅")
	
	runHTTPServer(ctx, &config, store, taskDistributor, redisDb)
	
	log.Info().Msg("shutting down workers...")
	if err = tracker.Stop(); err != nil {
		log.Error().Err(err).Msg("failed to stop notification tracker")
	}
	taskProcessor.Shutdown()
	log.Info().Msg("shutdown complete 👋")
}

func setupLogger(config util.Config) {
	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	
	if config.Environment == util.EnvironmentProduction {
		gin.SetMode(gin.ReleaseMode)
		return
	}
	
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

// newDispatcher registers a transport for every channel. A channel without a
// configured driver gets a transport that fails permanently.
func newDispatcher(ctx context.Context, config util.Config) (*notification.Dispatcher, func(), error) {
	var closers []func() error
	cleanup := func() {
		for _, closeFn := range closers {
			if err := closeFn(); err != nil {
				log.Warn().Err(err).Msg("failed to close transport")
			}
		}
	}
	
	recipients, err := notification.NewRecipientPolicy(config.MissingRecipientPolicy, config.EmailFallbackAddress)
	if err != nil {
		return nil, cleanup, err
	}
	
	dispatcher := notification.NewDispatcher()
	
	// Email
	switch config.EmailDriver {
	case util.EmailDriverPostmark:
		sender, err := mailer.NewPostmarkSender(mailer.PostmarkConfig{
			ServerToken:  config.PostmarkServerToken,
			AccountToken: config.PostmarkAccountToken,
			From:         config.SMTPFrom,
		}, recipients)
		if err != nil {
			return nil, cleanup, err
		}
		dispatcher.Register(notification.ChannelEmail, sender)
	default:
		sender, err := mailer.NewSMTPSender(mailer.SMTPConfig{
			Host:     config.SMTPHost,
			Port:     config.SMTPPort,
			Username: config.SMTPUser,
			Password: config.SMTPPassword,
			From:     config.SMTPFrom,
		}, recipients)
		if err != nil {
			return nil, cleanup, err
		}
		dispatcher.Register(notification.ChannelEmail, sender)
	}
	log.Info().Str("driver", config.EmailDriver).Msg("email transport configured ✅")
	
	// SMS
	switch config.SMSDriver {
	case util.SMSDriverGateway:
		sender, err := sms.NewGatewaySender(sms.GatewayConfig{
			BaseURL: config.SMSGatewayURL,
			APIKey:  config.SMSGatewayAPIKey,
			From:    config.SMSFrom,
		})
		if err != nil {
			return nil, cleanup, err
		}
		closers = append(closers, sender.Close)
		dispatcher.Register(notification.ChannelSMS, sender)
	case util.SMSDriverDiscord:
		sender, err := sms.NewDiscordSender(config.DiscordBotToken, config.DiscordChannelID)
		if err != nil {
			return nil, cleanup, err
		}
		dispatcher.Register(notification.ChannelSMS, sender)
	default:
		log.Warn().Msg("SMS_DRIVER is empty, sms notifications will fail")
		dispatcher.Register(notification.ChannelSMS, notification.Unconfigured(notification.ChannelSMS))
	}
	
	// Push
	switch config.PushDriver {
	case util.PushDriverFCM:
		app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(config.FirebaseCredentialsFile))
		if err != nil {
			return nil, cleanup, err
		}
		
		messagingClient, err := app.Messaging(ctx)
		if err != nil {
			return nil, cleanup, err
		}
		
		var opts []push.FCMOption
		if config.FirestoreInboxEnabled {
			firestoreClient, err := app.Firestore(ctx)
			if err != nil {
				return nil, cleanup, err
			}
			closers = append(closers, firestoreClient.Close)
			opts = append(opts, push.WithInbox(push.NewFirestoreInbox(firestoreClient)))
		}
		
		dispatcher.Register(notification.ChannelPush, push.NewFCMSender(messagingClient, opts...))
	default:
		log.Warn().Msg("PUSH_DRIVER is empty, push notifications will fail")
		dispatcher.Register(notification.ChannelPush, notification.Unconfigured(notification.ChannelPush))
	}
	
	return dispatcher, cleanup, nil
}

func newPublisher(config util.Config) event.Publisher {
	if config.AMQPURL == "" {
		return event.NopPublisher{}
	}
	
	publisher, err := event.NewRabbitMQPublisher(config.AMQPURL, config.AMQPExchange)
	if err != nil {
		// Events are informational; delivery keeps working without them.
		log.Error().Err(err).Msg("failed to connect to rabbitmq, lifecycle events disabled")
		return event.NopPublisher{}
	}
	
	log.Info().Str("exchange", config.AMQPExchange).Msg("connected to rabbitmq ✅")
	return publisher
}

func runHTTPServer(ctx context.Context, config *util.Config, store db.Store, taskQueue notification.TaskQueue, redisDb *redis.Client) {
	server, err := api.NewServer(store, taskQueue, config,
		api.WithHealthCheck("redis", func(ctx context.Context) error {
			return redisDb.Ping(ctx).Err()
		}),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create HTTP server 😣")
	}
	
	httpServer := &http.Server{
		Addr:              config.HTTPServerAddress,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	
	go func() {
		log.Info().Str("address", config.HTTPServerAddress).Msg("HTTP server listening ✅")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start HTTP server 😣")
		}
	}()
	
	<-ctx.Done()
	log.Info().Msg("shutting down HTTP server...")
	
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to shut down HTTP server gracefully")
	}
}
