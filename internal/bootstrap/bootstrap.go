package bootstrap

import (
	"campaign-server/internal/config"
	"campaign-server/internal/migrations"
	"campaign-server/internal/observability"
	"campaign-server/internal/store"
	"context"
	"fmt"

	authHandler "campaign-server/internal/auth/handler"
	authProcessor "campaign-server/internal/auth/processor"
	"campaign-server/internal/campaign/conflict"
	campaignHandler "campaign-server/internal/campaign/handler"
	campaignProcessor "campaign-server/internal/campaign/processor"
	"campaign-server/internal/campaign/startlock"
	kafkaClient "campaign-server/internal/clients/kafka"
	redisClient "campaign-server/internal/clients/redis"
	"campaign-server/internal/events"
	"campaign-server/internal/ratelimit"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	AuthHandler     authHandler.Handler
	CampaignHandler campaignHandler.Handler

	// Middleware
	RateLimiter *ratelimit.Service

	// Clients (for cleanup)
	KafkaProducer *kafkaClient.Producer
	RedisClient   *redisClient.Client
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	connectionString := cfg.Database.ConnectionString()
	if cfg.Database.RunMigrations {
		if err := migrations.Migrate(connectionString); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		logger.Info(ctx, "database migrations applied")
	}

	var err error
	deps.Store, err = store.New(connectionString, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	deps.RedisClient, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		deps.Cleanup()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	if !deps.RedisClient.IsEnabled() {
		logger.Warn(ctx, "redis disabled, campaign starts rely on database locks only")
	}

	// A nil *Producer must not reach the publisher as a non-nil interface.
	var producer events.EventProducer
	if cfg.Kafka.Enabled() {
		deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: cfg.Kafka.BrokerList(),
			Topic:   cfg.Kafka.Topic,
		}, logger)
		producer = deps.KafkaProducer
	} else {
		logger.Warn(ctx, "kafka brokers not configured, campaign events are dropped")
	}
	publisher := events.NewPublisher(producer, logger)

	authProc := authProcessor.New(cfg.Auth.JWTSecret, logger)
	deps.AuthHandler = authHandler.New(&authProc, logger)

	detector := conflict.New(&deps.Store, logger)
	locker := startlock.New(deps.RedisClient, cfg.Campaign.StartLockTTL, logger)
	campaignProc := campaignProcessor.New(
		&deps.Store,
		&deps.Store,
		&deps.Store,
		detector,
		publisher,
		locker,
		logger,
	)
	deps.CampaignHandler = campaignHandler.New(&campaignProc, logger)

	deps.RateLimiter = ratelimit.NewService(deps.RedisClient, cfg.Campaign.RateLimitRPM, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close kafka producer", err)
		}
	}
	if d.RedisClient != nil {
		if err := d.RedisClient.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close redis client", err)
		}
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close database", err)
	}
}
