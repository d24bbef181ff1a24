package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig `envPrefix:"DB_"`
	Auth     AuthConfig
	Kafka    KafkaConfig    `envPrefix:"KAFKA_"`
	Redis    RedisConfig    `envPrefix:"REDIS_"`
	Campaign CampaignConfig `envPrefix:"CAMPAIGN_"`
	Server   ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host          string `env:"HOST,required,notEmpty"`
	Username      string `env:"USERNAME,required,notEmpty"`
	Password      string `env:"PASSWORD,required,notEmpty"`
	Name          string `env:"NAME,required,notEmpty"`
	SSLMode       string `env:"SSLMODE" envDefault:"disable"`
	RunMigrations bool   `env:"RUN_MIGRATIONS" envDefault:"false"`
}

// AuthConfig holds authentication-related configuration
type AuthConfig struct {
	JWTSecret string `env:"JWT_SECRET,required,notEmpty"`
}

// KafkaConfig holds lifecycle event streaming configuration.
// An empty broker list disables event publishing.
type KafkaConfig struct {
	Brokers string `env:"BROKERS"`
	Topic   string `env:"TOPIC" envDefault:"campaign-events"`
}

// RedisConfig holds the settings for the start-serialization lock
type RedisConfig struct {
	Enabled  bool   `env:"ENABLED" envDefault:"false"`
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     int    `env:"PORT" envDefault:"6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

// CampaignConfig holds orchestration tuning knobs
type CampaignConfig struct {
	StartLockTTL time.Duration `env:"START_LOCK_TTL" envDefault:"30s"`
	// RateLimitRPM caps requests per customer per minute when Redis is enabled. 0 disables it.
	RateLimitRPM int `env:"RATE_LIMIT_RPM" envDefault:"120"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port      int    `env:"SERVER_PORT" envDefault:"8080"`
	WebAppURI string `env:"WEBAPP_URI"`
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	return Parse()
}

// Parse reads the configuration from the process environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		var aggErr env.AggregateError
		if errors.As(err, &aggErr) {
			return nil, fmt.Errorf("invalid configuration: %w: %w", ErrEmptyEnvironmentVariable, err)
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		c.Username, c.Password, c.Host, c.Name, c.SSLMode)
}

// BrokerList splits the comma separated broker setting
func (c *KafkaConfig) BrokerList() []string {
	var brokers []string
	for _, b := range strings.Split(c.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// Enabled reports whether any broker is configured
func (c *KafkaConfig) Enabled() bool {
	return len(c.BrokerList()) > 0
}

// Addr returns the redis host:port pair
func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
