package config

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the full service configuration
type Config struct {
	Service    Service    `envconfig:"SERVICE"`
	ClickHouse ClickHouse `envconfig:"CLICKHOUSE"`
	SQS        SQS        `envconfig:"SQS"`
	Consumer   Consumer   `envconfig:"CONSUMER"`
	Sessions   Sessions   `envconfig:"SESSIONS"`
	Dataset    Dataset    `envconfig:"DATASET"`
}

type Service struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	APIPort     string `envconfig:"API_PORT" default:"8080"`
	Host        string `envconfig:"HOST" default:"localhost:8080"`
}

type ClickHouse struct {
	Host            string `envconfig:"HOST" default:"localhost"`
	Port            string `envconfig:"PORT" default:"9000"`
	Database        string `envconfig:"DB" default:"default"`
	User            string `envconfig:"USER" default:""`
	Password        string `envconfig:"PASSWORD" default:""`
	UseTLS          bool   `envconfig:"USE_TLS" default:"false"`
	MaxOpenConns    int    `envconfig:"MAX_OPEN_CONNS" default:"5"`
	MaxIdleConns    int    `envconfig:"MAX_IDLE_CONNS" default:"2"`
	ConnMaxLifetime int    `envconfig:"CONN_MAX_LIFETIME_SEC" default:"3600"`
}

type SQS struct {
	Endpoint string `envconfig:"ENDPOINT"`
	QueueURL string `envconfig:"QUEUE_URL"`
	Region   string `envconfig:"REGION" default:"eu-central-1"`
}

type Consumer struct {
	BatchSizeMax    int    `envconfig:"BATCH_SIZE_MAX" default:"2000"`
	Workers         int    `envconfig:"WORKERS" default:"4"`
	HealthCheckPort string `envconfig:"HEALTH_CHECK_PORT" default:"8081"`
}

// Sessions holds the session synthesis parameters.
// SessionCount of 0 means no cap.
type Sessions struct {
	SessionCount               int `envconfig:"SESSION_COUNT" default:"30000"`
	MaxPosition                int `envconfig:"MAX_POSITION" default:"10"`
	MergePaymentsWithinSeconds int `envconfig:"MERGE_PAYMENTS_WITHIN_SECONDS" default:"600"`
}

// Dataset holds the train/val/test split shares
type Dataset struct {
	TrainShare float64 `envconfig:"TRAIN_SHARE" default:"0.7"`
	ValShare   float64 `envconfig:"VAL_SHARE" default:"0.15"`
	TestShare  float64 `envconfig:"TEST_SHARE" default:"0.15"`
}

// ErrInvalidConfig is returned by Validate for any rejected value
var ErrInvalidConfig = errors.New("invalid config")

const shareTolerance = 1e-9

// MaxMergePaymentsWithinSeconds is the largest window that still fits a time.Duration
const MaxMergePaymentsWithinSeconds = math.MaxInt64 / int64(time.Second)

// Load reads .env files if present and then the process environment
func Load() (*Config, error) {
	_ = godotenv.Load(".env", ".env.local")

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects configurations that must never reach a generation run
func (c *Config) Validate() error {
	if err := c.Sessions.Validate(); err != nil {
		return err
	}
	if err := c.Dataset.Validate(); err != nil {
		return err
	}
	if c.Consumer.BatchSizeMax <= 0 {
		return fmt.Errorf("%w: CONSUMER_BATCH_SIZE_MAX must be positive, got %d", ErrInvalidConfig, c.Consumer.BatchSizeMax)
	}
	if c.Consumer.Workers <= 0 {
		return fmt.Errorf("%w: CONSUMER_WORKERS must be positive, got %d", ErrInvalidConfig, c.Consumer.Workers)
	}
	return nil
}

func (s Sessions) Validate() error {
	if s.SessionCount < 0 {
		return fmt.Errorf("%w: session_count must not be negative, got %d", ErrInvalidConfig, s.SessionCount)
	}
	if s.MaxPosition < 0 {
		return fmt.Errorf("%w: max_position must not be negative, got %d", ErrInvalidConfig, s.MaxPosition)
	}
	if s.MergePaymentsWithinSeconds < 0 {
		return fmt.Errorf("%w: merge_payments_within_seconds must not be negative, got %d", ErrInvalidConfig, s.MergePaymentsWithinSeconds)
	}
	if int64(s.MergePaymentsWithinSeconds) > MaxMergePaymentsWithinSeconds {
		return fmt.Errorf("%w: merge_payments_within_seconds must not exceed %d, got %d", ErrInvalidConfig, MaxMergePaymentsWithinSeconds, s.MergePaymentsWithinSeconds)
	}
	return nil
}

func (d Dataset) Validate() error {
	if d.TrainShare < 0 || d.ValShare < 0 || d.TestShare < 0 {
		return fmt.Errorf("%w: shares must not be negative", ErrInvalidConfig)
	}
	sum := d.TrainShare + d.ValShare + d.TestShare
	if math.Abs(sum-1) > shareTolerance {
		return fmt.Errorf("%w: shares must sum up to 1, got %g", ErrInvalidConfig, sum)
	}
	return nil
}
