package config

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Service holds process-level settings.
type Service struct {
	Environment string `envconfig:"SERVICE_ENVIRONMENT" required:"true"`
	APIPort     string `envconfig:"SERVICE_API_PORT" default:"8080"`
	Host        string `envconfig:"SERVICE_HOST" default:"localhost:8080"`
}

// SQS holds run-queue settings.
type SQS struct {
	Endpoint string `envconfig:"SQS_ENDPOINT"`
	QueueURL string `envconfig:"SQS_QUEUE_URL" required:"true"`
	Region   string `envconfig:"SQS_REGION" required:"true"`
}

// ClickHouse holds analytics-store settings.
type ClickHouse struct {
	Host            string `envconfig:"CLICKHOUSE_HOST" required:"true"`
	Port            string `envconfig:"CLICKHOUSE_PORT" required:"true"`
	Database        string `envconfig:"CLICKHOUSE_DB" required:"true"`
	User            string `envconfig:"CLICKHOUSE_USER" default:""`
	Password        string `envconfig:"CLICKHOUSE_PASSWORD" default:""`
	UseTLS          bool   `envconfig:"CLICKHOUSE_USE_TLS" default:"false"`
	MaxOpenConns    int    `envconfig:"CLICKHOUSE_MAX_OPEN_CONNS" default:"5"`
	MaxIdleConns    int    `envconfig:"CLICKHOUSE_MAX_IDLE_CONNS" default:"2"`
	ConnMaxLifetime int    `envconfig:"CLICKHOUSE_CONN_MAX_LIFETIME_SEC" default:"3600"`
}

// Valkey holds run-idempotency cache settings.
type Valkey struct {
	Host                string `envconfig:"VALKEY_HOST" required:"true"`
	Port                string `envconfig:"VALKEY_PORT" required:"true"`
	IdempotencyEnabled  bool   `envconfig:"VALKEY_IDEMPOTENCY_ENABLED" default:"true"`
	IdempotencyFailOpen bool   `envconfig:"VALKEY_IDEMPOTENCY_FAIL_OPEN" default:"true"`
	IdempotencyTTLSec   int    `envconfig:"VALKEY_IDEMPOTENCY_TTL_SEC" default:"86400"`
}

// Worker holds consumer settings.
type Worker struct {
	HealthCheckPort    string `envconfig:"WORKER_HEALTH_CHECK_PORT" default:"8081"`
	ReceiveMaxMessages int32  `envconfig:"WORKER_RECEIVE_MAX_MESSAGES" default:"10" validate:"gt=0,lte=10"`
	ReceiveWaitTimeSec int32  `envconfig:"WORKER_RECEIVE_WAIT_TIME_SEC" default:"20" validate:"gte=0,lte=20"`
	QueueBufferSize    int    `envconfig:"WORKER_QUEUE_BUFFER_SIZE" default:"100" validate:"gt=0"`
}

// Attribution holds the attribution-engine constants. Every value here is an
// explicit configuration so a bad deployment fails at startup, not mid-run.
type Attribution struct {
	HalfLifeDays        float64 `envconfig:"ATTRIBUTION_HALF_LIFE_DAYS" default:"7" validate:"gt=0"`
	PositionFirstWeight float64 `envconfig:"ATTRIBUTION_POSITION_FIRST_WEIGHT" default:"0.40" validate:"gt=0,lt=1"`
	PositionLastWeight  float64 `envconfig:"ATTRIBUTION_POSITION_LAST_WEIGHT" default:"0.40" validate:"gt=0,lt=1"`
	MarkovMaxIterations int     `envconfig:"ATTRIBUTION_MARKOV_MAX_ITERATIONS" default:"1000" validate:"gt=0"`
	MarkovTolerance     float64 `envconfig:"ATTRIBUTION_MARKOV_TOLERANCE" default:"1e-6" validate:"gt=0"`
}

// Scoring holds the scoring-engine weights and thresholds. The sub-score
// weights must sum to 1 and the segment boundaries must be ordered; both are
// enforced by Validate.
type Scoring struct {
	EngagementWeight     float64 `envconfig:"SCORING_ENGAGEMENT_WEIGHT" default:"0.25" validate:"gte=0,lte=1"`
	AuthenticityWeight   float64 `envconfig:"SCORING_AUTHENTICITY_WEIGHT" default:"0.25" validate:"gte=0,lte=1"`
	ConversionWeight     float64 `envconfig:"SCORING_CONVERSION_WEIGHT" default:"0.30" validate:"gte=0,lte=1"`
	CostEfficiencyWeight float64 `envconfig:"SCORING_COST_EFFICIENCY_WEIGHT" default:"0.15" validate:"gte=0,lte=1"`
	BrandAlignmentWeight float64 `envconfig:"SCORING_BRAND_ALIGNMENT_WEIGHT" default:"0.05" validate:"gte=0,lte=1"`
	HighThreshold        float64 `envconfig:"SCORING_HIGH_THRESHOLD" default:"70" validate:"gt=0,lte=100"`
	MediumThreshold      float64 `envconfig:"SCORING_MEDIUM_THRESHOLD" default:"40" validate:"gt=0,lte=100"`
	DefaultAlignment     float64 `envconfig:"SCORING_DEFAULT_ALIGNMENT" default:"75" validate:"gte=0,lte=100"`
}

// Config is the root configuration for both binaries.
type Config struct {
	Service     Service
	SQS         SQS
	ClickHouse  ClickHouse
	Valkey      Valkey
	Worker      Worker
	Attribution Attribution
	Scoring     Scoring
}

// ValidationError reports an invalid configuration. It is fatal at startup
// and aborts before any computation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads configuration from the environment (and a .env file if one is
// present) and validates it.
func Load() (*Config, error) {
	// Missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate enforces the cross-field constraints that struct tags cannot
// express: weight sets summing to 1 and ordered segment boundaries.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	weightSum := c.Scoring.EngagementWeight +
		c.Scoring.AuthenticityWeight +
		c.Scoring.ConversionWeight +
		c.Scoring.CostEfficiencyWeight +
		c.Scoring.BrandAlignmentWeight
	if math.Abs(weightSum-1.0) > 1e-9 {
		return &ValidationError{
			Field:  "scoring weights",
			Reason: fmt.Sprintf("must sum to 1, got %v", weightSum),
		}
	}

	if c.Scoring.MediumThreshold >= c.Scoring.HighThreshold {
		return &ValidationError{
			Field:  "scoring thresholds",
			Reason: fmt.Sprintf("medium threshold %v must be below high threshold %v", c.Scoring.MediumThreshold, c.Scoring.HighThreshold),
		}
	}

	positionSum := c.Attribution.PositionFirstWeight + c.Attribution.PositionLastWeight
	if positionSum >= 1.0 {
		return &ValidationError{
			Field:  "attribution position weights",
			Reason: fmt.Sprintf("first+last weights must leave room for interior touchpoints, got %v", positionSum),
		}
	}

	return nil
}
