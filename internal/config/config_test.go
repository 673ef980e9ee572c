package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Service:    Service{Environment: "test", APIPort: "8080", Host: "localhost:8080"},
		SQS:        SQS{QueueURL: "http://localhost:9324/queue/runs", Region: "eu-central-1"},
		ClickHouse: ClickHouse{Host: "localhost", Port: "9000", Database: "attribution"},
		Valkey:     Valkey{Host: "localhost", Port: "6379", IdempotencyTTLSec: 60},
		Worker: Worker{
			HealthCheckPort:    "8081",
			ReceiveMaxMessages: 10,
			ReceiveWaitTimeSec: 20,
			QueueBufferSize:    100,
		},
		Attribution: Attribution{
			HalfLifeDays:        7,
			PositionFirstWeight: 0.40,
			PositionLastWeight:  0.40,
			MarkovMaxIterations: 1000,
			MarkovTolerance:     1e-6,
		},
		Scoring: Scoring{
			EngagementWeight:     0.25,
			AuthenticityWeight:   0.25,
			ConversionWeight:     0.30,
			CostEfficiencyWeight: 0.15,
			BrandAlignmentWeight: 0.05,
			HighThreshold:        70,
			MediumThreshold:      40,
			DefaultAlignment:     75,
		},
	}
}

func TestConfig_Validate_Valid(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestConfig_Validate_WeightsMustSumToOne(t *testing.T) {
	cfg := validConfig()
	cfg.Scoring.ConversionWeight = 0.50

	err := cfg.Validate()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must sum to 1")
}

func TestConfig_Validate_ThresholdOrdering(t *testing.T) {
	cfg := validConfig()
	cfg.Scoring.MediumThreshold = 80

	err := cfg.Validate()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "scoring thresholds")
}

func TestConfig_Validate_ReceiveMaxMessagesWithinSQSLimit(t *testing.T) {
	cfg := validConfig()
	cfg.Worker.ReceiveMaxMessages = 11

	assert.Error(t, cfg.Validate())

	cfg.Worker.ReceiveMaxMessages = 0
	assert.Error(t, cfg.Validate())
}

func TestConfig_Validate_HalfLifeMustBePositive(t *testing.T) {
	cfg := validConfig()
	cfg.Attribution.HalfLifeDays = 0

	assert.Error(t, cfg.Validate())
}

func TestConfig_Validate_PositionWeightsLeaveInteriorRoom(t *testing.T) {
	cfg := validConfig()
	cfg.Attribution.PositionFirstWeight = 0.6
	cfg.Attribution.PositionLastWeight = 0.5

	err := cfg.Validate()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "position weights")
}
