// Package logger builds the zap logger shared by the API and the worker.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logger for the given environment. Production runs emit JSON;
// everything else gets the colored console encoder for local attribution
// runs. Caller annotations are always on so pipeline stages can be traced
// back to their source.
func New(environment string) (*zap.Logger, error) {
	var cfg zap.Config

	switch environment {
	case "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	cfg.EncoderConfig.CallerKey = "caller"
	cfg.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	return cfg.Build(zap.AddCaller())
}
