// SPDX-License-Identifier: MIT

// Package logging builds the zap loggers used across the module.
// Components take a *zap.Logger through their options and default to zap.NewNop.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environment names accepted by New.
const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

// Config selects the logger flavour.
type Config struct {
	// Environment is "production" (JSON, sampled) or anything else (console, colored).
	Environment string `toml:"environment" yaml:"environment" validate:"omitempty,oneof=production development"`
	// Level overrides the environment default ("debug", "info", "warn", "error").
	Level string `toml:"level" yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// New builds a logger for cfg.
// Production: JSON encoder, info level, sampling. Development: console
// encoder, debug level, capital colored levels.
func New(cfg Config) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.Environment == EnvProduction {
		zc = zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		zc.Sampling = &zap.SamplingConfig{Initial: 100, Thereafter: 100}
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	if cfg.Level != "" {
		lvl, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("logging: level %q: %w", cfg.Level, err)
		}
		zc.Level = zap.NewAtomicLevelAt(lvl)
	}
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build(zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}

	return l
}
