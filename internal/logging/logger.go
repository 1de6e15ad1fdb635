// Package logging builds the zap logger from configuration.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/denisok6893-rgb/commstyle-assessment/internal/config"
)

// New builds a logger. verbose forces debug level. When cfg.File is empty,
// logs go to stderr unless interactive is set, in which case a no-op logger
// is returned so the terminal UI keeps stdout/stderr to itself.
func New(cfg config.LogConfig, verbose, interactive bool) (*zap.Logger, error) {
	if cfg.File == "" && interactive {
		return zap.NewNop(), nil
	}

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	if cfg.File != "" {
		zc.OutputPaths = []string{cfg.File}
	} else {
		zc.OutputPaths = []string{"stderr"}
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
