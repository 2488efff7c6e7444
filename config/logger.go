package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop()

// InitLogger builds the process-wide zap logger. Development mode gets the
// console encoder, everything else the production JSON encoder.
func InitLogger(cfg *Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	l, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}

	logger = l
	return l, nil
}

// Logger returns the process-wide logger. Before InitLogger runs it is a
// no-op logger, so packages can log unconditionally.
func Logger() *zap.Logger {
	return logger
}

// SetLogger replaces the process-wide logger (primarily for testing)
func SetLogger(l *zap.Logger) {
	logger = l
}
