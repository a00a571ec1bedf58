package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "pageview-service"

type Config struct {
	Environment string // local or prod
	Level       string
}

// New builds a zap logger. Local environments get the console encoder,
// everything else emits JSON. Extra options are applied after the defaults.
func New(cfg Config, opts ...zap.Option) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.Environment == "local" {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(parseLevel(cfg.Level))
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder

	logger, err := zcfg.Build(append([]zap.Option{zap.AddStacktrace(zapcore.ErrorLevel)}, opts...)...)
	if err != nil {
		return nil, err
	}

	return logger.With(
		zap.String("service", serviceName),
		zap.String("environment", cfg.Environment),
	), nil
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
