package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config controls how the application logger is built
type Config struct {
	Level      string // debug, info, warn, error
	Format     string // json, console
	Output     string // stdout, stderr, or a file path
	TimeFormat string // timestamp layout; ISO8601 when empty
}

// New builds a zap logger from the configuration
func New(cfg *Config) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(parseLevel(cfg.Level))
	zc.Sampling = nil

	output := cfg.Output
	if output == "" {
		output = "stdout"
	}
	zc.OutputPaths = []string{output}
	zc.ErrorOutputPaths = []string{"stderr"}

	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "time"
	enc.MessageKey = "msg"
	enc.EncodeDuration = zapcore.MillisDurationEncoder
	if cfg.TimeFormat != "" {
		enc.EncodeTime = zapcore.TimeEncoderOfLayout(cfg.TimeFormat)
	} else {
		enc.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	if cfg.Format == "console" {
		zc.Encoding = "console"
		enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zc.EncoderConfig = enc

	return zc.Build(zap.AddStacktrace(zapcore.ErrorLevel))
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
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

// Sync flushes buffered entries; sync errors on stdout are expected and
// safe to ignore at shutdown
func Sync(log *zap.Logger) error {
	return log.Sync()
}
