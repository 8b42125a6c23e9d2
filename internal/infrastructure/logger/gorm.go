package logger

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// GormLogger routes gorm's logging through zap. Record-not-found is not
// treated as an error since repositories map it to a domain sentinel.
type GormLogger struct {
	log   *zap.Logger
	level gormlogger.LogLevel
}

// NewGormLogger wraps a zap logger for use as gorm's logger.Interface
func NewGormLogger(log *zap.Logger, level gormlogger.LogLevel) *GormLogger {
	return &GormLogger{log: log.Named("gorm"), level: level}
}

// LogMode implements gormlogger.Interface
func (g *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *g
	clone.level = level
	return &clone
}

func (g *GormLogger) Info(_ context.Context, msg string, args ...any) {
	if g.level >= gormlogger.Info {
		g.log.Sugar().Infof(msg, args...)
	}
}

func (g *GormLogger) Warn(_ context.Context, msg string, args ...any) {
	if g.level >= gormlogger.Warn {
		g.log.Sugar().Warnf(msg, args...)
	}
}

func (g *GormLogger) Error(_ context.Context, msg string, args ...any) {
	if g.level >= gormlogger.Error {
		g.log.Sugar().Errorf(msg, args...)
	}
}

// Trace logs completed statements: errors at error level, slow queries at
// warn, everything else at debug
func (g *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.level <= gormlogger.Silent {
		return
	}

	sql, rows := fc()
	elapsed := time.Since(begin)
	fields := []zap.Field{
		zap.String("sql", sql),
		zap.Int64("rows", rows),
		zap.Duration("elapsed", elapsed),
	}

	switch {
	case err != nil && !errors.Is(err, gormlogger.ErrRecordNotFound) && g.level >= gormlogger.Error:
		g.log.Error("query failed", append(fields, zap.Error(err))...)
	case elapsed >= slowQueryThreshold && g.level >= gormlogger.Warn:
		g.log.Warn("slow query", fields...)
	case g.level >= gormlogger.Info:
		g.log.Debug("query", fields...)
	}
}

// MapGormLogLevel translates the application log level into gorm's scale
func MapGormLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info", "debug":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}
