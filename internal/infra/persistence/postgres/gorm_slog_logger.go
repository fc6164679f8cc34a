package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"habitar/config"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Queries slower than this are reported even outside debug mode.
const slowQueryThreshold = 200 * time.Millisecond

// queryLogger bridges gorm's logger interface onto slog. Record-not-found is
// never reported here; the repositories translate it into a domain sentinel.
type queryLogger struct {
	logger *slog.Logger
	level  logger.LogLevel
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &queryLogger{
		logger: baseLogger,
		level:  level,
	}
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &queryLogger{logger: l.logger, level: level}
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, "GORM info", msg, args...)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, "GORM warn", msg, args...)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, "GORM error", msg, args...)
}

func (l *queryLogger) printf(ctx context.Context, gormLevel logger.LogLevel, slogLevel slog.Level, header, msg string, args ...any) {
	if l.logger == nil || l.level < gormLevel {
		return
	}

	l.logger.LogAttrs(ctx, slogLevel, header, slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *queryLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		l.logQuery(ctx, slog.LevelError, "Query failed", sqlAndRowsFn, elapsed,
			slog.String("error", err.Error()))
	case elapsed > slowQueryThreshold && l.level >= logger.Warn:
		l.logQuery(ctx, slog.LevelWarn, "Slow query", sqlAndRowsFn, elapsed,
			slog.Duration("threshold", slowQueryThreshold))
	case l.level >= logger.Info:
		l.logQuery(ctx, slog.LevelInfo, "Query", sqlAndRowsFn, elapsed)
	}
}

func (l *queryLogger) logQuery(ctx context.Context, level slog.Level, msg string, sqlAndRowsFn func() (string, int64), elapsed time.Duration, extra ...slog.Attr) {
	sql, rows := sqlAndRowsFn()

	attrs := append([]slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}, extra...)

	l.logger.LogAttrs(ctx, level, msg, attrs...)
}
