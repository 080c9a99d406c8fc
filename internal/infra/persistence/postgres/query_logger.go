package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"loyalty/config"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultSlowQuery = 200 * time.Millisecond

// queryLogger routes GORM output into slog. Locking reads are reported on
// their own so card row contention is visible apart from plain slow queries.
type queryLogger struct {
	out       *slog.Logger
	level     gormlogger.LogLevel
	slowQuery time.Duration
}

func newQueryLogger(out *slog.Logger, cfg *config.Config) *queryLogger {
	l := &queryLogger{out: out, level: gormlogger.Warn, slowQuery: defaultSlowQuery}
	if cfg == nil {
		return l
	}
	if cfg.Env.Debug {
		l.level = gormlogger.Info
	}
	if cfg.Database != nil && cfg.Database.SlowThreshold > 0 {
		l.slowQuery = cfg.Database.SlowThreshold
	}

	return l
}

func (l *queryLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Info, slog.LevelInfo, msg, args)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Warn, slog.LevelWarn, msg, args)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Error, slog.LevelError, msg, args)
}

func (l *queryLogger) printf(ctx context.Context, floor gormlogger.LogLevel, level slog.Level, msg string, args []any) {
	if l.out == nil || l.level < floor {
		return
	}
	l.out.Log(ctx, level, "GORM "+level.String(), slog.String("message", fmt.Sprintf(msg, args...)))
}

// queryVerdict is how one statement should be reported. A zero message means skip.
type queryVerdict struct {
	level   slog.Level
	message string
}

func (l *queryLogger) judge(sql string, elapsed time.Duration, err error) queryVerdict {
	switch {
	case l.level == gormlogger.Silent:
		return queryVerdict{}
	case err != nil:
		// Misses are answered as domain errors, and code collisions are retried.
		if l.level < gormlogger.Error || errors.Is(err, gorm.ErrRecordNotFound) || isUniqueConstraintViolation(err) {
			return queryVerdict{}
		}

		return queryVerdict{slog.LevelError, "GORM query failed"}
	case l.slowQuery > 0 && elapsed > l.slowQuery && l.level >= gormlogger.Warn:
		if isLockingRead(sql) {
			return queryVerdict{slog.LevelWarn, "Row lock wait"}
		}

		return queryVerdict{slog.LevelWarn, "GORM slow query"}
	case l.level >= gormlogger.Info:
		return queryVerdict{slog.LevelInfo, "GORM query"}
	default:
		return queryVerdict{}
	}
}

func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.out == nil {
		return
	}

	elapsed := time.Since(begin)
	// Quiet path: do not render SQL that will not be logged.
	if err == nil && l.level < gormlogger.Info && (l.slowQuery <= 0 || elapsed <= l.slowQuery) {
		return
	}
	sql, rows := fc()
	verdict := l.judge(sql, elapsed, err)
	if verdict.message == "" {
		return
	}

	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	} else if verdict.level == slog.LevelWarn {
		attrs = append(attrs, slog.Duration("slowThreshold", l.slowQuery))
	}
	l.out.LogAttrs(ctx, verdict.level, verdict.message, attrs...)
}

func isLockingRead(sql string) bool {
	return strings.Contains(strings.ToUpper(sql), "FOR UPDATE")
}
