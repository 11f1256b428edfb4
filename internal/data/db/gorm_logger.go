package db

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/logger"
)

// GormLogger routes gorm's messages through the service logger. SQL text is never
// logged at info level since statements can carry symptom descriptions.
type GormLogger struct {
	log           *logger.Logger
	level         gormLogger.LogLevel
	slowThreshold time.Duration
}

func NewGormLogger(log *logger.Logger) *GormLogger {
	return &GormLogger{
		log:           log.With("component", "gorm"),
		level:         gormLogger.Warn,
		slowThreshold: time.Second,
	}
}

func (g *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	clone := *g
	clone.level = level
	return &clone
}

func (g *GormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	if g.level >= gormLogger.Info {
		g.log.Info(msg, "args", len(args))
	}
}

func (g *GormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	if g.level >= gormLogger.Warn {
		g.log.Warn(msg, "args", len(args))
	}
}

func (g *GormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	if g.level >= gormLogger.Error {
		g.log.Error(msg, "args", len(args))
	}
}

func (g *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.level <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	switch {
	case err != nil && g.level >= gormLogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		_, rows := fc()
		g.log.Error("gorm query failed", "elapsed_ms", elapsed.Milliseconds(), "rows", rows, "error", err)
	case g.slowThreshold > 0 && elapsed > g.slowThreshold && g.level >= gormLogger.Warn:
		_, rows := fc()
		g.log.Warn("gorm slow query", "elapsed_ms", elapsed.Milliseconds(), "rows", rows)
	case g.level >= gormLogger.Info:
		sql, rows := fc()
		g.log.Debug("gorm query", "elapsed_ms", elapsed.Milliseconds(), "rows", rows, "sql_len", len(sql))
	}
}
