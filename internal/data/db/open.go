package db

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/logger"
)

type Config struct {
	Driver     string // postgres | sqlite
	Postgres   PostgresConfig
	SQLitePath string
}

// Open connects to the configured entity store.
func Open(log *logger.Logger, cfg Config) (*gorm.DB, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", "postgres", "postgresql":
		svc, err := NewPostgresService(log, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		return svc.DB(), nil
	case "sqlite", "sqlite3":
		svc, err := NewSQLiteService(log, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return svc.DB(), nil
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q (want postgres or sqlite)", cfg.Driver)
	}
}

// Close releases the underlying pool.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
