package persistence

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/execdash/backend/internal/infrastructure/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Database wraps the gorm handle and the pool settings applied to it
type Database struct {
	DB *gorm.DB
}

// NewDatabase opens a postgres connection, applies the configured pool
// limits, and verifies connectivity. Pass nil to silence gorm's logging.
func NewDatabase(cfg *config.DatabaseConfig, log gormlogger.Interface) (*Database, error) {
	if log == nil {
		log = gormlogger.Default.LogMode(gormlogger.Silent)
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:                 log,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	pool, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	pool.SetMaxOpenConns(cfg.MaxOpenConns)
	pool.SetMaxIdleConns(cfg.MaxIdleConns)
	pool.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)
	pool.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTime) * time.Minute)

	if err := pool.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Database{DB: db}, nil
}

func (d *Database) pool() (*sql.DB, error) {
	pool, err := d.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return pool, nil
}

// Ping reports whether the connection is still alive
func (d *Database) Ping() error {
	pool, err := d.pool()
	if err != nil {
		return err
	}
	return pool.Ping()
}

// Close releases the connection pool
func (d *Database) Close() error {
	pool, err := d.pool()
	if err != nil {
		return err
	}
	return pool.Close()
}

// Stats exposes pool counters for the system info endpoint
func (d *Database) Stats() (sql.DBStats, error) {
	pool, err := d.pool()
	if err != nil {
		return sql.DBStats{}, err
	}
	return pool.Stats(), nil
}
