// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file opens the SQLite databases: the backend's
// orders/messages database and the CLI's local fallback store.
package repo

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/Ramsagar705/aqua-blue-hydropack/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = gorm.ErrRecordNotFound

var pragmas = []string{
	"PRAGMA journal_mode=WAL;",
	"PRAGMA synchronous=NORMAL;",
	"PRAGMA foreign_keys=ON;",
	"PRAGMA busy_timeout=5000;",
}

// OpenSQLite opens (or creates) the backend database. The parent directory
// must already exist; a missing one is reported instead of surfacing as the
// driver's "out of memory (14)".
func OpenSQLite(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
	}
	return open(path, 10)
}

// OpenLocalStore opens the CLI's fallback database, creating its parent
// directory on first use. A single connection is enough for one process.
func OpenLocalStore(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create local store dir: %w", err)
		}
	}
	return open(path, 1)
}

func open(path string, maxConns int) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	for _, p := range pragmas {
		if err := db.Exec(p).Error; err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(maxConns)
		sqlDB.SetMaxIdleConns(maxConns)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}
	return db, nil
}

// Instrument registers the OpenTelemetry GORM plugin so every query runs in
// a child span of the request context.
func Instrument(db *gorm.DB) error {
	return db.Use(tracing.NewPlugin())
}

// AutoMigrate creates or updates the backend tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.Order{}, &domain.ContactMessage{})
}

// AutoMigrateSlots creates the table backing SlotStorage.
func AutoMigrateSlots(db *gorm.DB) error {
	return db.AutoMigrate(&domain.Slot{})
}
