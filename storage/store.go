package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/huandu/go-sqlbuilder"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/chrisformoso-ca/rvezy-calgary/config"
	"github.com/chrisformoso-ca/rvezy-calgary/migrations"
	"github.com/chrisformoso-ca/rvezy-calgary/utils"
)

// Store is the single handle to the relational dataset. It is passed to
// every pipeline stage and held for the life of the batch.
type Store struct {
	db     *sqlx.DB
	flavor sqlbuilder.Flavor
	logger *zap.SugaredLogger
}

// Open connects to the configured database, retrying the initial
// connection, and applies the embedded schema migrations for the
// configured dialect.
func Open(cfg *config.Config, logger *zap.SugaredLogger) (*Store, error) {
	var flavor sqlbuilder.Flavor
	switch cfg.DatabaseDriver {
	case "sqlite":
		flavor = sqlbuilder.SQLite
	case "postgres":
		flavor = sqlbuilder.PostgreSQL
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
	}

	if cfg.DatabaseDriver == "sqlite" {
		if err := ensureSQLiteDir(cfg.DatabaseDSN); err != nil {
			return nil, err
		}
	}

	var db *sqlx.DB
	connect := func() error {
		var err error
		db, err = sqlx.Connect(cfg.DatabaseDriver, cfg.DatabaseDSN)
		return err
	}
	if err := utils.RetryWithBackoff(cfg.ConnectRetries, connect, logger); err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	if cfg.DatabaseDriver == "sqlite" {
		// A single connection keeps an in-memory database alive and
		// avoids writer lock contention on file databases.
		db.SetMaxOpenConns(1)
	}

	s := &Store{db: db, flavor: flavor, logger: logger}
	if err := s.migrate(cfg.DatabaseDriver); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Infow("store ready", "driver", cfg.DatabaseDriver)
	return s, nil
}

// Close releases the database handle. Safe to defer immediately after Open.
func (s *Store) Close() {
	if s.db != nil {
		_ = s.db.Close()
	}
}

// migrate applies every pending migration from the embedded dialect
// directory. A fully migrated database is a no-op.
func (s *Store) migrate(dialect string) error {
	src, err := iofs.New(migrations.FS, dialect)
	if err != nil {
		return fmt.Errorf("failed to load %s migrations: %w", dialect, err)
	}

	var driver database.Driver
	switch dialect {
	case "sqlite":
		driver, err = migratesqlite.WithInstance(s.db.DB, &migratesqlite.Config{})
	case "postgres":
		driver, err = migratepg.WithInstance(s.db.DB, &migratepg.Config{})
	}
	if err != nil {
		return fmt.Errorf("failed to prepare %s migration driver: %w", dialect, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, dialect, driver)
	if err != nil {
		return fmt.Errorf("failed to init migrations: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// ensureSQLiteDir creates the parent directory of a file-backed SQLite
// DSN so a fresh checkout can run without manual setup.
func ensureSQLiteDir(dsn string) error {
	if dsn == ":memory:" || strings.HasPrefix(dsn, "file:") {
		return nil
	}
	dir := filepath.Dir(dsn)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	return nil
}
