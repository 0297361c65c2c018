package storage

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations applies every pending migration on a connection separate from
// the main pool.
func RunMigrations(dsn string) error {
	return withMigrate(dsn, func(m *migrate.Migrate) error {
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("run migrations: %w", err)
		}
		return nil
	})
}

// ResetMigrations rolls every migration back and applies them again, leaving
// empty tables.
func ResetMigrations(dsn string) error {
	return withMigrate(dsn, func(m *migrate.Migrate) error {
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("roll back migrations: %w", err)
		}
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("run migrations: %w", err)
		}
		return nil
	})
}

// MigrationStatus returns the current schema version. A database with no
// migrations applied reports version 0.
func MigrationStatus(dsn string) (version uint, dirty bool, err error) {
	err = withMigrate(dsn, func(m *migrate.Migrate) error {
		var verr error
		version, dirty, verr = m.Version()
		if errors.Is(verr, migrate.ErrNilVersion) {
			version, dirty = 0, false
			return nil
		}
		return verr
	})
	return version, dirty, err
}

func withMigrate(dsn string, fn func(m *migrate.Migrate) error) error {
	migrateDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("open migration database: %w", err)
	}
	defer migrateDB.Close()

	driver, err := sqlite.WithInstance(migrateDB, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("create sqlite driver: %w", err)
	}

	d, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", d, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	return fn(m)
}
