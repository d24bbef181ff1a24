package migrations

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// FS embeds the SQL migration files read by the iofs driver.
//
//go:embed *.sql
var FS embed.FS

const Version = 2

var ErrDirtyDatabase = errors.New("database is in dirty state")

// Migrate applies all up migrations to the database at addr.
func Migrate(addr string) error {
	mg, err := newMigrate(addr)
	if err != nil {
		return err
	}
	defer mg.Close()

	_, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	if dirty {
		return ErrDirtyDatabase
	}

	if err = mg.Migrate(Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// Rollback reverts the most recent migration.
func Rollback(addr string) error {
	mg, err := newMigrate(addr)
	if err != nil {
		return err
	}
	defer mg.Close()

	if err = mg.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}
	return nil
}

// CurrentVersion reports the applied version, 0 when nothing was applied.
func CurrentVersion(addr string) (uint, bool, error) {
	mg, err := newMigrate(addr)
	if err != nil {
		return 0, false, err
	}
	defer mg.Close()

	version, dirty, err := mg.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

func newMigrate(addr string) (*migrate.Migrate, error) {
	driver, err := iofs.New(FS, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to open migration source: %w", err)
	}

	mg, err := migrate.NewWithSourceInstance("iofs", driver, addr)
	if err != nil {
		driver.Close()
		return nil, fmt.Errorf("failed to create migrator: %w", err)
	}
	return mg, nil
}
