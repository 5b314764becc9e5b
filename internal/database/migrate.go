package database

import (
	"embed"
	"errors"
	"fmt"

	"trivia-api/internal/config"
	"trivia-api/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // "pgx5://" URLs
	_ "github.com/golang-migrate/migrate/v4/database/sqlite" // "sqlite://" URLs
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationFS embed.FS

func migrationDir(driver string) string {
	if driver == config.DriverSQLite {
		return "migrations/sqlite"
	}
	return "migrations/postgres"
}

func newMigrate(cfg *config.Config) (*migrate.Migrate, error) {
	src, err := iofs.New(migrationFS, migrationDir(cfg.DB.Driver))
	if err != nil {
		return nil, fmt.Errorf("could not read embedded migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, cfg.GetMigrateURL())
	if err != nil {
		return nil, fmt.Errorf("could not create migrate instance: %w", err)
	}
	return m, nil
}

func closeMigrate(m *migrate.Migrate) {
	srcErr, dbErr := m.Close()
	if srcErr != nil || dbErr != nil {
		logger.Get().Warn("failed to close migrate instance", zap.NamedError("source_error", srcErr), zap.NamedError("db_error", dbErr))
	}
}

// RunMigrations applies every pending up migration.
func RunMigrations(cfg *config.Config) error {
	m, err := newMigrate(cfg)
	if err != nil {
		return err
	}
	defer closeMigrate(m)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run up migrations: %w", err)
	}
	logVersion(m)
	return nil
}

// RollbackMigrations reverts the given number of migrations, or all of them when steps <= 0.
func RollbackMigrations(cfg *config.Config, steps int) error {
	m, err := newMigrate(cfg)
	if err != nil {
		return err
	}
	defer closeMigrate(m)

	if steps > 0 {
		err = m.Steps(-steps)
	} else {
		err = m.Down()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run down migrations: %w", err)
	}
	logVersion(m)
	return nil
}

// MigrationVersion returns the current schema version and whether it is dirty.
func MigrationVersion(cfg *config.Config) (uint, bool, error) {
	m, err := newMigrate(cfg)
	if err != nil {
		return 0, false, err
	}
	defer closeMigrate(m)

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("could not read migration version: %w", err)
	}
	return version, dirty, nil
}

func logVersion(m *migrate.Migrate) {
	version, dirty, err := m.Version()
	if err != nil {
		logger.Get().Info("Migrations completed", zap.String("version", "none"))
		return
	}
	logger.Get().Info("Migrations completed", zap.Uint("version", version), zap.Bool("dirty", dirty))
}
