package db

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// NewMigrator opens a dedicated connection to dsn and returns a migrator
// reading the files under path/<dialect>. Closing the migrator closes the
// connection.
func NewMigrator(dbType DBType, dsn, path string, logger *slog.Logger) (*migrate.Migrate, error) {
	var driverName, dir string
	switch dbType {
	case Postgres:
		driverName, dir = "postgres", "postgres"
	case MySQL:
		driverName, dir = "mysql", "mysql"
	case SQLite:
		driverName, dir = "sqlite3", "sqlite3"
	default:
		return nil, fmt.Errorf("migrations not supported for %q", dbType)
	}

	conn, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", dbType, err)
	}

	var driver database.Driver
	switch dbType {
	case Postgres:
		driver, err = migratepostgres.WithInstance(conn, &migratepostgres.Config{})
	case MySQL:
		driver, err = migratemysql.WithInstance(conn, &migratemysql.Config{})
	case SQLite:
		driver, err = migratesqlite.WithInstance(conn, &migratesqlite.Config{})
	}
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("could not start %s migration driver: %w", dbType, err)
	}

	sourceURL := "file://" + filepath.ToSlash(filepath.Join(path, dir))
	m, err := migrate.NewWithDatabaseInstance(sourceURL, driverName, driver)
	if err != nil {
		_ = driver.Close()
		return nil, fmt.Errorf("migration failed to start: %w", err)
	}
	m.Log = &migrateLogger{logger: logger}
	return m, nil
}

// RunMigrations applies every pending up migration. Mongo and the in-memory
// store have no schema and are skipped.
func RunMigrations(dbType DBType, dsn, path string, logger *slog.Logger) error {
	if dbType == Mongo || dbType == Memory {
		logger.Info("migrations skipped", "db_type", dbType)
		return nil
	}

	m, err := NewMigrator(dbType, dsn, path, logger)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run up migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("could not read migration version: %w", err)
	}
	logger.Info("migrations applied", "db_type", dbType, "version", version, "dirty", dirty)
	return nil
}

type migrateLogger struct {
	logger *slog.Logger
}

func (l *migrateLogger) Printf(format string, v ...any) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

func (l *migrateLogger) Verbose() bool { return false }
