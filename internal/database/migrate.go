package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pageza/foodgram/backend/config"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationFiles embed.FS

// RunMigrations applies every pending migration for the configured driver.
// Migrations run on their own connection, separate from the GORM pool.
func RunMigrations(cfg *config.Config) error {
	m, err := newMigrate(cfg)
	if err != nil {
		return err
	}
	defer closeMigrate(m)

	from, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	if dirty {
		return fmt.Errorf("database is in a dirty state at version %d (manual intervention required)", from)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Printf("Schema already up to date at version %d", from)
			return nil
		}
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	to, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	log.Printf("Applied migrations %d -> %d", from, to)
	return nil
}

// RollbackMigrations reverts the last steps applied migrations.
func RollbackMigrations(cfg *config.Config, steps int) error {
	if steps < 1 {
		return fmt.Errorf("steps must be at least 1, got %d", steps)
	}

	m, err := newMigrate(cfg)
	if err != nil {
		return err
	}
	defer closeMigrate(m)

	if err := m.Steps(-steps); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Printf("Nothing to roll back")
			return nil
		}
		return fmt.Errorf("failed to roll back %d migration(s): %w", steps, err)
	}

	version, _, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		log.Printf("Rolled back %d migration(s), schema is empty", steps)
	case err != nil:
		return fmt.Errorf("failed to read migration version: %w", err)
	default:
		log.Printf("Rolled back %d migration(s), now at version %d", steps, version)
	}
	return nil
}

// MigrationVersion returns the applied schema version. ok is false on a fresh database.
func MigrationVersion(cfg *config.Config) (version uint, ok bool, err error) {
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
		return 0, false, fmt.Errorf("failed to read migration version: %w", err)
	}
	if dirty {
		return version, true, fmt.Errorf("database is in a dirty state at version %d", version)
	}
	return version, true, nil
}

func newMigrate(cfg *config.Config) (*migrate.Migrate, error) {
	var (
		sqlDB  *sql.DB
		driver migratedb.Driver
		dir    string
		err    error
	)

	switch cfg.DBDriver {
	case config.DriverPostgres:
		dir = "migrations/postgres"
		if sqlDB, err = sql.Open("postgres", cfg.PostgresURL()); err != nil {
			return nil, fmt.Errorf("error opening database: %w", err)
		}
		driver, err = migratepg.WithInstance(sqlDB, &migratepg.Config{MigrationsTable: cfg.MigrationsTable})
	case config.DriverSQLite:
		dir = "migrations/sqlite"
		if sqlDB, err = sql.Open("sqlite3", cfg.SQLiteDSN()); err != nil {
			return nil, fmt.Errorf("error opening database: %w", err)
		}
		driver, err = migratesqlite.WithInstance(sqlDB, &migratesqlite.Config{MigrationsTable: cfg.MigrationsTable})
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to initialize migration driver: %w", err)
	}

	src, err := iofs.New(migrationFiles, dir)
	if err != nil {
		driver.Close()
		return nil, fmt.Errorf("failed to read embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, cfg.DBDriver, driver)
	if err != nil {
		src.Close()
		driver.Close()
		return nil, fmt.Errorf("failed to initialize migrations: %w", err)
	}
	m.Log = migrateLogger{}
	return m, nil
}

func closeMigrate(m *migrate.Migrate) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		log.Printf("Error closing migration source: %v", srcErr)
	}
	if dbErr != nil {
		log.Printf("Error closing migration database: %v", dbErr)
	}
}

// migrateLogger adapts golang-migrate's logger interface to the standard logger.
type migrateLogger struct{}

func (migrateLogger) Printf(format string, v ...interface{}) {
	log.Printf("migrate: "+format, v...)
}

func (migrateLogger) Verbose() bool {
	return false
}
