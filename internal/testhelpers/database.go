package testhelpers

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/lib/pq"
	"github.com/pageza/foodgram/backend/config"
	"github.com/pageza/foodgram/backend/internal/database"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// SQLiteConfig returns a config pointing at a fresh sqlite file in a temp dir.
func SQLiteConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		DBDriver:        config.DriverSQLite,
		SQLitePath:      filepath.Join(t.TempDir(), "foodgram_test.db"),
		DBLogLevel:      "silent",
		DBMaxOpenConns:  1,
		MigrationsTable: "schema_migrations",
	}
}

// SetupTestDB creates a migrated sqlite database private to the test.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return openMigrated(t, SQLiteConfig(t))
}

// SetupPostgresTestDB creates a migrated database in a PostgreSQL container.
// The test is skipped when docker is unavailable or -short is set.
func SetupPostgresTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}
	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not installed, skipping container-based test")
	}

	cfg := &config.Config{
		DBDriver:          config.DriverPostgres,
		DBUser:            "foodgram",
		DBPassword:        "foodgram",
		DBName:            "foodgram_test",
		DBSSLMode:         "disable",
		DBLogLevel:        "silent",
		DBMaxOpenConns:    5,
		DBMaxIdleConns:    5,
		DBConnMaxLifetime: time.Minute,
		MigrationsTable:   "schema_migrations",
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     cfg.DBUser,
				"POSTGRES_PASSWORD": cfg.DBPassword,
				"POSTGRES_DB":       cfg.DBName,
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForSQL("5432/tcp", "postgres", func(host string, port nat.Port) string {
					return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
						cfg.DBUser, cfg.DBPassword, host, port.Port(), cfg.DBName)
				}),
			).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Error terminating postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("failed to get container port: %v", err)
	}
	cfg.DBHost = host
	cfg.DBPort = port.Port()

	return openMigrated(t, cfg)
}

func openMigrated(t *testing.T, cfg *config.Config) *gorm.DB {
	t.Helper()
	if err := database.RunMigrations(cfg); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() {
		if err := database.Close(db); err != nil {
			t.Logf("Error closing test database: %v", err)
		}
	})
	return db
}
