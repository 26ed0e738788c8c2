// Package pgtest provides a PostgreSQL database for package tests.
//
// A container is started with testcontainers unless TEST_DB_HOST points at an external
// database (for CI or local development).
package pgtest

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Setup connects to the test database and applies the schema file.
// The returned teardown terminates the container, if one was started.
func Setup(ctx context.Context, schemaPath string) (*gorm.DB, func(), error) {
	var (
		dsn         string
		pgContainer *postgres.PostgresContainer
		err         error
	)

	teardown := func() {
		if pgContainer != nil {
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
		}
	}

	if dbHost := os.Getenv("TEST_DB_HOST"); dbHost != "" {
		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost,
			getenv("TEST_DB_PORT", "5432"),
			getenv("TEST_DB_USER", "postgres"),
			getenv("TEST_DB_PASSWORD", "postgres"),
			getenv("TEST_DB_NAME", "test_db"),
		)
		fmt.Printf("Using external database: %s\n", dbHost)
	} else {
		pgContainer, err = postgres.Run(ctx,
			"postgres:18-alpine",
			postgres.WithDatabase("test_db"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			return nil, teardown, fmt.Errorf("failed to start PostgreSQL container: %w", err)
		}

		dsn, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			return nil, teardown, fmt.Errorf("failed to get connection string: %w", err)
		}
	}

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, teardown, fmt.Errorf("failed to connect to database: %w", err)
	}

	schemaSQL, err := os.ReadFile(schemaPath) //nolint:gosec,G304
	if err != nil {
		return nil, teardown, fmt.Errorf("failed to read schema file: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, teardown, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if _, err := sqlDB.Exec(string(schemaSQL)); err != nil {
		return nil, teardown, fmt.Errorf("failed to execute schema: %w", err)
	}

	return db, teardown, nil
}

// Tx begins a transaction that is rolled back when the test finishes
func Tx(t *testing.T, db *gorm.DB) *gorm.DB {
	t.Helper()
	require.NotNil(t, db, "test database not initialized")

	tx := db.Begin()
	require.NoError(t, tx.Error)
	t.Cleanup(func() {
		tx.Rollback()
	})

	return tx
}

// Seed inserts the given rows, failing the test on error
func Seed(t *testing.T, db *gorm.DB, rows ...any) {
	t.Helper()
	for _, row := range rows {
		require.NoError(t, db.Create(row).Error)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
