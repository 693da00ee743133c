package containers

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/bde-polytech/backend/internal/app/migrations"
	"github.com/bde-polytech/backend/internal/db"
)

// StartPostgres starts a throwaway PostgreSQL container, applies the schema
// migrations and returns a connected database. The returned cleanup function
// terminates the container.
func StartPostgres(ctx context.Context) (*db.PostgresDB, func(), error) {
	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("bde_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	cleanup := func() {
		_ = container.Terminate(context.Background())
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	migrator := migrations.NewMigrator(pool)
	if err := migrator.MigrateFromDirectory(migrationsDir()); err != nil {
		pool.Close()
		cleanup()
		return nil, nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &db.PostgresDB{Pool: pool}, cleanup, nil
}

// migrationsDir resolves the migrations directory relative to this source
// file so tests work from any package directory.
func migrationsDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "..", "migrations")
}
