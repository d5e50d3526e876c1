//go:build integration

package integration_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"parceldesk/internal/pkg/migrations"
	"parceldesk/pkg/logger/zap_adapter"
	"parceldesk/pkg/querier"
	"parceldesk/pkg/tx"
)

// Env - общая на процесс тестов база в контейнере со схемой из миграций.
type Env struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	Querier   *querier.Querier
	TxManager *tx.Manager
}

var (
	env     *Env
	envErr  error
	envOnce sync.Once
)

func GetEnv(t *testing.T) *Env {
	t.Helper()

	envOnce.Do(func() {
		env, envErr = startEnv(context.Background())
	})
	require.NoError(t, envErr)

	return env
}

func startEnv(ctx context.Context) (*Env, error) {
	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("parceldesk"),
		postgres.WithUsername("parceldesk"),
		postgres.WithPassword("parceldesk"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, err
	}

	if err := migrations.Up(ctx, zap_adapter.New(zap.NewNop()), pool); err != nil {
		pool.Close()
		return nil, err
	}

	return &Env{
		Container: container,
		Pool:      pool,
		Querier:   querier.New(pool, nil),
		TxManager: tx.New(pool),
	}, nil
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := GetEnv(t).Querier.Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := GetEnv(t).Querier.Exec(ctx, `
		TRUNCATE TABLE packages RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}
