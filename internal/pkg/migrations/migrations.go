package migrations

import (
	"context"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"parceldesk/pkg/logger"
)

//go:embed *.sql
var files embed.FS

// Up применяет все ещё не применённые миграции. Повторный запуск ничего не меняет.
func Up(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, files)
	if err != nil {
		return fmt.Errorf("migrations provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("migrations up: %w", err)
	}

	for _, res := range results {
		log.Info("Migration applied",
			logger.NewField("version", res.Source.Version),
			logger.NewField("file", res.Source.Path),
			logger.NewField("duration", res.Duration),
		)
	}
	return nil
}
