package migration

import (
	"context"
	"embed"
	"fmt"
	
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"
)

const migrationsTable = "schema_migrations"

//go:embed *.sql
var migrations embed.FS

// Up applies every pending migration embedded in this package.
// goose only speaks database/sql, so the pgx pool is bridged through stdlib.
func Up(ctx context.Context, pool *pgxpool.Pool) error {
	sqlDB := stdlib.OpenDBFromPool(pool)
	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close migration connection")
		}
	}()
	
	goose.SetBaseFS(migrations)
	goose.SetLogger(zerologAdapter{})
	goose.SetTableName(migrationsTable)
	
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}
	
	if err := goose.UpContext(ctx, sqlDB, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	
	return nil
}

// zerologAdapter routes goose's Printf-style output through zerolog.
type zerologAdapter struct{}

func (zerologAdapter) Fatalf(format string, v ...interface{}) {
	log.Error().Str("component", "migration").Msgf(format, v...)
}

func (zerologAdapter) Printf(format string, v ...interface{}) {
	log.Info().Str("component", "migration").Msgf(format, v...)
}
