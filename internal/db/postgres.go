package db

import (
	"context"
	"fmt"
	"time"

	"bobber/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres dsn: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres connection failed: %w", err)
	}

	// Initialize schema
	if err := initSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return pool, nil
}

// initSchema creates the builds table if it does not exist yet
func initSchema(ctx context.Context, pool *pgxpool.Pool) error {
	buildsTableSQL := `
		CREATE TABLE IF NOT EXISTS builds (
			id UUID PRIMARY KEY,
			selection JSONB NOT NULL,
			total NUMERIC(10,2) NOT NULL,
			currency VARCHAR(8) NOT NULL,
			author VARCHAR(255),
			note TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, buildsTableSQL); err != nil {
		return err
	}

	logger.Info().Msg("✅ Schema initialized successfully")
	return nil
}
