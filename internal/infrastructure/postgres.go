package infrastructure

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresClient struct {
	Pool *pgxpool.Pool
}

func NewPostgresClient(connString string) (*PostgresClient, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse connection string: %w", err)
	}

	// Pool configuration
	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	// Verify connection
	if err := pool.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	client := &PostgresClient{Pool: pool}

	// Auto-migrate schema
	if err := client.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return client, nil
}

func (p *PostgresClient) Migrate() error {
	ctx := context.Background()

	// Filters Table
	_, err := p.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS filters (
			id SERIAL PRIMARY KEY,
			conversation_id VARCHAR(64) NOT NULL,
			keyword VARCHAR(255) NOT NULL,
			text TEXT NOT NULL DEFAULT '',
			media_kind VARCHAR(20),
			file_id TEXT,
			caption TEXT NOT NULL DEFAULT '',
			buttons JSONB NOT NULL DEFAULT '[]',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (conversation_id, keyword)
		);
	`)
	if err != nil {
		return fmt.Errorf("create filters table: %w", err)
	}

	// Dispatch Counters Table
	_, err = p.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS filter_hits (
			conversation_id VARCHAR(64) NOT NULL,
			keyword VARCHAR(255) NOT NULL,
			hits BIGINT NOT NULL DEFAULT 0,
			PRIMARY KEY (conversation_id, keyword)
		);
	`)
	if err != nil {
		return fmt.Errorf("create filter_hits table: %w", err)
	}

	// Admin Users Table
	_, err = p.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username VARCHAR(50) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			role VARCHAR(20) DEFAULT 'user',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("create users table: %w", err)
	}

	return nil
}

func (p *PostgresClient) Close() {
	p.Pool.Close()
}
