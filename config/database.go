package config

import (
	"context"
	"fmt"
	"time"

	"github.com/go-kit/log"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	dbConnectAttempts = 5
	dbInitialBackoff  = 2 * time.Second
	dbPingTimeout     = 5 * time.Second
)

// ConnectDB opens a pgx pool for databaseURL, retrying with exponential backoff
// until the database answers a ping.
func ConnectDB(ctx context.Context, databaseURL string, logger log.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 5 * time.Minute

	delay := dbInitialBackoff
	for attempt := 1; ; attempt++ {
		logger.Log("msg", "connecting to database", "attempt", attempt, "max_attempts", dbConnectAttempts)

		pool, err := openPool(ctx, poolConfig)
		if err == nil {
			logger.Log("msg", "connected to database")
			return pool, nil
		}
		logger.Log("msg", "database connection failed", "attempt", attempt, "err", err)

		if attempt == dbConnectAttempts {
			return nil, fmt.Errorf("connect to database after %d attempts: %w", dbConnectAttempts, err)
		}

		select {
		case <-time.After(delay):
			delay *= 2
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func openPool(ctx context.Context, poolConfig *pgxpool.Config) (*pgxpool.Pool, error) {
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return pool, nil
}
