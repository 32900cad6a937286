package database

import (
	"context"
	"fmt"
	"time"

	"laserwood/internal/config"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ConnectPostgres opens a pgx pool and retries the first ping with
// exponential backoff until cfg.ConnectTimeout elapses.
func ConnectPostgres(ctx context.Context, cfg config.Database, logger *zap.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdle

	retryPolicy := backoff.NewExponentialBackOff()
	retryPolicy.MaxElapsedTime = cfg.ConnectTimeout
	retryPolicy.MaxInterval = 15 * time.Second

	logger.Info("connecting to postgres")

	var pool *pgxpool.Pool
	err = backoff.RetryNotify(
		func() error {
			p, err := pgxpool.NewWithConfig(ctx, poolCfg)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			if err := p.Ping(ctx); err != nil {
				p.Close()
				return fmt.Errorf("ping: %w", err)
			}
			pool = p
			return nil
		},
		backoff.WithContext(retryPolicy, ctx),
		func(err error, next time.Duration) {
			logger.Warn("postgres connection failed, retrying",
				zap.Error(err),
				zap.Duration("next_attempt_in", next))
		},
	)
	if err != nil {
		return nil, fmt.Errorf("connect postgres after retries: %w", err)
	}

	logger.Info("connected to postgres",
		zap.Int32("max_conns", poolCfg.MaxConns),
		zap.Int32("min_conns", poolCfg.MinConns))
	return pool, nil
}
