// Package postgres persists players, content and world boss state in
// PostgreSQL using pgx v5.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/idlerealm/worldboss/internal/config"
)

// Pool owns the connection pool shared by Store and PlayerRepository.
type Pool struct {
	pool          *pgxpool.Pool
	healthTimeout time.Duration
	logger        *zap.Logger
}

// NewPool connects to the database described by cfg. The initial ping is
// bounded by cfg.HealthTimeout, as is every later Health call.
//
// Precondition: cfg must pass config validation.
// Postcondition: Returns a reachable Pool or a non-nil error.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}
	p := &Pool{pool: pool, healthTimeout: cfg.HealthTimeout, logger: logger}
	if err := p.Health(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	logger.Debug("database pool ready",
		zap.String("host", cfg.Host),
		zap.Int32("max_conns", cfg.MaxConns),
		zap.Int32("min_conns", cfg.MinConns),
	)
	return p, nil
}

// Health pings the database, giving up after the configured health timeout.
// Failures are logged with the pool's connection counts.
func (p *Pool) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, p.healthTimeout)
	defer cancel()
	if err := p.pool.Ping(ctx); err != nil {
		st := p.pool.Stat()
		p.logger.Warn("database health check failed",
			zap.Error(err),
			zap.Duration("timeout", p.healthTimeout),
			zap.Int32("total_conns", st.TotalConns()),
			zap.Int32("acquired_conns", st.AcquiredConns()),
		)
		return fmt.Errorf("pinging database: %w", err)
	}
	return nil
}

// Store returns a boss store over this pool.
func (p *Pool) Store() *Store {
	return NewStore(p.pool)
}

// Players returns a player repository over this pool.
func (p *Pool) Players() *PlayerRepository {
	return NewPlayerRepository(p.pool)
}

// Close releases all pool resources. The pool is unusable afterwards.
func (p *Pool) Close() {
	p.pool.Close()
}
