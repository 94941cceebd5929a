// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/canonical/glassworks-service/internal/logging"
	"github.com/canonical/glassworks-service/internal/monitoring"
	"github.com/canonical/glassworks-service/internal/tracing"
)

const defaultTxTimeout = time.Minute

type Config struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	TxTimeout       time.Duration
	TracingEnabled  bool
}

type scopeKey struct{}

// txScope is the transaction shared by every statement issued under one
// WithTx call. BEGIN is only sent when the first statement runs.
type txScope struct {
	mu      sync.Mutex
	db      *sql.DB
	parent  context.Context
	timeout time.Duration

	tx     *sql.Tx
	cancel context.CancelFunc
	done   bool
}

func scopeFrom(ctx context.Context) *txScope {
	s, _ := ctx.Value(scopeKey{}).(*txScope)
	return s
}

func (s *txScope) runner() (*sql.Tx, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done {
		return nil, sql.ErrTxDone
	}

	if s.tx != nil {
		return s.tx, nil
	}

	// the transaction must survive the client hanging up mid request
	ctx, cancel := context.WithTimeout(context.WithoutCancel(s.parent), s.timeout)
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		cancel()
		return nil, err
	}

	s.tx, s.cancel = tx, cancel
	return tx, nil
}

func (s *txScope) end(commit bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done {
		return nil
	}
	s.done = true

	if s.tx == nil {
		return nil
	}
	defer s.cancel()

	if commit {
		return s.tx.Commit()
	}

	if err := s.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}
	return nil
}

type DBClient struct {
	pool *pgxpool.Pool
	db   *sql.DB

	txTimeout time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (d *DBClient) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

func (d *DBClient) Statement(ctx context.Context) sq.StatementBuilderType {
	scope := scopeFrom(ctx)
	if scope == nil {
		return d.builder().RunWith(d.db)
	}

	tx, err := scope.runner()
	if err != nil {
		// statements still run, outside the transaction
		d.logger.Errorf("failed to open transaction: %v", err)
		return d.builder().RunWith(d.db)
	}

	return d.builder().RunWith(tx)
}

// WithTx runs fn in a transaction committed when fn returns nil. Nested
// calls join the outermost transaction.
func (d *DBClient) WithTx(ctx context.Context, fn func(context.Context) error) (err error) {
	if scopeFrom(ctx) != nil {
		return fn(ctx)
	}

	scope := &txScope{db: d.db, parent: ctx, timeout: d.txTimeout}

	defer func() {
		// only reached with an open scope when fn panicked
		if rbErr := scope.end(false); rbErr != nil {
			d.logger.Errorf("failed to rollback transaction: %v", rbErr)
		}
	}()

	if err := fn(context.WithValue(ctx, scopeKey{}, scope)); err != nil {
		if rbErr := scope.end(false); rbErr != nil {
			d.logger.Errorf("failed to rollback transaction: %v", rbErr)
		}
		return err
	}

	if err := scope.end(true); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Ping checks connectivity and feeds the dependency availability gauge.
func (d *DBClient) Ping(ctx context.Context) error {
	ctx, span := d.tracer.Start(ctx, "db.DBClient.Ping")
	defer span.End()

	err := d.db.PingContext(ctx)

	available := 1.0
	if err != nil {
		available = 0
	}
	if mErr := d.monitor.SetDependencyAvailability(map[string]string{"component": "postgres"}, available); mErr != nil {
		d.logger.Debugf("failed to set db availability metric: %v", mErr)
	}

	return err
}

func (d *DBClient) Close() {
	if d.db != nil {
		_ = d.db.Close()
	}

	if d.pool != nil {
		d.pool.Close()
	}
}

func poolConfig(cfg Config) (*pgxpool.Config, error) {
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("invalid DSN: %w", err)
	}

	if cfg.TracingEnabled {
		// uses the global TracerProvider set up by internal/tracing
		pc.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	if cfg.MaxConns > 0 {
		pc.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		pc.MinConns = cfg.MinConns
	}
	if cfg.MaxConnLifetime > 0 {
		pc.MaxConnLifetime = cfg.MaxConnLifetime
		pc.MaxConnLifetimeJitter = cfg.MaxConnLifetime / 10
	}
	if cfg.MaxConnIdleTime > 0 {
		pc.MaxConnIdleTime = cfg.MaxConnIdleTime
	}

	return pc, nil
}

// NewDBClient opens a pgx pool and exposes it through database/sql for
// squirrel. The database must be reachable.
func NewDBClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*DBClient, error) {
	pc, err := poolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), pc)
	if err != nil {
		return nil, fmt.Errorf("failed to create db pool: %w", err)
	}

	if cfg.TracingEnabled {
		if err := otelpgx.RecordStats(pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to start metrics collection for database: %w", err)
		}
	}

	d := &DBClient{
		pool:      pool,
		db:        stdlib.OpenDBFromPool(pool),
		txTimeout: cfg.TxTimeout,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}

	if d.txTimeout <= 0 {
		d.txTimeout = defaultTxTimeout
	}

	if err := d.Ping(context.Background()); err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return d, nil
}
