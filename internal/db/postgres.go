package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/horaoen/axum-sqlx/internal/todo"
)

type pgPool struct {
	pool           *pgxpool.Pool
	acquireTimeout time.Duration
}

func openPostgres(ctx context.Context, o Options) (*pgPool, error) {
	cfg, err := pgxpool.ParseConfig(o.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}
	cfg.MaxConns = int32(o.MaxConns)
	cfg.ConnConfig.ConnectTimeout = o.ConnectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	return &pgPool{pool: pool, acquireTimeout: o.AcquireTimeout}, nil
}

func (p *pgPool) ListTodos(ctx context.Context) (todos []todo.Todo, err error) {
	ctx, span := startList(ctx, "postgresql")
	defer func() { endList(span, len(todos), err) }()

	acquireCtx, cancel := context.WithTimeout(ctx, p.acquireTimeout)
	conn, err := p.pool.Acquire(acquireCtx)
	cancel()
	if err != nil {
		return nil, acquireErr(ctx, acquireCtx, p.acquireTimeout, err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, listQuery)
	if err != nil {
		return nil, fmt.Errorf("query todos: %w", err)
	}
	defer rows.Close()
	return scanTodos(rows)
}

func (p *pgPool) Ping(ctx context.Context) error { return p.pool.Ping(ctx) }

func (p *pgPool) Close() { p.pool.Close() }
