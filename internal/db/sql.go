package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/horaoen/axum-sqlx/internal/todo"
)

// sqlPool backs the database/sql drivers. MaxOpenConns is the ceiling and
// Conn blocks until a connection frees up or the acquire deadline passes.
type sqlPool struct {
	db             *sql.DB
	system         string
	acquireTimeout time.Duration
}

func newSQLPool(driver, dsn, system string, o Options) (*sqlPool, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", system, err)
	}
	db.SetMaxOpenConns(o.MaxConns)
	db.SetMaxIdleConns(o.MaxConns)
	return &sqlPool{db: db, system: system, acquireTimeout: o.AcquireTimeout}, nil
}

func (p *sqlPool) ListTodos(ctx context.Context) (todos []todo.Todo, err error) {
	ctx, span := startList(ctx, p.system)
	defer func() { endList(span, len(todos), err) }()

	acquireCtx, cancel := context.WithTimeout(ctx, p.acquireTimeout)
	conn, err := p.db.Conn(acquireCtx)
	cancel()
	if err != nil {
		return nil, acquireErr(ctx, acquireCtx, p.acquireTimeout, err)
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, listQuery)
	if err != nil {
		return nil, fmt.Errorf("query todos: %w", err)
	}
	defer rows.Close()
	return scanTodos(rows)
}

func (p *sqlPool) Ping(ctx context.Context) error { return p.db.PingContext(ctx) }

func (p *sqlPool) Close() { _ = p.db.Close() }
