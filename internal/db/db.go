// Package db provides the bounded connection pool the listing handler reads
// todos through. The backend is chosen from the DATABASE_URL scheme.
package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/horaoen/axum-sqlx/internal/todo"
)

const listQuery = `
SELECT id, description, done
FROM todos
ORDER BY id`

var (
	// ErrAcquireTimeout is returned when no pooled connection frees up in time.
	ErrAcquireTimeout = errors.New("timed out acquiring connection")
	// ErrUnsupportedScheme is returned by Open for an unknown DATABASE_URL scheme.
	ErrUnsupportedScheme = errors.New("unsupported database scheme")
)

var tracer = otel.Tracer("github.com/horaoen/axum-sqlx/internal/db")

// Pool is a process-wide handle to the todo store.
type Pool interface {
	// ListTodos returns every todo ordered by ascending id, using one pooled
	// connection that is released before returning.
	ListTodos(ctx context.Context) ([]todo.Todo, error)
	Ping(ctx context.Context) error
	Close()
}

// Options configures Open.
type Options struct {
	URL            string
	MaxConns       int
	AcquireTimeout time.Duration
	ConnectTimeout time.Duration
}

func (o Options) withDefaults() Options {
	if o.MaxConns <= 0 {
		o.MaxConns = 5
	}
	if o.AcquireTimeout <= 0 {
		o.AcquireTimeout = 3 * time.Second
	}
	if o.ConnectTimeout <= 0 {
		o.ConnectTimeout = 10 * time.Second
	}
	return o
}

// Open builds the pool for o.URL and verifies it with a ping.
func Open(ctx context.Context, o Options) (Pool, error) {
	o = o.withDefaults()
	if o.URL == "" {
		return nil, errors.New("database URL is required")
	}

	var (
		p   Pool
		err error
	)
	switch scheme(o.URL) {
	case "postgres", "postgresql":
		p, err = openPostgres(ctx, o)
	case "sqlite", "sqlite3", "file", "":
		// No scheme means a bare sqlite path such as todos.db.
		p, err = openSQLite(o)
	case "mysql":
		p, err = openMySQL(o)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme(o.URL))
	}
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, o.ConnectTimeout)
	defer cancel()
	if err := p.Ping(pingCtx); err != nil {
		p.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return p, nil
}

func scheme(url string) string {
	i := strings.Index(url, ":")
	if i <= 0 {
		return ""
	}
	return strings.ToLower(url[:i])
}

// acquireErr tells an acquisition timeout apart from the caller giving up.
func acquireErr(ctx, acquireCtx context.Context, timeout time.Duration, err error) error {
	if ctx.Err() == nil && errors.Is(acquireCtx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w after %s", ErrAcquireTimeout, timeout)
	}
	return fmt.Errorf("acquire connection: %w", err)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanTodos(rows rowScanner) ([]todo.Todo, error) {
	var out []todo.Todo
	for rows.Next() {
		var t todo.Todo
		if err := rows.Scan(&t.ID, &t.Description, &t.Done); err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read todos: %w", err)
	}
	return out, nil
}

func startList(ctx context.Context, system string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "todos.list",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("db.system", system)),
	)
}

func endList(span trace.Span, n int, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(attribute.Int("todos.count", n))
	}
	span.End()
}
