package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/horaoen/axum-sqlx/internal/config"
	dbpkg "github.com/horaoen/axum-sqlx/internal/db"
	httpx "github.com/horaoen/axum-sqlx/internal/http"
	"github.com/horaoen/axum-sqlx/internal/otel"
)

const telemetryShutdownTimeout = 5 * time.Second

func main() {
	log.SetPrefix("[TODOS] ")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	shutdown, err := otel.Setup(ctx, otel.Settings{Enabled: cfg.OTelEnabled, Endpoint: cfg.OTelEndpoint})
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), telemetryShutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	pool, err := dbpkg.Open(ctx, dbpkg.Options{
		URL:            cfg.DatabaseURL,
		MaxConns:       cfg.MaxConns,
		AcquireTimeout: cfg.AcquireTimeout,
		ConnectTimeout: cfg.ConnectTimeout,
	})
	if err != nil {
		return fmt.Errorf("can't connect to database: %w", err)
	}
	defer pool.Close()

	srv := httpx.NewServer(pool, httpx.WithRenderBody(cfg.RenderBody))
	return srv.ListenAndServe(ctx, config.ListenAddr)
}
