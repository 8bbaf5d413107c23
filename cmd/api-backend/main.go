package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/k11v/gradewise/internal/apihttp"
	"github.com/k11v/gradewise/internal/counter"
	"github.com/k11v/gradewise/internal/greeting"
	"github.com/k11v/gradewise/internal/healthcheck"
	"github.com/k11v/gradewise/internal/postgresutil"
	"github.com/k11v/gradewise/internal/server"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func run() error {
	cfg, err := parseConfig(os.Environ())
	if err != nil {
		return err
	}

	log := newLogger(cfg.Development)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The API keeps serving without a database when none is configured or reachable.
	var db apihttp.Database
	var cnt apihttp.Counter = counter.NewMemory()
	if cfg.Postgres.DSN == "" {
		log.Warn("postgres DSN is empty, continuing without database")
	} else if err = healthcheck.Setup(cfg.Postgres.DSN); err != nil {
		log.Warn("failed to set up database, continuing without database", "error", err)
	} else {
		pool, err := postgresutil.NewPool(ctx, cfg.Postgres.DSN)
		if err != nil {
			log.Warn("failed to connect to database, continuing without database", "error", err)
		} else {
			defer pool.Close()
			db = healthcheck.NewDatabase(pool)
			cnt = counter.NewDatabase(pool)
		}
	}

	h := apihttp.NewHandler(db, cnt, greeting.NewGreeter(&cfg.Greeting), log, cfg.Development)
	s := server.New(&cfg.Server, log, h)
	return server.Run(ctx, &cfg.Server, log, s)
}

func newLogger(development bool) *slog.Logger {
	if development {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, nil))
}
