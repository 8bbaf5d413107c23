package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/k11v/gradewise/internal/pageload"
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

	loader, err := pageload.NewLoader(&cfg.Backend, nil)
	if err != nil {
		return err
	}

	h, err := NewHandler(loader, dataFS, log)
	if err != nil {
		return err
	}

	s := server.New(&cfg.Server, log, h.RequestLogger(h.Routes()))
	return server.Run(ctx, &cfg.Server, log, s)
}

func newLogger(development bool) *slog.Logger {
	if development {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, nil))
}
