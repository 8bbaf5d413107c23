package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/k11v/gradewise/internal/healthcheck"
)

func main() {
	if err := run(os.Environ()); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func run(environ []string) error {
	cfg, err := parseConfig(environ)
	if err != nil {
		return err
	}
	if cfg.Postgres.DSN == "" {
		return errors.New("GRADEWISE_POSTGRES_DSN is unset")
	}

	return healthcheck.Setup(cfg.Postgres.DSN)
}
