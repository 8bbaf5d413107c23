package main

import (
	"github.com/caarlos0/env/v11"

	"github.com/k11v/gradewise/internal/greeting"
	"github.com/k11v/gradewise/internal/postgresutil"
	"github.com/k11v/gradewise/internal/server"
)

// config holds the application configuration.
type config struct {
	Development bool                `env:"GRADEWISE_DEVELOPMENT"`
	Greeting    greeting.Config     `envPrefix:"GRADEWISE_GREETING_"`
	Postgres    postgresutil.Config `envPrefix:"GRADEWISE_POSTGRES_"`
	Server      server.Config       `envPrefix:"GRADEWISE_SERVER_"`
}

// parseConfig parses the application configuration from the environment variables.
func parseConfig(environ []string) (*config, error) {
	var cfg config

	err := env.ParseWithOptions(&cfg, env.Options{
		Environment: env.ToMap(environ),
	})
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
