// Package postgrestest starts disposable PostgreSQL containers for tests.
package postgrestest

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/k11v/gradewise/internal/healthcheck"
)

// Setup starts a PostgreSQL container and applies the migrations.
// The returned teardown terminates the container.
func Setup(ctx context.Context) (connectionString string, teardown func() error, err error) {
	req := testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image: "postgres:16-alpine",
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_DB":       "postgres",
			},
			ExposedPorts: []string{"5432/tcp"},
			WaitingFor: wait.ForAll(
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
				wait.ForListeningPort("5432/tcp"),
			).WithDeadline(60 * time.Second),
		},
		Started: true,
	}
	container, err := testcontainers.GenericContainer(ctx, req)
	maybeTeardown := func() error {
		return testcontainers.TerminateContainer(container)
	}
	defer func() {
		if maybeTeardown != nil {
			_ = maybeTeardown()
		}
	}()
	if err != nil {
		return "", nil, err
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", nil, err
	}
	mappedPort, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return "", nil, err
	}

	connectionString = fmt.Sprintf(
		"postgres://postgres:postgres@%s/postgres?sslmode=disable",
		net.JoinHostPort(host, mappedPort.Port()),
	)
	if err = healthcheck.Setup(connectionString); err != nil {
		return "", nil, err
	}

	teardown = maybeTeardown
	maybeTeardown = nil
	return connectionString, teardown, nil
}
