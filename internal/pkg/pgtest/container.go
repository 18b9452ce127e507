// Package pgtest provisions throwaway PostgreSQL instances for tests.
// The code under test consumes only the resulting connection string and
// never learns how the database was provisioned: a per-test container,
// a shared one, or an externally supplied server all look the same.
package pgtest

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// DefaultImage is the PostgreSQL image used when no override is given.
	DefaultImage = "postgres:16-alpine"

	// DefaultPort is the in-container PostgreSQL port.
	DefaultPort = "5432"

	DefaultDatabase = "products"
	DefaultUsername = "postgres"
	DefaultPassword = "postgres"
)

// readyLog is printed twice by the entrypoint: once for the init
// bootstrap and once for the final server.
const readyLog = "database system is ready to accept connections"

// Container represents a running PostgreSQL container.
type Container struct {
	testcontainers.Container
	host     string
	port     string
	database string
	username string
	password string
}

// Option is a functional option for configuring the container.
type Option func(*containerOptions)

type containerOptions struct {
	image       string
	database    string
	username    string
	password    string
	initScripts []string
	waitTimeout time.Duration
}

// WithImage sets a custom PostgreSQL image.
func WithImage(image string) Option {
	return func(o *containerOptions) {
		o.image = image
	}
}

// WithDatabase sets the database created on first boot.
func WithDatabase(name string) Option {
	return func(o *containerOptions) {
		o.database = name
	}
}

// WithUsername sets the superuser name.
func WithUsername(username string) Option {
	return func(o *containerOptions) {
		o.username = username
	}
}

// WithPassword sets the superuser password.
func WithPassword(password string) Option {
	return func(o *containerOptions) {
		o.password = password
	}
}

// WithInitScripts mounts SQL files into the image's init directory.
// The entrypoint runs them on first boot in lexical filename order.
func WithInitScripts(paths ...string) Option {
	return func(o *containerOptions) {
		o.initScripts = append(o.initScripts, paths...)
	}
}

// WithWaitTimeout bounds how long StartContainer waits for readiness.
func WithWaitTimeout(timeout time.Duration) Option {
	return func(o *containerOptions) {
		o.waitTimeout = timeout
	}
}

// StartContainer starts a PostgreSQL container and blocks until it
// accepts connections.
func StartContainer(ctx context.Context, opts ...Option) (*Container, error) {
	options := &containerOptions{
		image:       DefaultImage,
		database:    DefaultDatabase,
		username:    DefaultUsername,
		password:    DefaultPassword,
		waitTimeout: 60 * time.Second,
	}
	for _, opt := range opts {
		opt(options)
	}

	req := testcontainers.ContainerRequest{
		Image:        options.image,
		ExposedPorts: []string{DefaultPort + "/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       options.database,
			"POSTGRES_USER":     options.username,
			"POSTGRES_PASSWORD": options.password,
		},
		WaitingFor: wait.ForAll(
			wait.ForLog(readyLog).
				WithOccurrence(2).
				WithStartupTimeout(options.waitTimeout),
			wait.ForListeningPort(nat.Port(DefaultPort+"/tcp")),
		),
	}

	for _, script := range options.initScripts {
		req.Files = append(req.Files, testcontainers.ContainerFile{
			HostFilePath:      script,
			ContainerFilePath: "/docker-entrypoint-initdb.d/" + filepath.Base(script),
			FileMode:          0o644,
		})
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}

	mapped, err := container.MappedPort(ctx, nat.Port(DefaultPort))
	if err != nil {
		container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get mapped port: %w", err)
	}

	return &Container{
		Container: container,
		host:      host,
		port:      mapped.Port(),
		database:  options.database,
		username:  options.username,
		password:  options.password,
	}, nil
}

// ConnectionString returns a DSN for the running instance. Extra params
// are appended as query parameters, e.g. "sslmode=disable".
func (c *Container) ConnectionString(params ...string) string {
	dsn := fmt.Sprintf("postgres://%s:%s@%s/%s",
		url.QueryEscape(c.username),
		url.QueryEscape(c.password),
		net.JoinHostPort(c.host, c.port),
		c.database,
	)
	if len(params) > 0 {
		dsn += "?" + strings.Join(params, "&")
	}
	return dsn
}

// Database returns the name of the database created on first boot.
func (c *Container) Database() string {
	return c.database
}
