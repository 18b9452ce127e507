//go:build integration

package e2e

import (
	"context"
	"fmt"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/murkotick/product-store/internal/app/product/repo"
	"github.com/murkotick/product-store/internal/pkg/pgdb"
	"github.com/murkotick/product-store/internal/pkg/pgtest"
	producthttp "github.com/murkotick/product-store/internal/transport/http/product"
)

var (
	pool    *pgxpool.Pool
	server  *httptest.Server
	baseURL string
)

// TestMain provisions one PostgreSQL instance for the whole package and
// serves the product API over a real HTTP listener. Set TEST_DATABASE_URL
// to reuse an external server instead of starting a container.
func TestMain(m *testing.M) {
	ctx, cancel := context.WithTimeout(context.Background(), 4*time.Minute)
	defer cancel()

	dsn := os.Getenv("TEST_DATABASE_URL")

	var container *pgtest.Container
	if dsn == "" {
		// Use a unique database per "go test" run to avoid id collisions
		// against a reused Docker daemon.
		databaseName := fmt.Sprintf("e2e_%s", strings.ReplaceAll(uuid.New().String(), "-", ""))

		var err error
		container, err = pgtest.StartContainer(ctx, pgtest.WithDatabase(databaseName))
		if err != nil {
			panic(fmt.Sprintf("start postgres container: %v", err))
		}
		dsn = container.ConnectionString("sslmode=disable")
	}

	var err error
	pool, err = pgdb.Open(ctx, pgdb.Config{URL: dsn})
	if err != nil {
		panic(fmt.Sprintf("connect: %v", err))
	}

	// Apply schema. The DDL is idempotent, so pointing TEST_DATABASE_URL
	// at an already-migrated database is fine.
	ddlPath := filepath.Join("..", "..", "migrations", "001_initial_schema.sql")
	ddl, err := os.ReadFile(ddlPath)
	if err != nil {
		panic(fmt.Sprintf("read %s: %v", ddlPath, err))
	}
	if err := pgdb.ApplyDDL(ctx, pool, string(ddl)); err != nil {
		panic(fmt.Sprintf("apply %s: %v", ddlPath, err))
	}

	log := logrus.New()
	log.SetOutput(io.Discard)
	handler := producthttp.NewHandler(log, repo.NewProductRepo(pool), repo.NewReadModel(pool), pool)
	server = httptest.NewServer(handler.Routes())
	baseURL = server.URL

	code := m.Run()

	server.Close()
	pool.Close()
	if container != nil {
		_ = container.Terminate(context.Background())
	}

	os.Exit(code)
}
