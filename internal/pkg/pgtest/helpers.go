//go:build integration

package pgtest

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/murkotick/product-store/internal/models/m_product"
	"github.com/murkotick/product-store/internal/pkg/pgdb"
)

// StartPostgres runs a disposable PostgreSQL instance for one test and
// returns its connection string. Init scripts run on first boot in
// lexical filename order. The container terminates when the test ends.
func StartPostgres(t testing.TB, initScripts ...string) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()

	opts := []testcontainers.ContainerCustomizer{
		postgres.WithDatabase(DefaultDatabase),
		postgres.WithUsername(DefaultUsername),
		postgres.WithPassword(DefaultPassword),
		postgres.BasicWaitStrategies(),
	}
	if len(initScripts) > 0 {
		opts = append(opts, postgres.WithInitScripts(initScripts...))
	}

	ctr, err := postgres.Run(ctx, DefaultImage, opts...)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	return dsn
}

// NewPool opens a pgx pool against dsn and closes it when the test
// ends.
func NewPool(t testing.TB, dsn string) *pgxpool.Pool {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgdb.Open(ctx, pgdb.Config{URL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

// ProductRow is a fixture row for SeedProducts.
type ProductRow struct {
	Code string
	Name string
}

// SeedProducts inserts fixture rows in a single transaction and
// returns the assigned ids in insertion order. The store's uniqueness
// constraint on code fails the seed here, before the code under test
// ever runs.
func SeedProducts(t testing.TB, pool *pgxpool.Pool, rows []ProductRow) []int64 {
	t.Helper()
	ctx := context.Background()

	ids := make([]int64, 0, len(rows))
	err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		for _, r := range rows {
			var id int64
			if err := tx.QueryRow(ctx, m_product.StmtInsert, r.Code, r.Name).Scan(&id); err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return nil
	})
	require.NoError(t, err)
	return ids
}

// TruncateProducts empties the products table between tests sharing
// one database.
func TruncateProducts(t testing.TB, pool *pgxpool.Pool) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		"truncate table "+m_product.TableName+" restart identity")
	require.NoError(t, err)
}

// InitScript returns the path of the canonical products DDL script.
// The path is resolved relative to this source file, so it works from
// any package's test binary regardless of working directory.
func InitScript() string {
	return scriptPath("init-db.sql")
}

// SeedScript returns the path of the canonical two-product seed script.
func SeedScript() string {
	return scriptPath("seed-products.sql")
}

func scriptPath(name string) string {
	_, self, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(self), "testdata", name)
}
