//go:build integration

package repo

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/murkotick/product-store/internal/app/product/domain"
	"github.com/murkotick/product-store/internal/models/m_product"
	"github.com/murkotick/product-store/internal/pkg/pgdb"
	"github.com/murkotick/product-store/internal/pkg/pgtest"
)

// TestGetAllProducts_SeededCatalog reads back the canonical two-row
// seed. The store contracts no row order, so the comparison is by set.
func TestGetAllProducts_SeededCatalog(t *testing.T) {
	dsn := pgtest.StartPostgres(t, pgtest.InitScript(), pgtest.SeedScript())
	rm := NewReadModel(pgtest.NewPool(t, dsn))
	ctx := testContext(t)

	products, err := rm.GetAllProducts(ctx)
	require.NoError(t, err)

	assert.ElementsMatch(t, []domain.Product{
		*domain.ReconstructProduct(1, "P100", "Product 1"),
		*domain.ReconstructProduct(2, "P200", "Product 2"),
	}, products)
}

// TestGetAllProducts_EmptyTable verifies an empty table is an empty
// result, not an error.
func TestGetAllProducts_EmptyTable(t *testing.T) {
	dsn := pgtest.StartPostgres(t, pgtest.InitScript())
	rm := NewReadModel(pgtest.NewPool(t, dsn))
	ctx := testContext(t)

	products, err := rm.GetAllProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

// TestGetAllProducts_MissingTable runs the fixed statement against a
// database that never got the schema. The store's rejection must
// surface as ErrInvalidQuery, not as a silently empty result.
func TestGetAllProducts_MissingTable(t *testing.T) {
	dsn := pgtest.StartPostgres(t)
	rm := NewReadModel(pgtest.NewPool(t, dsn))
	ctx := testContext(t)

	_, err := rm.GetAllProducts(ctx)
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

// TestGetAllProducts_MapperFailureAbortsRead verifies a row the mapper
// rejects fails the whole call with the mapper's error unchanged: the
// schema here declares id as text, which decodes but cannot coerce.
func TestGetAllProducts_MapperFailureAbortsRead(t *testing.T) {
	dsn := pgtest.StartPostgres(t)
	pool := pgtest.NewPool(t, dsn)
	ctx := testContext(t)

	require.NoError(t, pgdb.ApplyDDL(ctx, pool,
		`create table products (id text primary key, code varchar(255) not null unique, name varchar(255) not null);
		 insert into products (id, code, name) values ('one', 'P100', 'Product 1');`))

	rm := NewReadModel(pool)

	_, err := rm.GetAllProducts(ctx)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

// TestRowMapper_NarrowProjectionFailsWholeRead drives the mapper with a
// projection that lacks the name column. The whole read fails with
// ErrMissingColumn instead of yielding partial records.
func TestRowMapper_NarrowProjectionFailsWholeRead(t *testing.T) {
	dsn := pgtest.StartPostgres(t, pgtest.InitScript(), pgtest.SeedScript())
	pool := pgtest.NewPool(t, dsn)
	ctx := testContext(t)

	rows, err := pool.Query(ctx, "select "+m_product.ColID+", "+m_product.ColCode+" from "+m_product.TableName)
	require.NoError(t, err)

	_, err = pgx.CollectRows(rows, mapProductRow)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.ErrorContains(t, err, m_product.ColName)
}
