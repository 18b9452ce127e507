package repo

import (
	"context"

	"github.com/jackc/pgx/v5"

	domain "github.com/murkotick/product-store/internal/app/product/domain"
	"github.com/murkotick/product-store/internal/models/m_product"
)

// ReadModel is the pgx implementation of contracts.ReadModel.
type ReadModel struct {
	q Querier
}

func NewReadModel(q Querier) *ReadModel {
	return &ReadModel{q: q}
}

// GetAllProducts runs the fixed read statement and materializes every
// row through the row mapper. The slice keeps the store's native return
// order, which is not a contract. An empty table yields an empty
// result, not an error; a row the mapper rejects fails the whole call.
func (rm *ReadModel) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := rm.q.Query(ctx, m_product.StmtSelectAll)
	if err != nil {
		return nil, classify(err)
	}

	products, err := pgx.CollectRows(rows, mapProductRow)
	if err != nil {
		return nil, classify(err)
	}
	return products, nil
}
