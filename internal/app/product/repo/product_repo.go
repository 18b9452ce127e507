package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	contracts "github.com/murkotick/product-store/internal/app/product/contracts"
	domain "github.com/murkotick/product-store/internal/app/product/domain"
	"github.com/murkotick/product-store/internal/models/m_product"
)

// ProductRepo is the pgx implementation of the write-side repository.
// Every read path goes through the row mapper, so one decode path
// produces every materialized Product.
type ProductRepo struct {
	q Querier
}

func NewProductRepo(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create inserts the product and returns the id the store assigned.
func (r *ProductRepo) Create(ctx context.Context, p *domain.Product) (int64, error) {
	var id int64
	if err := r.q.QueryRow(ctx, m_product.StmtInsert, p.Code(), p.Name()).Scan(&id); err != nil {
		return 0, classify(err)
	}
	return id, nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	return r.one(ctx, m_product.StmtSelectByID, id)
}

func (r *ProductRepo) GetByCode(ctx context.Context, code string) (*domain.Product, error) {
	return r.one(ctx, m_product.StmtSelectByCode, code)
}

func (r *ProductRepo) one(ctx context.Context, stmt string, arg any) (*domain.Product, error) {
	rows, err := r.q.Query(ctx, stmt, arg)
	if err != nil {
		return nil, classify(err)
	}

	p, err := pgx.CollectOneRow(rows, mapProductRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, classify(err)
	}
	return &p, nil
}

// Update replaces code and name for an existing id.
func (r *ProductRepo) Update(ctx context.Context, p *domain.Product) error {
	tag, err := r.q.Exec(ctx, m_product.StmtUpdate, p.ID(), p.Code(), p.Name())
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, m_product.StmtDelete, id)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// FindByExample returns every product matching the example's set
// fields. Result ordering is store-native and unspecified.
func (r *ProductRepo) FindByExample(ctx context.Context, example contracts.ProductExample) ([]domain.Product, error) {
	stmt, args := m_product.SelectByExample(example.Code, example.Name)

	rows, err := r.q.Query(ctx, stmt, args...)
	if err != nil {
		return nil, classify(err)
	}

	products, err := pgx.CollectRows(rows, mapProductRow)
	if err != nil {
		return nil, classify(err)
	}
	return products, nil
}
