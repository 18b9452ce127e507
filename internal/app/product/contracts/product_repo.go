package contracts

import (
	"context"

	domain "github.com/murkotick/product-store/internal/app/product/domain"
)

// ProductExample carries optional match criteria for query-by-example
// reads. Nil fields are unconstrained.
type ProductExample struct {
	Code *string
	Name *string
}

// ProductRepo is the write-side repository interface for products.
// Implementations take their connection handle at construction and own
// no lifecycle beyond the statements they run.
type ProductRepo interface {
	// Create inserts the product and returns the store-assigned id.
	// A duplicate code surfaces as domain.ErrProductCodeTaken.
	Create(ctx context.Context, p *domain.Product) (int64, error)

	// GetByID loads one product; domain.ErrProductNotFound when absent.
	GetByID(ctx context.Context, id int64) (*domain.Product, error)

	// GetByCode loads one product by its unique code;
	// domain.ErrProductNotFound when absent.
	GetByCode(ctx context.Context, code string) (*domain.Product, error)

	// Update replaces code and name for an existing id.
	Update(ctx context.Context, p *domain.Product) error

	// Delete removes the product; domain.ErrProductNotFound when
	// nothing was deleted.
	Delete(ctx context.Context, id int64) error

	// FindByExample returns every product matching the example.
	// Result ordering is store-native and unspecified.
	FindByExample(ctx context.Context, example ProductExample) ([]domain.Product, error)
}
