package contracts

import (
	"context"

	domain "github.com/murkotick/product-store/internal/app/product/domain"
)

// ReadModel is the query side of the products table.
type ReadModel interface {
	// GetAllProducts reads every row of the products table through the
	// fixed statement and materializes the full result. The slice order
	// is whatever the store returned; no ordering is contracted and
	// callers must not rely on one.
	GetAllProducts(ctx context.Context) ([]domain.Product, error)
}
