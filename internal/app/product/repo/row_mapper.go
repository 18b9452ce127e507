package repo

import (
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/murkotick/product-store/internal/app/product/domain"
	"github.com/murkotick/product-store/internal/models/m_product"
)

// mapProductRow converts one result row into a Product through named
// column access. All three columns must be present in the row; the
// table's constraints keep the cells non-null, so the mapper does no
// null handling beyond rejecting values it cannot coerce. It is a
// pgx.RowToFunc, so pgx.CollectRows and pgx.CollectOneRow drive it
// directly.
func mapProductRow(row pgx.CollectableRow) (domain.Product, error) {
	values, err := row.Values()
	if err != nil {
		return domain.Product{}, classify(err)
	}

	fields := row.FieldDescriptions()
	idx := make(map[string]int, len(fields))
	for i, fd := range fields {
		idx[fd.Name] = i
	}

	id, err := int64Column(idx, values, m_product.ColID)
	if err != nil {
		return domain.Product{}, err
	}
	code, err := textColumn(idx, values, m_product.ColCode)
	if err != nil {
		return domain.Product{}, err
	}
	name, err := textColumn(idx, values, m_product.ColName)
	if err != nil {
		return domain.Product{}, err
	}

	return *domain.ReconstructProduct(id, code, name), nil
}

// int64Column reads an integer cell by column name. Narrower integer
// wire types widen to int64; nothing else coerces.
func int64Column(idx map[string]int, values []any, col string) (int64, error) {
	i, ok := idx[col]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingColumn, col)
	}

	switch v := values[i].(type) {
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case int16:
		return int64(v), nil
	default:
		return 0, fmt.Errorf("%w: column %s holds %T, want integer", ErrTypeMismatch, col, values[i])
	}
}

func textColumn(idx map[string]int, values []any, col string) (string, error) {
	i, ok := idx[col]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingColumn, col)
	}

	s, ok := values[i].(string)
	if !ok {
		return "", fmt.Errorf("%w: column %s holds %T, want text", ErrTypeMismatch, col, values[i])
	}
	return s, nil
}
