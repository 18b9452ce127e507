package repo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/murkotick/product-store/internal/app/product/domain"
)

// Repository errors. They separate failures to reach the store from
// failures of the store to accept a statement, and both from
// row-to-record mapping failures.
var (
	// ErrUnavailable indicates the backing store could not be reached:
	// connection refused, pool closed, network failure.
	ErrUnavailable = errors.New("store unavailable")

	// ErrInvalidQuery indicates the store answered but rejected the
	// statement: the SQL is not valid in the store's dialect or names
	// objects that do not exist there.
	ErrInvalidQuery = errors.New("query rejected by store")

	// ErrMissingColumn indicates a required named column was absent
	// from a result row, which signals a schema or query mismatch.
	ErrMissingColumn = errors.New("required column missing from row")

	// ErrTypeMismatch indicates a result cell could not be coerced to
	// the declared Go type.
	ErrTypeMismatch = errors.New("column type mismatch")
)

// SQLSTATE values and classes this package reacts to.
const (
	pgCodeUniqueViolation = "23505"

	pgClassConnection   = "08"
	pgClassIntervention = "57"
)

// classify maps a driver error onto the repository taxonomy. Mapping
// errors pass through unchanged. A *pgconn.PgError means the server
// answered, so it classifies by SQLSTATE: connection-class failures
// stay connectivity errors, a duplicate code becomes the domain error,
// and any other rejection is a dialect/statement problem. Errors
// without a PgError never reached the store.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrMissingColumn), errors.Is(err, ErrTypeMismatch):
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgCodeUniqueViolation:
			return fmt.Errorf("%w: %w", domain.ErrProductCodeTaken, err)
		case pgClass(pgErr.Code) == pgClassConnection,
			pgClass(pgErr.Code) == pgClassIntervention:
			return fmt.Errorf("%w: %w", ErrUnavailable, err)
		default:
			return fmt.Errorf("%w: %w", ErrInvalidQuery, err)
		}
	}

	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}

func pgClass(code string) string {
	if len(code) < 2 {
		return code
	}
	return code[:2]
}
