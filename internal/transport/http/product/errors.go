package product

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	domain "github.com/murkotick/product-store/internal/app/product/domain"
	repo "github.com/murkotick/product-store/internal/app/product/repo"
)

// errBadRequest marks transport-level input failures so they map to 400
// without inventing a parallel sentinel per field.
var errBadRequest = errors.New("bad request")

func badRequest(err error) error {
	return fmt.Errorf("%w: %v", errBadRequest, err)
}

// httpStatus translates sentinel errors into HTTP statuses. Unknown
// errors become 500.
func httpStatus(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, domain.ErrEmptyProductCode),
		errors.Is(err, domain.ErrEmptyProductName),
		errors.Is(err, domain.ErrProductCodeTooLong),
		errors.Is(err, domain.ErrProductNameTooLong):
		return http.StatusBadRequest

	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrProductCodeTaken):
		return http.StatusConflict

	case errors.Is(err, repo.ErrUnavailable):
		return http.StatusServiceUnavailable

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout

	default:
		// repo.ErrInvalidQuery and mapping failures land here: they are
		// server-side defects, never the client's fault.
		return http.StatusInternalServerError
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// renderError writes the JSON error body. The error text reaches the
// client unchanged; server-side failures are also logged.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := httpStatus(err)
	if status >= http.StatusInternalServerError {
		h.log.WithError(err).WithField("path", r.URL.Path).Error("request failed")
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
