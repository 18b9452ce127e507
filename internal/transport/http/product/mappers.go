package product

import (
	"encoding/json"
	"net/http"

	domain "github.com/murkotick/product-store/internal/app/product/domain"
)

// productJSON is the wire shape of a product.
type productJSON struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// productRequest is the create/update payload.
type productRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func toProductJSON(p domain.Product) productJSON {
	return productJSON{
		ID:   p.ID(),
		Code: p.Code(),
		Name: p.Name(),
	}
}

// toProductListJSON always returns a non-nil slice so an empty catalog
// encodes as [] rather than null.
func toProductListJSON(items []domain.Product) []productJSON {
	out := make([]productJSON, 0, len(items))
	for _, p := range items {
		out = append(out, toProductJSON(p))
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
