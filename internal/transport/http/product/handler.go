package product

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	contracts "github.com/murkotick/product-store/internal/app/product/contracts"
	domain "github.com/murkotick/product-store/internal/app/product/domain"
)

// Pinger reports store connectivity for the health endpoint.
// *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler is a thin HTTP transport adapter. It validates input, maps
// JSON to and from domain values and delegates to the repositories.
type Handler struct {
	log       *logrus.Logger
	repo      contracts.ProductRepo
	readModel contracts.ReadModel
	pinger    Pinger
}

func NewHandler(log *logrus.Logger, repo contracts.ProductRepo, readModel contracts.ReadModel, pinger Pinger) *Handler {
	return &Handler{
		log:       log,
		repo:      repo,
		readModel: readModel,
		pinger:    pinger,
	}
}

// Routes mounts the product API onto a fresh router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", h.health)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.listProducts)
		r.Post("/", h.createProduct)
		r.Get("/search", h.searchProducts)

		r.Route("/{productID}", func(r chi.Router) {
			r.Get("/", h.getProduct)
			r.Put("/", h.updateProduct)
			r.Delete("/", h.deleteProduct)
		})
	})

	return r
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	req, err := decodeProductRequest(r)
	if err != nil {
		h.renderError(w, r, badRequest(err))
		return
	}
	if err := validateProductRequest(req); err != nil {
		h.renderError(w, r, badRequest(err))
		return
	}

	p, err := domain.NewProduct(req.Code, req.Name)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	id, err := h.repo.Create(r.Context(), p)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.log.WithFields(logrus.Fields{"id": id, "code": p.Code()}).Info("product created")

	w.Header().Set("Location", fmt.Sprintf("/products/%d", id))
	writeJSON(w, http.StatusCreated, toProductJSON(*domain.ReconstructProduct(id, p.Code(), p.Name())))
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.readModel.GetAllProducts(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductListJSON(products))
}

func (h *Handler) searchProducts(w http.ResponseWriter, r *http.Request) {
	example := contracts.ProductExample{}
	if code := r.URL.Query().Get("code"); code != "" {
		example.Code = &code
	}
	if name := r.URL.Query().Get("name"); name != "" {
		example.Name = &name
	}

	products, err := h.repo.FindByExample(r.Context(), example)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductListJSON(products))
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		h.renderError(w, r, badRequest(err))
		return
	}

	p, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductJSON(*p))
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		h.renderError(w, r, badRequest(err))
		return
	}

	req, err := decodeProductRequest(r)
	if err != nil {
		h.renderError(w, r, badRequest(err))
		return
	}
	if err := validateProductRequest(req); err != nil {
		h.renderError(w, r, badRequest(err))
		return
	}

	p, err := domain.NewProduct(req.Code, req.Name)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	updated := domain.ReconstructProduct(id, p.Code(), p.Name())
	if err := h.repo.Update(r.Context(), updated); err != nil {
		h.renderError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductJSON(*updated))
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		h.renderError(w, r, badRequest(err))
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		h.renderError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.pinger.Ping(r.Context()); err != nil {
		h.log.WithError(err).Error("health check failed")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func productID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("product id must be an integer")
	}
	return id, nil
}

func decodeProductRequest(r *http.Request) (productRequest, error) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return productRequest{}, fmt.Errorf("invalid json body")
	}
	return req, nil
}
