package masterdata

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/warebridge/warebridge/internal/platform/httpx"
)

// Handler serves the normalized master-data API.
type Handler struct {
	logger *slog.Logger
	client *Client
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, client *Client) *Handler {
	return &Handler{logger: logger, client: client}
}

func (h *Handler) listParams(r *http.Request) ListParams {
	return ListParams{
		Page:           httpx.QueryInt(r, "page", 1),
		Limit:          httpx.QueryInt(r, "limit", 20),
		Search:         r.URL.Query().Get("search"),
		IncludeDeleted: r.URL.Query().Get("include_deleted") == "true",
	}
}

func (h *Handler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	result, err := h.client.ListSuppliers(r.Context(), h.listParams(r))
	if err != nil {
		h.logger.Error("list suppliers failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) ListWarehouses(w http.ResponseWriter, r *http.Request) {
	result, err := h.client.ListWarehouses(r.Context(), h.listParams(r))
	if err != nil {
		h.logger.Error("list warehouses failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	result, err := h.client.ListCategories(r.Context(), h.listParams(r))
	if err != nil {
		h.logger.Error("list categories failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	result, err := h.client.ListProducts(r.Context(), h.listParams(r))
	if err != nil {
		h.logger.Error("list products failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.client.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.logger.Error("get product failed", "error", err, "id", chi.URLParam(r, "id"))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, product)
}

func (h *Handler) ListAdministrativeUnits(w http.ResponseWriter, r *http.Request) {
	units, err := h.client.ListAdministrativeUnits(
		r.Context(),
		r.URL.Query().Get("level"),
		r.URL.Query().Get("parent_id"),
	)
	if err != nil {
		h.logger.Error("list administrative units failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": units})
}

// MountRoutes registers master-data routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/suppliers", h.ListSuppliers)
	r.Get("/warehouses", h.ListWarehouses)
	r.Get("/categories", h.ListCategories)
	r.Get("/products", h.ListProducts)
	r.Get("/products/{id}", h.GetProduct)
	r.Get("/administrative", h.ListAdministrativeUnits)
}
