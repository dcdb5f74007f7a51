package stocklevels

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/warebridge/warebridge/internal/platform/httpx"
)

// Handler serves the normalized stock level API.
type Handler struct {
	logger   *slog.Logger
	client   *Client
	cache    *Cache
	validate *validator.Validate
}

// NewHandler constructs a Handler instance. cache may be nil.
func NewHandler(logger *slog.Logger, client *Client, cache *Cache) *Handler {
	return &Handler{
		logger:   logger,
		client:   client,
		cache:    cache,
		validate: validator.New(),
	}
}

// List serves one page of stock levels. The warmup cache holds one full
// snapshot per warehouse, so only unfiltered, unpaginated single-warehouse
// listings are answered from it; any product filter or explicit page/limit
// goes to the live backend.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	p := ListParams{
		Page:        httpx.QueryInt(r, "page", 1),
		Limit:       httpx.QueryInt(r, "limit", 20),
		WarehouseID: query.Get("warehouse_id"),
		ProductID:   query.Get("product_id"),
	}
	cacheable := p.WarehouseID != "" && p.ProductID == "" &&
		query.Get("page") == "" && query.Get("limit") == ""
	if cacheable {
		rows, ok, err := h.cache.Get(r.Context(), p.WarehouseID)
		if err != nil {
			h.logger.Warn("stock cache read failed", "error", err)
		}
		if ok {
			httpx.JSON(w, http.StatusOK, ListResult{
				Items: rows,
				Total: len(rows),
				Page:  1,
				Limit: len(rows),
			})
			return
		}
	}
	result, err := h.client.List(r.Context(), p)
	if err != nil {
		h.logger.Error("list stock levels failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	level, err := h.client.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.logger.Error("get stock level failed", "error", err, "id", chi.URLParam(r, "id"))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, level)
}

type adjustRequest struct {
	WarehouseID string  `json:"warehouseId" validate:"required"`
	ProductID   string  `json:"productId" validate:"required"`
	Delta       float64 `json:"delta" validate:"required"`
}

// Adjust applies a quantity delta via the read-modify-write upsert and
// invalidates the warehouse's cache entry.
func (h *Handler) Adjust(w http.ResponseWriter, r *http.Request) {
	var req adjustRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondValidation(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondValidation(w, err)
		return
	}
	level, err := h.client.UpdateStockQuantity(r.Context(), req.WarehouseID, req.ProductID, req.Delta)
	if err != nil {
		h.logger.Error("adjust stock quantity failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	if err := h.cache.Invalidate(r.Context(), req.WarehouseID); err != nil {
		h.logger.Warn("stock cache invalidation failed", "error", err, "warehouse_id", req.WarehouseID)
	}
	httpx.JSON(w, http.StatusOK, level)
}

// MountRoutes registers stock level routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/adjust", h.Adjust)
	r.Get("/{id}", h.Get)
}
