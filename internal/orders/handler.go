package orders

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/warebridge/warebridge/internal/platform/httpx"
)

// Handler serves the normalized order API.
type Handler struct {
	logger *slog.Logger
	client *Client
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, client *Client) *Handler {
	return &Handler{logger: logger, client: client}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	p := ListParams{
		Page:       httpx.QueryInt(r, "page", 1),
		Limit:      httpx.QueryInt(r, "limit", 20),
		Search:     r.URL.Query().Get("search"),
		Status:     r.URL.Query().Get("status"),
		CustomerID: r.URL.Query().Get("customer_id"),
	}
	result, err := h.client.List(r.Context(), p)
	if err != nil {
		h.logger.Error("list orders failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	order, err := h.client.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.logger.Error("get order failed", "error", err, "id", chi.URLParam(r, "id"))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, order)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := httpx.DecodeJSON(r, &fields); err != nil {
		httpx.RespondValidation(w, err)
		return
	}
	order, err := h.client.Update(r.Context(), chi.URLParam(r, "id"), fields)
	if err != nil {
		h.logger.Error("update order failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, order)
}

// MountRoutes registers order routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Patch("/{id}", h.Update)
}
