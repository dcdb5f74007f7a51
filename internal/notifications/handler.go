package notifications

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/warebridge/warebridge/internal/platform/httpx"
)

// Handler serves the normalized notification API.
type Handler struct {
	logger *slog.Logger
	client *Client
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, client *Client) *Handler {
	return &Handler{logger: logger, client: client}
}

// List never fails: the client substitutes the fallback data set when the
// backend is unreachable.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	p := ListParams{
		Page:       httpx.QueryInt(r, "page", 1),
		Limit:      httpx.QueryInt(r, "limit", 20),
		UnreadOnly: r.URL.Query().Get("unread") == "true",
	}
	httpx.JSON(w, http.StatusOK, h.client.List(r.Context(), p))
}

func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	n, err := h.client.MarkRead(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.logger.Error("mark notification read failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, n)
}

func (h *Handler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := h.client.MarkAllRead(r.Context()); err != nil {
		h.logger.Error("mark all notifications read failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.client.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.logger.Error("delete notification failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MountRoutes registers notification routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Patch("/read-all", h.MarkAllRead)
	r.Patch("/{id}/read", h.MarkRead)
	r.Delete("/{id}", h.Delete)
}
