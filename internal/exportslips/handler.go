package exportslips

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/warebridge/warebridge/internal/platform/httpx"
)

// Handler serves the normalized export slip API.
type Handler struct {
	logger   *slog.Logger
	client   *Client
	validate *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, client *Client) *Handler {
	return &Handler{
		logger:   logger,
		client:   client,
		validate: validator.New(),
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	p := ListParams{
		Page:        httpx.QueryInt(r, "page", 1),
		Limit:       httpx.QueryInt(r, "limit", 20),
		Status:      Status(r.URL.Query().Get("status")),
		WarehouseID: r.URL.Query().Get("warehouse_id"),
	}
	result, err := h.client.List(r.Context(), p)
	if err != nil {
		h.logger.Error("list export slips failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	slip, err := h.client.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.logger.Error("get export slip failed", "error", err, "id", chi.URLParam(r, "id"))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, slip)
}

func (h *Handler) GetByOrder(w http.ResponseWriter, r *http.Request) {
	slip, err := h.client.GetSlipByOrderID(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		h.logger.Error("scan export slips failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	if slip == nil {
		httpx.Problem(w, http.StatusNotFound, "Not Found", "no export slip references this order")
		return
	}
	httpx.JSON(w, http.StatusOK, slip)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondValidation(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondValidation(w, err)
		return
	}
	slip, err := h.client.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("create export slip failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, slip)
}

type reasonRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, fn func() (Slip, error), action string) {
	slip, err := fn()
	if err != nil {
		h.logger.Error("slip transition failed", "action", action, "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, slip)
}

func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.transition(w, r, func() (Slip, error) { return h.client.Approve(r.Context(), id) }, "approve")
}

func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req reasonRequest
	_ = httpx.DecodeJSON(r, &req)
	h.transition(w, r, func() (Slip, error) { return h.client.Reject(r.Context(), id, req.Reason) }, "reject")
}

func (h *Handler) MarkPicked(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.transition(w, r, func() (Slip, error) { return h.client.MarkPicked(r.Context(), id) }, "pick")
}

func (h *Handler) MarkExported(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.transition(w, r, func() (Slip, error) { return h.client.MarkExported(r.Context(), id) }, "export")
}

func (h *Handler) DirectExport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.transition(w, r, func() (Slip, error) { return h.client.DirectExport(r.Context(), id) }, "direct-export")
}

func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req reasonRequest
	_ = httpx.DecodeJSON(r, &req)
	h.transition(w, r, func() (Slip, error) { return h.client.Cancel(r.Context(), id, req.Reason) }, "cancel")
}

// MountRoutes registers export slip routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/by-order/{orderID}", h.GetByOrder)
	r.Get("/{id}", h.Get)
	r.Post("/{id}/approve", h.Approve)
	r.Post("/{id}/reject", h.Reject)
	r.Post("/{id}/pick", h.MarkPicked)
	r.Post("/{id}/export", h.MarkExported)
	r.Post("/{id}/direct-export", h.DirectExport)
	r.Post("/{id}/cancel", h.Cancel)
}
