package ordertags

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/warebridge/warebridge/internal/platform/httpx"
)

// Handler serves the tag catalog and per-order tag assignment.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:   logger,
		service:  service,
		validate: validator.New(),
	}
}

// ListTags returns the fixed catalog.
func (h *Handler) ListTags(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]any{"items": AllTags()})
}

type createTagRequest struct {
	Name        string `json:"name" validate:"required"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// CreateTag fabricates a local-only catalog entry.
func (h *Handler) CreateTag(w http.ResponseWriter, r *http.Request) {
	var req createTagRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondValidation(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondValidation(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, NewLocalTag(req.Name, req.Color, req.Description))
}

// DeleteTag accepts the request and does nothing, matching the service.
func (h *Handler) DeleteTag(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteTag(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type assignRequest struct {
	Tag string `json:"tag" validate:"required"`
}

func (h *Handler) Assign(w http.ResponseWriter, r *http.Request) {
	var req assignRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondValidation(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondValidation(w, err)
		return
	}
	order, err := h.service.Assign(r.Context(), chi.URLParam(r, "orderID"), req.Tag)
	if err != nil {
		h.logger.Error("assign tag failed", "error", err, "order_id", chi.URLParam(r, "orderID"))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, order)
}

func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	var req assignRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondValidation(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondValidation(w, err)
		return
	}
	order, err := h.service.Remove(r.Context(), chi.URLParam(r, "orderID"), req.Tag)
	if err != nil {
		h.logger.Error("remove tag failed", "error", err, "order_id", chi.URLParam(r, "orderID"))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, order)
}

// MountRoutes registers tag routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.ListTags)
	r.Post("/", h.CreateTag)
	r.Delete("/{id}", h.DeleteTag)
	r.Post("/orders/{orderID}/assign", h.Assign)
	r.Post("/orders/{orderID}/remove", h.Remove)
}
