package customers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/warebridge/warebridge/internal/platform/httpx"
)

// Handler serves the normalized customer API.
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
		Page:           httpx.QueryInt(r, "page", 1),
		Limit:          httpx.QueryInt(r, "limit", 20),
		Search:         r.URL.Query().Get("search"),
		IncludeDeleted: r.URL.Query().Get("include_deleted") == "true",
	}
	result, err := h.client.List(r.Context(), p)
	if err != nil {
		h.logger.Error("list customers failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	cust, err := h.client.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.logger.Error("get customer failed", "error", err, "id", chi.URLParam(r, "id"))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, cust)
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
	cust, err := h.client.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("create customer failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, cust)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondValidation(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondValidation(w, err)
		return
	}
	cust, err := h.client.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.logger.Error("update customer failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, cust)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.client.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.logger.Error("delete customer failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
