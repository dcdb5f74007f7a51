package payments

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/warebridge/warebridge/internal/platform/httpx"
	"github.com/warebridge/warebridge/internal/upstream"
)

// Handler serves the normalized payment API.
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
		Page:    httpx.QueryInt(r, "page", 1),
		Limit:   httpx.QueryInt(r, "limit", 20),
		OrderID: r.URL.Query().Get("order_id"),
	}
	result, err := h.client.List(r.Context(), p)
	if err != nil {
		h.logger.Error("list payments failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	payment, err := h.client.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.logger.Error("get payment failed", "error", err, "id", chi.URLParam(r, "id"))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, payment)
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
	payment, err := h.client.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("create payment failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, payment)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.client.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.logger.Error("delete payment failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UploadAttachments accepts multipart files and forwards them to the
// backend one at a time.
func (h *Handler) UploadAttachments(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		httpx.RespondValidation(w, err)
		return
	}
	var files []upstream.File
	for _, headers := range r.MultipartForm.File {
		for _, header := range headers {
			f, err := header.Open()
			if err != nil {
				httpx.RespondValidation(w, err)
				return
			}
			defer func() { _ = f.Close() }()
			files = append(files, upstream.File{Name: header.Filename, Reader: f})
		}
	}
	paths, err := h.client.UploadAttachments(r.Context(), chi.URLParam(r, "id"), files)
	if err != nil {
		h.logger.Error("upload attachments failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"paths": paths})
}

// DownloadAttachment streams a stored attachment back to the caller.
func (h *Handler) DownloadAttachment(w http.ResponseWriter, r *http.Request) {
	blob, err := h.client.DownloadAttachment(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "name"))
	if err != nil {
		h.logger.Error("download attachment failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	if blob.ContentType != "" {
		w.Header().Set("Content-Type", blob.ContentType)
	}
	if blob.Filename != "" {
		w.Header().Set("Content-Disposition", `attachment; filename="`+blob.Filename+`"`)
	}
	_, _ = w.Write(blob.Content)
}

// MountRoutes registers payment routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Delete("/{id}", h.Delete)
	r.Post("/{id}/attachments", h.UploadAttachments)
	r.Get("/{id}/attachments/{name}", h.DownloadAttachment)
}
