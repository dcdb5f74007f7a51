package auth

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/warebridge/warebridge/internal/platform/httpx"
)

// Handler serves login and logout.
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

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondValidation(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondValidation(w, err)
		return
	}
	session, err := h.client.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Warn("login failed", "error", err, "username", req.Username)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, session)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.client.Logout(r.Context()); err != nil {
		// Tokens are already cleared locally; revocation failure is not
		// worth surfacing to the caller.
		h.logger.Warn("backend logout failed", "error", err)
	}
	w.WriteHeader(http.StatusNoContent)
}

// MountRoutes registers auth routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
}
