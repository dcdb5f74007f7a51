package httpx

import (
	"errors"
	"net/http"

	"github.com/warebridge/warebridge/internal/upstream"
)

// RespondError maps gateway and upstream errors to RFC7807 responses.
// Backend failures pass through with their original status and messages so
// callers can extract structured validation text; a missing record
// identity is a bad-gateway condition (the backend sent an unusable
// record), not a caller fault.
func RespondError(w http.ResponseWriter, err error) {
	var apiErr *upstream.APIError
	switch {
	case errors.Is(err, upstream.ErrSessionExpired):
		Problem(w, http.StatusUnauthorized, "Session Expired", "authenticate again")
	case errors.Is(err, upstream.ErrMissingIdentity):
		Problem(w, http.StatusBadGateway, "Invalid Upstream Record", err.Error())
	case errors.As(err, &apiErr):
		JSON(w, apiErr.Status, ProblemDetail{
			Title:    http.StatusText(apiErr.Status),
			Status:   apiErr.Status,
			Detail:   apiErr.Message,
			Messages: apiErr.Messages,
		})
	default:
		Problem(w, http.StatusBadGateway, "Upstream Error", err.Error())
	}
}

// RespondValidation reports a request-body validation failure.
func RespondValidation(w http.ResponseWriter, err error) {
	Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
}
