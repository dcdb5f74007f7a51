package upstream

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Sentinel errors shared by the client core and resource clients.
var (
	// ErrMissingIdentity indicates a backend record carried no usable id.
	// A record without identity cannot be cached, compared, or referenced,
	// so normalization fails instead of producing a partial object.
	ErrMissingIdentity = errors.New("cannot resolve record identity")
	// ErrSessionExpired indicates the token refresh protocol failed and
	// both tokens were cleared. Callers must send the user back to login.
	ErrSessionExpired = errors.New("session expired")
)

// APIError carries a structured backend failure: the HTTP status plus the
// message or messages the backend attached to the response body.
type APIError struct {
	Status   int
	Message  string
	Messages []string
}

// Error renders a readable string; multi-message validation arrays are
// joined with newlines so callers can show them verbatim.
func (e *APIError) Error() string {
	if len(e.Messages) > 0 {
		return strings.Join(e.Messages, "\n")
	}
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("upstream responded %d %s", e.Status, http.StatusText(e.Status))
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// newAPIError builds an APIError from a decoded error body. The backend
// puts its text under "message", "error" or "errors", as a string or an
// array of strings.
func newAPIError(status int, body any) *APIError {
	apiErr := &APIError{Status: status}
	rec, ok := body.(map[string]any)
	if !ok {
		return apiErr
	}
	for _, key := range []string{"message", "error", "errors"} {
		switch v := rec[key].(type) {
		case string:
			if v != "" && apiErr.Message == "" {
				apiErr.Message = v
			}
		case []any:
			for _, item := range v {
				if s, ok := item.(string); ok && s != "" {
					apiErr.Messages = append(apiErr.Messages, s)
				}
			}
		}
	}
	return apiErr
}
