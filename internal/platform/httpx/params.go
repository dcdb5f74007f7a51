package httpx

import (
	"net/http"
	"strconv"
)

// QueryInt parses a positive integer query parameter, falling back to def.
func QueryInt(r *http.Request, key string, def int) int {
	if raw := r.URL.Query().Get(key); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			return parsed
		}
	}
	return def
}
