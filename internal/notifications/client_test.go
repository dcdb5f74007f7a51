package notifications

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warebridge/warebridge/internal/upstream"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	api := upstream.NewClient(srv.URL, upstream.NewMemoryTokenStore())
	return NewClient(api, slog.New(slog.NewTextHandler(testWriter{t}, nil)))
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func TestListServesBackendRows(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"rows": []any{
					map[string]any{"id": "n1", "title": "Đơn hàng mới", "type": "success", "is_read": false},
					map[string]any{"id": "n2", "title": "Tồn kho thấp", "type": "shipment"},
					map[string]any{"id": "n3", "title": "Không có loại"},
				},
				"count": 3,
				"page":  1,
				"limit": 20,
			},
		})
	}))

	result := client.List(context.Background(), ListParams{Page: 1, Limit: 20})

	require.Len(t, result.Items, 3)
	assert.Equal(t, "n1", result.Items[0].ID)
	assert.Equal(t, TypeSuccess, result.Items[0].Type)
	// Unknown and absent backend types both coerce to info.
	assert.Equal(t, TypeInfo, result.Items[1].Type)
	assert.Equal(t, TypeInfo, result.Items[2].Type)
	assert.Equal(t, 3, result.Total)
}

func TestListFallsBackWhenBackendFails(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))

	result := client.List(context.Background(), ListParams{Page: 1, Limit: 20})

	require.Len(t, result.Items, 1)
	assert.Equal(t, "local-1", result.Items[0].ID)
	assert.Equal(t, TypeWarning, result.Items[0].Type)
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, 1, result.Page)
}

func TestListSkipsRowsWithoutIdentity(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]any{
			map[string]any{"title": "no id here"},
			map[string]any{"id": "n3", "title": "ok"},
		})
	}))

	result := client.List(context.Background(), ListParams{})

	require.Len(t, result.Items, 1)
	assert.Equal(t, "n3", result.Items[0].ID)
}
