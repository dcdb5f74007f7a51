package stocklevels

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warebridge/warebridge/internal/upstream"
)

// countingBackend records how many list requests reach the live backend.
type countingBackend struct {
	rows     []map[string]any
	requests int
}

func (b *countingBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.requests++
	matched := make([]any, 0, len(b.rows))
	for _, row := range b.rows {
		matched = append(matched, row)
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"data": map[string]any{"rows": matched, "count": len(matched)},
	})
}

func newTestHandler(t *testing.T, backend http.Handler) (*Handler, *Cache) {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)
	mr := miniredis.RunT(t)
	cache := NewCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Minute)
	client := NewClient(upstream.NewClient(srv.URL, upstream.NewMemoryTokenStore()))
	return NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), client, cache), cache
}

func cachedRows(n int) []StockLevel {
	rows := make([]StockLevel, n)
	for i := range rows {
		rows[i] = StockLevel{
			ID:          fmt.Sprintf("sl%d", i+1),
			WarehouseID: "W1",
			ProductID:   fmt.Sprintf("p%d", i+1),
			Quantity:    float64(i + 1),
		}
	}
	return rows
}

func TestListServesWarmCacheWithoutPagination(t *testing.T) {
	backend := &countingBackend{}
	h, cache := newTestHandler(t, backend)
	require.NoError(t, cache.Put(t.Context(), "W1", cachedRows(50)))

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/stock-levels?warehouse_id=W1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var result ListResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Len(t, result.Items, 50)
	assert.Equal(t, 0, backend.requests)
}

func TestListWithExplicitPaginationBypassesCache(t *testing.T) {
	backend := &countingBackend{rows: []map[string]any{
		{"id": "sl1", "warehouse_id": "W1", "product_id": "p1", "quantity": 5},
	}}
	h, cache := newTestHandler(t, backend)
	require.NoError(t, cache.Put(t.Context(), "W1", cachedRows(50)))

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/stock-levels?warehouse_id=W1&page=2&limit=20", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var result ListResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 20, result.Limit)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, 1, backend.requests)
}

func TestListWithProductFilterBypassesCache(t *testing.T) {
	backend := &countingBackend{}
	h, cache := newTestHandler(t, backend)
	require.NoError(t, cache.Put(t.Context(), "W1", cachedRows(3)))

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/stock-levels?warehouse_id=W1&product_id=p1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, backend.requests)
}
