package stocklevels

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warebridge/warebridge/internal/upstream"
)

// stockBackend is a minimal in-memory /stock-levels implementation.
type stockBackend struct {
	rows   []map[string]any
	nextID int
}

func (b *stockBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodGet:
		warehouse := r.URL.Query().Get("warehouse_id")
		product := r.URL.Query().Get("product_id")
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		matched := make([]any, 0)
		for _, row := range b.rows {
			if warehouse != "" && row["warehouse_id"] != warehouse {
				continue
			}
			if product != "" && row["product_id"] != product {
				continue
			}
			matched = append(matched, row)
			if limit > 0 && len(matched) >= limit {
				break
			}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"rows": matched, "count": len(matched)},
		})
	case r.Method == http.MethodPost:
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		b.nextID++
		row := map[string]any{
			"id":           strconv.Itoa(b.nextID),
			"warehouse_id": body["warehouse_id"],
			"product_id":   body["product_id"],
			"quantity":     body["quantity"],
		}
		b.rows = append(b.rows, row)
		_ = json.NewEncoder(w).Encode(map[string]any{"data": row})
	case r.Method == http.MethodPatch:
		id := r.URL.Path[len("/stock-levels/"):]
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		for _, row := range b.rows {
			if row["id"] == id {
				row["quantity"] = body["quantity"]
				_ = json.NewEncoder(w).Encode(map[string]any{"data": row})
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	}
}

func TestUpdateStockQuantityUpsert(t *testing.T) {
	backend := &stockBackend{}
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)
	client := NewClient(upstream.NewClient(srv.URL, upstream.NewMemoryTokenStore()))
	ctx := context.Background()

	created, err := client.UpdateStockQuantity(ctx, "W1", "P1", 5)
	require.NoError(t, err)
	assert.Equal(t, 5.0, created.Quantity)
	require.Len(t, backend.rows, 1)

	updated, err := client.UpdateStockQuantity(ctx, "W1", "P1", 3)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 8.0, updated.Quantity)
	assert.Len(t, backend.rows, 1)

	other, err := client.UpdateStockQuantity(ctx, "W2", "P1", 4)
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, other.ID)
	assert.Equal(t, 4.0, other.Quantity)
	assert.Len(t, backend.rows, 2)
}
