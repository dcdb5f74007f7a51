package exportslips

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warebridge/warebridge/internal/upstream"
)

// fakeBackend serves a fixed set of slips through the paged envelope the
// legacy backend uses.
type fakeBackend struct {
	slips    []map[string]any
	requests int
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.requests++
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if page < 1 {
		page = 1
	}
	start := (page - 1) * limit
	end := start + limit
	if start > len(f.slips) {
		start = len(f.slips)
	}
	if end > len(f.slips) {
		end = len(f.slips)
	}
	rows := make([]any, 0, end-start)
	for _, s := range f.slips[start:end] {
		rows = append(rows, s)
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"data": map[string]any{
			"rows":  rows,
			"count": len(f.slips),
			"page":  page,
			"limit": limit,
		},
	})
}

func makeSlips(n int) []map[string]any {
	slips := make([]map[string]any, n)
	for i := range slips {
		slips[i] = map[string]any{
			"id":       fmt.Sprintf("s%d", i+1),
			"order_id": fmt.Sprintf("o%d", i+1),
			"status":   "pending",
		}
	}
	return slips
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(upstream.NewClient(srv.URL, upstream.NewMemoryTokenStore()))
}

func TestGetSlipByOrderIDFindsMatchOnThirdPage(t *testing.T) {
	backend := &fakeBackend{slips: makeSlips(250)}
	client := newTestClient(t, backend)

	slip, err := client.GetSlipByOrderID(context.Background(), "o205")

	require.NoError(t, err)
	require.NotNil(t, slip)
	assert.Equal(t, "s205", slip.ID)
	assert.Equal(t, 3, backend.requests)
}

func TestGetSlipByOrderIDStopsOnShortPage(t *testing.T) {
	backend := &fakeBackend{slips: makeSlips(250)}
	client := newTestClient(t, backend)

	slip, err := client.GetSlipByOrderID(context.Background(), "missing")

	require.NoError(t, err)
	assert.Nil(t, slip)
	assert.Equal(t, 3, backend.requests)
}

func TestGetSlipByOrderIDGivesUpAtPageCap(t *testing.T) {
	backend := &fakeBackend{slips: makeSlips(1500)}
	client := newTestClient(t, backend)

	slip, err := client.GetSlipByOrderID(context.Background(), "o1400")

	require.NoError(t, err)
	assert.Nil(t, slip)
	assert.Equal(t, 10, backend.requests)
}

func TestTransitionCallsShapeDistinctRequests(t *testing.T) {
	var paths []string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"id": "s1", "status": "approved"}})
	}))

	ctx := context.Background()
	_, err := client.Approve(ctx, "s1")
	require.NoError(t, err)
	_, err = client.Reject(ctx, "s1", "out of stock")
	require.NoError(t, err)
	_, err = client.DirectExport(ctx, "s1")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"POST /warehouse-receipts/s1/approve",
		"POST /warehouse-receipts/s1/reject",
		"POST /warehouse-receipts/s1/direct-export",
	}, paths)
}
