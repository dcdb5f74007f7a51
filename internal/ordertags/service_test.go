package ordertags

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warebridge/warebridge/internal/orders"
	"github.com/warebridge/warebridge/internal/upstream"
)

// orderBackend serves one order and applies tag updates to it.
type orderBackend struct {
	tags    []string
	patches int
}

func (b *orderBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPatch {
		b.patches++
		var body struct {
			Tags []string `json:"tags"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		b.tags = body.Tags
	}
	tags := make([]any, len(b.tags))
	for i, tag := range b.tags {
		tags[i] = tag
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"data": map[string]any{"id": "o1", "tags": tags},
	})
}

func newService(t *testing.T, backend *orderBackend) *Service {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)
	return NewService(orders.NewClient(upstream.NewClient(srv.URL, upstream.NewMemoryTokenStore())))
}

func TestAssignReconciledRemovesNotReconciled(t *testing.T) {
	backend := &orderBackend{tags: []string{TagNotReconciled, "Khách VIP"}}
	svc := newService(t, backend)

	order, err := svc.Assign(context.Background(), "o1", TagReconciled)

	require.NoError(t, err)
	assert.Contains(t, order.Tags, TagReconciled)
	assert.NotContains(t, order.Tags, TagNotReconciled)
	assert.Contains(t, order.Tags, "Khách VIP")
}

func TestAssignExistingTagIsIdempotent(t *testing.T) {
	backend := &orderBackend{tags: []string{TagReconciled}}
	svc := newService(t, backend)

	order, err := svc.Assign(context.Background(), "o1", TagReconciled)

	require.NoError(t, err)
	assert.Equal(t, []string{TagReconciled}, order.Tags)
	assert.Equal(t, 0, backend.patches)
}

func TestRemoveAbsentTagDoesNotWrite(t *testing.T) {
	backend := &orderBackend{tags: []string{"Gấp"}}
	svc := newService(t, backend)

	order, err := svc.Remove(context.Background(), "o1", TagReconciled)

	require.NoError(t, err)
	assert.Equal(t, []string{"Gấp"}, order.Tags)
	assert.Equal(t, 0, backend.patches)
}

func TestCatalogHasSixFixedTags(t *testing.T) {
	tags := AllTags()

	assert.Len(t, tags, 6)
	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = tag.Name
	}
	assert.Contains(t, names, TagReconciled)
	assert.Contains(t, names, TagNotReconciled)
}

func TestNewLocalTagFabricatesUniqueIDs(t *testing.T) {
	a := NewLocalTag("Thử", "#000", "")
	b := NewLocalTag("Thử", "#000", "")

	assert.NotEqual(t, a.ID, b.ID)
	assert.Contains(t, a.ID, "local-")
}
