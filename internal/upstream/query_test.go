package upstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildQueryOmitsEmptyParams(t *testing.T) {
	search := "abc"
	var nilSearch *string
	q := BuildQuery(map[string]any{
		"page":    2,
		"limit":   0,
		"search":  &search,
		"status":  "",
		"deleted": nilSearch,
	})

	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "abc", q.Get("search"))
	assert.False(t, q.Has("limit"))
	assert.False(t, q.Has("status"))
	assert.False(t, q.Has("deleted"))
}

func TestFoldSearch(t *testing.T) {
	assert.Equal(t, "dien may xanh", FoldSearch("Điện Máy Xanh"))
	assert.Equal(t, "da doi soat", FoldSearch("Đã đối soát"))
	assert.Equal(t, "plain", FoldSearch("  plain "))
}

func TestCancelRegistry(t *testing.T) {
	reg := NewCancelRegistry()
	ctx := reg.Register(t.Context(), "customers:list")

	assert.NoError(t, ctx.Err())
	assert.True(t, reg.Cancel("customers:list"))
	assert.Error(t, ctx.Err())
	assert.False(t, reg.Cancel("customers:list"))
}
