package upstream

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeAny(t *testing.T, raw string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestUnwrapListPagedEnvelope(t *testing.T) {
	raw := decodeAny(t, `{"data":{"rows":[{"id":1},{"id":2}],"count":5,"page":2,"limit":10}}`)

	list := UnwrapList(raw, 1, 20)

	assert.Equal(t, 5, list.Total)
	assert.Equal(t, 2, list.Page)
	assert.Equal(t, 10, list.Limit)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "1", list.Items[0].Str("id"))
	assert.Equal(t, "2", list.Items[1].Str("id"))
}

func TestUnwrapListBareArray(t *testing.T) {
	raw := decodeAny(t, `[{"id":"a"},{"id":"b"},{"id":"c"}]`)

	list := UnwrapList(raw, 4, 25)

	assert.Equal(t, 3, list.Total)
	assert.Equal(t, 1, list.Page)
	assert.Equal(t, 25, list.Limit)
	assert.Len(t, list.Items, 3)
}

func TestUnwrapListTopLevelRows(t *testing.T) {
	raw := decodeAny(t, `{"rows":[{"id":"a"}],"count":"7"}`)

	list := UnwrapList(raw, 3, 50)

	assert.Equal(t, 7, list.Total)
	assert.Equal(t, 3, list.Page)
	assert.Equal(t, 50, list.Limit)
}

func TestUnwrapListNamedField(t *testing.T) {
	raw := decodeAny(t, `{"customers":[{"id":"a"},{"id":"b"}]}`)

	list := UnwrapList(raw, 1, 20, "customers")

	assert.Equal(t, 2, list.Total)
	assert.Len(t, list.Items, 2)
}

func TestUnwrapListDataArray(t *testing.T) {
	raw := decodeAny(t, `{"data":[{"id":"a"}],"total":9}`)

	list := UnwrapList(raw, 2, 10)

	assert.Equal(t, 9, list.Total)
	assert.Equal(t, 2, list.Page)
	assert.Len(t, list.Items, 1)
}

func TestUnwrapListFallbackEmpty(t *testing.T) {
	list := UnwrapList(decodeAny(t, `{"unexpected":true}`), 0, 20)

	assert.Empty(t, list.Items)
	assert.Equal(t, 0, list.Total)
	assert.Equal(t, 1, list.Page)
}

func TestUnwrapRecordProbesNesting(t *testing.T) {
	flat := UnwrapRecord(decodeAny(t, `{"id":"x","name":"direct"}`))
	assert.Equal(t, "x", flat.Str("id"))

	wrapped := UnwrapRecord(decodeAny(t, `{"data":{"id":"y"}}`))
	assert.Equal(t, "y", wrapped.Str("id"))

	doubly := UnwrapRecord(decodeAny(t, `{"data":{"data":{"id":"z"}}}`))
	assert.Equal(t, "z", doubly.Str("id"))

	named := UnwrapRecord(decodeAny(t, `{"customer":{"id":"c1"}}`), "customer")
	assert.Equal(t, "c1", named.Str("id"))

	namedUnderData := UnwrapRecord(decodeAny(t, `{"data":{"customer":{"id":"c2"}}}`), "customer")
	assert.Equal(t, "c2", namedUnderData.Str("id"))
}
