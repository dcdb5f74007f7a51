package orders

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warebridge/warebridge/internal/upstream"
)

func record(t *testing.T, raw string) upstream.Record {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return upstream.AsRecord(v)
}

func TestNormalizeRequiresID(t *testing.T) {
	_, err := Normalize(record(t, `{"code":"DH001"}`))
	require.ErrorIs(t, err, upstream.ErrMissingIdentity)
}

func TestNormalizeDenormalizedCustomerFields(t *testing.T) {
	order, err := Normalize(record(t, `{
		"order_id": 12,
		"order_code": "DH012",
		"customer": {"id": "c3", "name": "Acme", "phone": "0901", "address": "1 Hai Bà Trưng"},
		"status": "confirmed",
		"total_amount": "350000",
		"tags": ["Gấp"],
		"order_items": [
			{"id": "l1", "product": {"id": "p1", "name": "Thùng carton"}, "qty": "10", "unit_price": 35000}
		]
	}`))

	require.NoError(t, err)
	assert.Equal(t, "12", order.ID)
	assert.Equal(t, "DH012", order.Code)
	assert.Equal(t, "c3", order.CustomerID)
	assert.Equal(t, "Acme", order.CustomerName)
	assert.Equal(t, "0901", order.CustomerPhone)
	assert.Equal(t, 350000.0, order.Total)
	assert.Equal(t, []string{"Gấp"}, order.Tags)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "p1", order.Items[0].ProductID)
	assert.Equal(t, "Thùng carton", order.Items[0].ProductName)
	assert.Equal(t, 10.0, order.Items[0].Quantity)
	assert.Equal(t, 35000.0, order.Items[0].UnitPrice)
}

func TestNormalizeStatusPassesThroughUnknownValues(t *testing.T) {
	order, err := Normalize(record(t, `{"id":"o1","status":"half_shipped"}`))

	require.NoError(t, err)
	assert.Equal(t, "half_shipped", order.Status)
}
