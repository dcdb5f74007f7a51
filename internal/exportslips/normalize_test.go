package exportslips

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

func TestNormalizeSlip(t *testing.T) {
	slip, err := Normalize(record(t, `{
		"receipt_id": 88,
		"receipt_code": "XK-0088",
		"order_id": "o12",
		"warehouse_id": "w1",
		"status": "approved",
		"slip_items": [
			{"product_id": "p1", "requested_quantity": "10", "actual_quantity": 8, "remaining_quantity": 2, "unit_price": "15000.50"}
		],
		"order_info": {
			"customer_name": "Acme",
			"customer_phone": "0909",
			"order_items": [{"product_id": "p1", "quantity": 10, "price": 15000.5}],
			"total_amount": "150005"
		}
	}`))

	require.NoError(t, err)
	assert.Equal(t, "88", slip.ID)
	assert.Equal(t, "XK-0088", slip.Code)
	assert.Equal(t, StatusApproved, slip.Status)
	require.Len(t, slip.Items, 1)
	assert.Equal(t, 10.0, slip.Items[0].RequestedQty)
	assert.Equal(t, 8.0, slip.Items[0].ActualQty)
	assert.Equal(t, 15000.5, slip.Items[0].UnitPrice)
	require.NotNil(t, slip.Order)
	assert.Equal(t, "Acme", slip.Order.CustomerName)
	assert.Equal(t, 150005.0, slip.Order.Total)
	require.Len(t, slip.Order.Items, 1)
}

func TestNormalizeSlipRequiresID(t *testing.T) {
	_, err := Normalize(record(t, `{"status":"pending"}`))
	require.ErrorIs(t, err, upstream.ErrMissingIdentity)
}

func TestNormalizeSlipEmptySnapshotIsAbsent(t *testing.T) {
	slip, err := Normalize(record(t, `{"id":"s1","order_info":{}}`))

	require.NoError(t, err)
	assert.Nil(t, slip.Order)
}
