package quotations

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
	_, err := Normalize(record(t, `{"code":"BG001"}`))
	require.ErrorIs(t, err, upstream.ErrMissingIdentity)
}

func TestNormalizeDetailsFromSnakeCase(t *testing.T) {
	q, err := Normalize(record(t, `{
		"quotation_id": 8,
		"quotation_code": "BG008",
		"contract_code": "HD-22",
		"customer": {"id": "c1", "name": "Acme"},
		"status": "sent",
		"quotation_details": [
			{"id": "d1", "product": {"id": "p1", "name": "Pallet gỗ"}, "unit_price": "120000", "qty": 4}
		]
	}`))

	require.NoError(t, err)
	assert.Equal(t, "8", q.ID)
	assert.Equal(t, "BG008", q.Code)
	assert.Equal(t, "HD-22", q.ContractCode)
	assert.Equal(t, "c1", q.CustomerID)
	assert.Equal(t, "Acme", q.CustomerName)
	assert.Equal(t, "sent", q.Status)
	require.Len(t, q.Details, 1)
	assert.Equal(t, "Pallet gỗ", q.Details[0].ProductName)
	assert.Equal(t, 120000.0, q.Details[0].Price)
	assert.Equal(t, 4.0, q.Details[0].Quantity)
}
