package payments

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
	_, err := Normalize(record(t, `{"amount":100}`))
	require.ErrorIs(t, err, upstream.ErrMissingIdentity)
}

func TestNormalizeCoercesStringAmount(t *testing.T) {
	payment, err := Normalize(record(t, `{
		"payment_id": 41,
		"order_id": "o7",
		"payment_amount": "1500000.50",
		"payment_method": "bank_transfer",
		"bank_ref": "VCB-2024-0012"
	}`))

	require.NoError(t, err)
	assert.Equal(t, "41", payment.ID)
	assert.Equal(t, "o7", payment.OrderID)
	assert.Equal(t, 1500000.50, payment.Amount)
	assert.Equal(t, MethodBankTransfer, payment.Method)
	assert.Equal(t, "VCB-2024-0012", payment.BankReference)
}

func TestNormalizeUnknownMethodBecomesOther(t *testing.T) {
	payment, err := Normalize(record(t, `{"id":"p1","method":"cheque"}`))

	require.NoError(t, err)
	assert.Equal(t, MethodOther, payment.Method)
}

func TestNormalizeNestedOrderID(t *testing.T) {
	payment, err := Normalize(record(t, `{"id":"p2","order":{"id":99},"amount":25}`))

	require.NoError(t, err)
	assert.Equal(t, "99", payment.OrderID)
	assert.Equal(t, 25.0, payment.Amount)
}
