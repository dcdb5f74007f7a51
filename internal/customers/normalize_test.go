package customers

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
	_, err := Normalize(record(t, `{"name":"Acme"}`))
	require.ErrorIs(t, err, upstream.ErrMissingIdentity)
}

func TestNormalizeBlankVatInfoIsAbsent(t *testing.T) {
	cust, err := Normalize(record(t, `{"id":"c1","name":"Acme","vat_info":{"tax_code":""}}`))

	require.NoError(t, err)
	assert.Equal(t, "c1", cust.ID)
	assert.Equal(t, "Acme", cust.Name)
	assert.Nil(t, cust.VatInfo)
	assert.False(t, cust.IsDeleted)
	assert.Equal(t, "", cust.CreatedAt)
}

func TestNormalizeSnakeCaseAndNestedAddress(t *testing.T) {
	cust, err := Normalize(record(t, `{
		"customer_id": 17,
		"customer_name": "Điện Máy Xanh",
		"phone_number": "0901234567",
		"address_info": {
			"street": "12 Lê Lợi",
			"province": {"id": "79", "name": "TP. Hồ Chí Minh"},
			"district": {"id": "760", "name": "Quận 1"}
		},
		"vat_info": {"tax_code": "0312345678", "company_name": "DMX Co"},
		"is_deleted": true,
		"created_at": "2024-01-02T03:04:05Z"
	}`))

	require.NoError(t, err)
	assert.Equal(t, "17", cust.ID)
	assert.Equal(t, "Điện Máy Xanh", cust.Name)
	assert.Equal(t, "0901234567", cust.Phone)
	require.NotNil(t, cust.AddressInfo)
	assert.Equal(t, "12 Lê Lợi", cust.AddressInfo.Street)
	require.NotNil(t, cust.AddressInfo.Province)
	assert.Equal(t, "TP. Hồ Chí Minh", cust.AddressInfo.Province.Name)
	require.NotNil(t, cust.AddressInfo.District)
	assert.Nil(t, cust.AddressInfo.Ward)
	require.NotNil(t, cust.VatInfo)
	assert.Equal(t, "0312345678", cust.VatInfo.TaxCode)
	assert.True(t, cust.IsDeleted)
	assert.Equal(t, "2024-01-02T03:04:05Z", cust.CreatedAt)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	first, err := Normalize(record(t, `{
		"customer_id": "c9",
		"customer_code": "KH009",
		"customer_name": "Acme",
		"vat_info": {"tax_code": "123"},
		"created_at": "2024-05-06"
	}`))
	require.NoError(t, err)

	encoded, err := json.Marshal(first)
	require.NoError(t, err)
	second, err := Normalize(record(t, string(encoded)))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
