package masterdata

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

func TestNormalizeUnitRefEmptyIsNil(t *testing.T) {
	assert.Nil(t, NormalizeUnitRef(nil))
	assert.Nil(t, NormalizeUnitRef(record(t, `{}`)))
}

func TestNormalizeUnitRefFallsBackToCode(t *testing.T) {
	ref := NormalizeUnitRef(record(t, `{"code": "79", "full_name": "TP. Hồ Chí Minh"}`))

	require.NotNil(t, ref)
	assert.Equal(t, "79", ref.ID)
	assert.Equal(t, "TP. Hồ Chí Minh", ref.Name)
}

func TestNormalizeAdministrativeUnitAcceptsCodeAsIdentity(t *testing.T) {
	unit, err := NormalizeAdministrativeUnit(record(t, `{
		"code": "760",
		"name": "Quận 1",
		"division_type": "district",
		"parent_code": "79"
	}`))

	require.NoError(t, err)
	assert.Equal(t, "760", unit.ID)
	assert.Equal(t, "district", unit.Level)
	assert.Equal(t, "79", unit.ParentID)
}

func TestNormalizeProductCoercesStringPrice(t *testing.T) {
	product, err := NormalizeProduct(record(t, `{
		"product_id": 3,
		"product_name": "Băng keo",
		"unit_name": "cuộn",
		"unit_price": "12500",
		"category": {"id": "cat9"}
	}`))

	require.NoError(t, err)
	assert.Equal(t, "3", product.ID)
	assert.Equal(t, "Băng keo", product.Name)
	assert.Equal(t, "cuộn", product.Unit)
	assert.Equal(t, 12500.0, product.Price)
	assert.Equal(t, "cat9", product.CategoryID)
}

func TestNormalizeSupplierRequiresID(t *testing.T) {
	_, err := NormalizeSupplier(record(t, `{"name":"NCC A"}`))
	require.ErrorIs(t, err, upstream.ErrMissingIdentity)
}
