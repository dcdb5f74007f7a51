package users

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
	_, err := Normalize(record(t, `{"username":"linh"}`))
	require.ErrorIs(t, err, upstream.ErrMissingIdentity)
}

func TestNormalizeNestedRole(t *testing.T) {
	user, err := Normalize(record(t, `{
		"user_id": 5,
		"user_name": "linh.tran",
		"full_name": "Trần Mỹ Linh",
		"role": {"id": "r2", "name": "Thủ kho"},
		"is_active": true
	}`))

	require.NoError(t, err)
	assert.Equal(t, "5", user.ID)
	assert.Equal(t, "linh.tran", user.Username)
	assert.Equal(t, "Trần Mỹ Linh", user.FullName)
	assert.Equal(t, "r2", user.RoleID)
	assert.Equal(t, "Thủ kho", user.RoleName)
	assert.True(t, user.IsActive)
}

func TestNormalizeRolePermissions(t *testing.T) {
	role, err := NormalizeRole(record(t, `{
		"role_id": "r1",
		"role_name": "admin",
		"permission_keys": ["orders.read", "orders.write"]
	}`))

	require.NoError(t, err)
	assert.Equal(t, "r1", role.ID)
	assert.Equal(t, "admin", role.Name)
	assert.Equal(t, []string{"orders.read", "orders.write"}, role.Permissions)
}
