package users

import "github.com/warebridge/warebridge/internal/upstream"

// Normalize maps one raw backend user to the stable internal record.
func Normalize(rec upstream.Record) (User, error) {
	id, err := rec.Identity("user", "id", "userId", "user_id")
	if err != nil {
		return User{}, err
	}
	return User{
		ID:        id,
		Username:  rec.Str("username", "userName", "user_name"),
		FullName:  rec.Str("fullName", "full_name", "name"),
		Email:     rec.Str("email"),
		Phone:     rec.Str("phone", "phoneNumber", "phone_number"),
		RoleID:    rec.Str("roleId", "role_id", "role.id"),
		RoleName:  rec.Str("roleName", "role_name", "role.name"),
		IsActive:  rec.Bool("isActive", "is_active", "active"),
		IsDeleted: rec.Bool("isDeleted", "is_deleted", "deleted"),
		CreatedAt: rec.Str("createdAt", "created_at"),
		UpdatedAt: rec.Str("updatedAt", "updated_at"),
	}, nil
}

// NormalizeRole maps one raw backend role to the stable internal record.
func NormalizeRole(rec upstream.Record) (Role, error) {
	id, err := rec.Identity("role", "id", "roleId", "role_id")
	if err != nil {
		return Role{}, err
	}
	return Role{
		ID:          id,
		Name:        rec.Str("name", "roleName", "role_name"),
		Description: rec.Str("description"),
		Permissions: rec.Strings("permissions", "permissionKeys", "permission_keys"),
		IsDeleted:   rec.Bool("isDeleted", "is_deleted", "deleted"),
	}, nil
}
