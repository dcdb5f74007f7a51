// Package users normalizes and serves user and role records.
package users

// Role is one named permission bundle.
type Role struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
	IsDeleted   bool     `json:"isDeleted"`
}

// User is the stable internal user record.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username,omitempty"`
	FullName  string `json:"fullName,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	RoleID    string `json:"roleId,omitempty"`
	RoleName  string `json:"roleName,omitempty"`
	IsActive  bool   `json:"isActive"`
	IsDeleted bool   `json:"isDeleted"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
