// Package notifications normalizes and serves user notifications.
package notifications

// Type classifies a notification for display. Unrecognized backend values
// coerce to TypeInfo.
type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

// IsValid reports whether the type is a known value.
func (t Type) IsValid() bool {
	switch t {
	case TypeInfo, TypeSuccess, TypeWarning, TypeError:
		return true
	default:
		return false
	}
}

// Notification is the stable internal notification record.
type Notification struct {
	ID        string `json:"id"`
	UserID    string `json:"userId,omitempty"`
	Title     string `json:"title,omitempty"`
	Message   string `json:"message,omitempty"`
	Type      Type   `json:"type"`
	IsRead    bool   `json:"isRead"`
	IsDeleted bool   `json:"isDeleted"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
