package notifications

import "github.com/warebridge/warebridge/internal/upstream"

// Normalize maps one raw backend notification to the stable internal
// record.
func Normalize(rec upstream.Record) (Notification, error) {
	id, err := rec.Identity("notification", "id", "notificationId", "notification_id")
	if err != nil {
		return Notification{}, err
	}
	kind := Type(rec.StrOr(string(TypeInfo), "type", "notificationType", "notification_type"))
	if !kind.IsValid() {
		kind = TypeInfo
	}
	return Notification{
		ID:        id,
		UserID:    rec.Str("userId", "user_id", "user.id"),
		Title:     rec.Str("title"),
		Message:   rec.Str("message", "content", "body"),
		Type:      kind,
		IsRead:    rec.Bool("isRead", "is_read", "read"),
		IsDeleted: rec.Bool("isDeleted", "is_deleted", "deleted"),
		CreatedAt: rec.Str("createdAt", "created_at"),
		UpdatedAt: rec.Str("updatedAt", "updated_at"),
	}, nil
}
