// Package ordertags implements the client-defined order tag catalog.
//
// Tags are NOT backend-persisted entities: the catalog is a fixed list
// compiled into the gateway, and assignments live as tag names inside each
// order's tags array, written through the generic order-update endpoint.
// A future backend-owned catalog with real CRUD would replace all of this.
package ordertags

import "github.com/google/uuid"

// Tag is one catalog entry.
type Tag struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// The two reconciliation tags are mutually exclusive on any order.
const (
	TagReconciled    = "Đã đối soát"
	TagNotReconciled = "Chưa đối soát"
)

// catalog is the fixed set of predefined tags covering reconciliation and
// customer-relationship states.
var catalog = []Tag{
	{ID: "tag-reconciled", Name: TagReconciled, Color: "#22c55e", Description: "Đơn hàng đã được đối soát công nợ"},
	{ID: "tag-not-reconciled", Name: TagNotReconciled, Color: "#ef4444", Description: "Đơn hàng chưa được đối soát công nợ"},
	{ID: "tag-vip", Name: "Khách VIP", Color: "#eab308", Description: "Khách hàng thân thiết, ưu tiên xử lý"},
	{ID: "tag-new-customer", Name: "Khách mới", Color: "#3b82f6", Description: "Đơn đầu tiên của khách hàng mới"},
	{ID: "tag-wholesale", Name: "Đơn sỉ", Color: "#8b5cf6", Description: "Đơn hàng bán sỉ số lượng lớn"},
	{ID: "tag-urgent", Name: "Gấp", Color: "#f97316", Description: "Đơn hàng cần giao gấp"},
}

// AllTags returns the fixed catalog. The slice is a copy; callers may
// reorder it freely.
func AllTags() []Tag {
	out := make([]Tag, len(catalog))
	copy(out, catalog)
	return out
}

// NewLocalTag fabricates a catalog entry with a local-only id. Nothing is
// persisted anywhere; the entry vanishes with the process. Kept for
// compatibility with the dashboard's tag-creation dialog.
func NewLocalTag(name, color, description string) Tag {
	return Tag{
		ID:          "local-" + uuid.NewString(),
		Name:        name,
		Color:       color,
		Description: description,
	}
}
