// Package exportslips normalizes and serves export slips: warehouse
// documents authorizing goods to leave a warehouse against an order. The
// legacy backend models them as warehouse receipts with type=export.
package exportslips

// Status is the lifecycle state of an export slip. Transitions move
// strictly forward through approval, picking and export, or sideways to
// rejected/cancelled; the backend enforces legality, the client only
// shapes requests.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusPicked    Status = "picked"
	StatusExported  Status = "exported"
	StatusCancelled Status = "cancelled"

	// Transitional values some backend deployments emit ad hoc.
	StatusCompleted     Status = "completed"
	StatusPartialExport Status = "partial_export"
)

// IsValid reports whether the status is a known value.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusPicked,
		StatusExported, StatusCancelled, StatusCompleted, StatusPartialExport:
		return true
	default:
		return false
	}
}

// Item is one line of an export slip.
type Item struct {
	ID           string  `json:"id,omitempty"`
	ProductID    string  `json:"productId"`
	ProductName  string  `json:"productName,omitempty"`
	RequestedQty float64 `json:"requestedQty"`
	ActualQty    float64 `json:"actualQty"`
	RemainingQty float64 `json:"remainingQty"`
	UnitPrice    float64 `json:"unitPrice"`
}

// OrderSnapshot is the denormalized copy of the originating order carried
// on a slip for display.
type OrderSnapshot struct {
	CustomerName    string      `json:"customerName,omitempty"`
	CustomerAddress string      `json:"customerAddress,omitempty"`
	CustomerPhone   string      `json:"customerPhone,omitempty"`
	Items           []OrderLine `json:"items,omitempty"`
	Total           float64     `json:"total"`
}

// OrderLine is one line of the order snapshot.
type OrderLine struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName,omitempty"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// Slip is the stable internal export slip record.
type Slip struct {
	ID          string         `json:"id"`
	Code        string         `json:"code,omitempty"`
	OrderID     string         `json:"orderId,omitempty"`
	WarehouseID string         `json:"warehouseId,omitempty"`
	Status      Status         `json:"status"`
	Note        string         `json:"note,omitempty"`
	Items       []Item         `json:"items,omitempty"`
	Order       *OrderSnapshot `json:"order,omitempty"`
	CreatedBy   string         `json:"createdBy,omitempty"`
	ApprovedBy  string         `json:"approvedBy,omitempty"`
	ExportedBy  string         `json:"exportedBy,omitempty"`
	IsDeleted   bool           `json:"isDeleted"`
	CreatedAt   string         `json:"createdAt"`
	UpdatedAt   string         `json:"updatedAt"`
}
