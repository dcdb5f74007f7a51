// Package orders normalizes and serves sales order records.
package orders

// OrderItem is one line of an order.
type OrderItem struct {
	ID          string  `json:"id,omitempty"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName,omitempty"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// Order is the stable internal order record. Tags hold tag names, not ids;
// the catalog they come from is client-defined (see the ordertags package).
type Order struct {
	ID              string      `json:"id"`
	Code            string      `json:"code,omitempty"`
	CustomerID      string      `json:"customerId,omitempty"`
	CustomerName    string      `json:"customerName,omitempty"`
	CustomerAddress string      `json:"customerAddress,omitempty"`
	CustomerPhone   string      `json:"customerPhone,omitempty"`
	Status          string      `json:"status,omitempty"`
	Items           []OrderItem `json:"items,omitempty"`
	Total           float64     `json:"total"`
	Tags            []string    `json:"tags,omitempty"`
	Note            string      `json:"note,omitempty"`
	IsDeleted       bool        `json:"isDeleted"`
	CreatedAt       string      `json:"createdAt"`
	UpdatedAt       string      `json:"updatedAt"`
}
