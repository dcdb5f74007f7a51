// Package quotations normalizes and serves quotation records.
package quotations

// Detail is one line of a quotation. ProductName is a denormalized display
// copy of the referenced product.
type Detail struct {
	ID          string  `json:"id,omitempty"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName,omitempty"`
	Price       float64 `json:"price"`
	Quantity    float64 `json:"quantity"`
	Note        string  `json:"note,omitempty"`
}

// Quotation is the stable internal quotation record. CustomerName is a
// denormalized display copy of the referenced customer.
type Quotation struct {
	ID           string   `json:"id"`
	Code         string   `json:"code,omitempty"`
	ContractCode string   `json:"contractCode,omitempty"`
	CustomerID   string   `json:"customerId,omitempty"`
	CustomerName string   `json:"customerName,omitempty"`
	Status       string   `json:"status,omitempty"`
	Type         string   `json:"type,omitempty"`
	CreatedBy    string   `json:"createdBy,omitempty"`
	Details      []Detail `json:"details,omitempty"`
	IsDeleted    bool     `json:"isDeleted"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}
