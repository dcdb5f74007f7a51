// Package stocklevels normalizes and serves per-warehouse stock levels.
package stocklevels

import "github.com/warebridge/warebridge/internal/masterdata"

// StockLevel is the quantity of one product in one warehouse. At most one
// active (non-deleted) row should exist per (warehouse, product) pair; the
// pair uniqueness is enforced at the call site by a read-then-write
// upsert, not by the backend's data layer.
type StockLevel struct {
	ID          string                `json:"id"`
	WarehouseID string                `json:"warehouseId"`
	ProductID   string                `json:"productId"`
	Quantity    float64               `json:"quantity"`
	Warehouse   *masterdata.Warehouse `json:"warehouse,omitempty"`
	Product     *masterdata.Product   `json:"product,omitempty"`
	IsDeleted   bool                  `json:"isDeleted"`
	CreatedAt   string                `json:"createdAt"`
	UpdatedAt   string                `json:"updatedAt"`
}
