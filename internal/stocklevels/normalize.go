package stocklevels

import (
	"github.com/warebridge/warebridge/internal/masterdata"
	"github.com/warebridge/warebridge/internal/upstream"
)

// Normalize maps one raw backend stock level to the stable internal
// record. The optional warehouse/product summaries attach only when the
// nested relation itself normalizes.
func Normalize(rec upstream.Record) (StockLevel, error) {
	id, err := rec.Identity("stock level", "id", "stockLevelId", "stock_level_id")
	if err != nil {
		return StockLevel{}, err
	}
	level := StockLevel{
		ID:          id,
		WarehouseID: rec.Str("warehouseId", "warehouse_id", "warehouse.id"),
		ProductID:   rec.Str("productId", "product_id", "product.id"),
		Quantity:    rec.Float("quantity", "qty", "stockQuantity", "stock_quantity"),
		IsDeleted:   rec.Bool("isDeleted", "is_deleted", "deleted"),
		CreatedAt:   rec.Str("createdAt", "created_at"),
		UpdatedAt:   rec.Str("updatedAt", "updated_at"),
	}
	if child := rec.Child("warehouse"); child != nil {
		if w, err := masterdata.NormalizeWarehouse(child); err == nil {
			level.Warehouse = &w
		}
	}
	if child := rec.Child("product"); child != nil {
		if p, err := masterdata.NormalizeProduct(child); err == nil {
			level.Product = &p
		}
	}
	return level, nil
}
