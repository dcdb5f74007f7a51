package exportslips

import "github.com/warebridge/warebridge/internal/upstream"

// Normalize maps one raw warehouse receipt to the stable slip record.
func Normalize(rec upstream.Record) (Slip, error) {
	id, err := rec.Identity("export slip", "id", "slipId", "slip_id", "receiptId", "receipt_id")
	if err != nil {
		return Slip{}, err
	}
	slip := Slip{
		ID:          id,
		Code:        rec.Str("code", "slipCode", "slip_code", "receiptCode", "receipt_code"),
		OrderID:     rec.Str("orderId", "order_id", "order.id"),
		WarehouseID: rec.Str("warehouseId", "warehouse_id", "warehouse.id"),
		Status:      Status(rec.Str("status")),
		Note:        rec.Str("note", "notes"),
		Order:       normalizeSnapshot(rec.Child("order", "orderInfo", "order_info")),
		CreatedBy:   rec.Str("createdBy", "created_by"),
		ApprovedBy:  rec.Str("approvedBy", "approved_by"),
		ExportedBy:  rec.Str("exportedBy", "exported_by"),
		IsDeleted:   rec.Bool("isDeleted", "is_deleted", "deleted"),
		CreatedAt:   rec.Str("createdAt", "created_at"),
		UpdatedAt:   rec.Str("updatedAt", "updated_at"),
	}
	for _, item := range rec.List("items", "slipItems", "slip_items", "details") {
		slip.Items = append(slip.Items, Item{
			ID:           item.Str("id"),
			ProductID:    item.Str("productId", "product_id", "product.id"),
			ProductName:  item.Str("productName", "product_name", "product.name"),
			RequestedQty: item.Float("requestedQty", "requested_qty", "requestedQuantity", "requested_quantity"),
			ActualQty:    item.Float("actualQty", "actual_qty", "actualQuantity", "actual_quantity"),
			RemainingQty: item.Float("remainingQty", "remaining_qty", "remainingQuantity", "remaining_quantity"),
			UnitPrice:    item.Float("unitPrice", "unit_price", "price"),
		})
	}
	return slip, nil
}

func normalizeSnapshot(rec upstream.Record) *OrderSnapshot {
	if rec == nil {
		return nil
	}
	snap := OrderSnapshot{
		CustomerName:    rec.Str("customerName", "customer_name", "customer.name"),
		CustomerAddress: rec.Str("customerAddress", "customer_address", "customer.address"),
		CustomerPhone:   rec.Str("customerPhone", "customer_phone", "customer.phone"),
		Total:           rec.Float("total", "totalAmount", "total_amount"),
	}
	for _, line := range rec.List("items", "orderItems", "order_items") {
		snap.Items = append(snap.Items, OrderLine{
			ProductID:   line.Str("productId", "product_id", "product.id"),
			ProductName: line.Str("productName", "product_name", "product.name"),
			Quantity:    line.Float("quantity", "qty"),
			UnitPrice:   line.Float("unitPrice", "unit_price", "price"),
		})
	}
	if snap.CustomerName == "" && snap.CustomerPhone == "" && len(snap.Items) == 0 && snap.Total == 0 {
		return nil
	}
	return &snap
}
