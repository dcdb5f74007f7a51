package orders

import "github.com/warebridge/warebridge/internal/upstream"

// Normalize maps one raw backend order to the stable internal record.
func Normalize(rec upstream.Record) (Order, error) {
	id, err := rec.Identity("order", "id", "orderId", "order_id")
	if err != nil {
		return Order{}, err
	}
	order := Order{
		ID:              id,
		Code:            rec.Str("code", "orderCode", "order_code"),
		CustomerID:      rec.Str("customerId", "customer_id", "customer.id"),
		CustomerName:    rec.Str("customerName", "customer_name", "customer.name"),
		CustomerAddress: rec.Str("customerAddress", "customer_address", "customer.address"),
		CustomerPhone:   rec.Str("customerPhone", "customer_phone", "customer.phone"),
		Status:          rec.Str("status"),
		Total:           rec.Float("total", "totalAmount", "total_amount"),
		Tags:            rec.Strings("tags"),
		Note:            rec.Str("note", "notes"),
		IsDeleted:       rec.Bool("isDeleted", "is_deleted", "deleted"),
		CreatedAt:       rec.Str("createdAt", "created_at"),
		UpdatedAt:       rec.Str("updatedAt", "updated_at"),
	}
	for _, item := range rec.List("items", "orderItems", "order_items", "details") {
		order.Items = append(order.Items, OrderItem{
			ID:          item.Str("id"),
			ProductID:   item.Str("productId", "product_id", "product.id"),
			ProductName: item.Str("productName", "product_name", "product.name"),
			Quantity:    item.Float("quantity", "qty"),
			UnitPrice:   item.Float("unitPrice", "unit_price", "price"),
		})
	}
	return order, nil
}
