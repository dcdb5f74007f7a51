package quotations

import "github.com/warebridge/warebridge/internal/upstream"

// Normalize maps one raw backend quotation to the stable internal record.
func Normalize(rec upstream.Record) (Quotation, error) {
	id, err := rec.Identity("quotation", "id", "quotationId", "quotation_id")
	if err != nil {
		return Quotation{}, err
	}
	q := Quotation{
		ID:           id,
		Code:         rec.Str("code", "quotationCode", "quotation_code"),
		ContractCode: rec.Str("contractCode", "contract_code"),
		CustomerID:   rec.Str("customerId", "customer_id", "customer.id"),
		CustomerName: rec.Str("customerName", "customer_name", "customer.name"),
		Status:       rec.Str("status"),
		Type:         rec.Str("type", "quotationType", "quotation_type"),
		CreatedBy:    rec.Str("createdBy", "created_by", "creator.id"),
		IsDeleted:    rec.Bool("isDeleted", "is_deleted", "deleted"),
		CreatedAt:    rec.Str("createdAt", "created_at"),
		UpdatedAt:    rec.Str("updatedAt", "updated_at"),
	}
	for _, line := range rec.List("details", "quotationDetails", "quotation_details", "items") {
		q.Details = append(q.Details, Detail{
			ID:          line.Str("id"),
			ProductID:   line.Str("productId", "product_id", "product.id"),
			ProductName: line.Str("productName", "product_name", "product.name"),
			Price:       line.Float("price", "unitPrice", "unit_price"),
			Quantity:    line.Float("quantity", "qty"),
			Note:        line.Str("note", "notes"),
		})
	}
	return q, nil
}
