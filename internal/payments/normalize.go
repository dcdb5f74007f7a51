package payments

import "github.com/warebridge/warebridge/internal/upstream"

// Normalize maps one raw backend payment to the stable internal record.
// Unknown methods coerce to "other" so downstream filters stay closed over
// the enum.
func Normalize(rec upstream.Record) (Payment, error) {
	id, err := rec.Identity("payment", "id", "paymentId", "payment_id")
	if err != nil {
		return Payment{}, err
	}
	method := Method(rec.Str("method", "paymentMethod", "payment_method"))
	if !method.IsValid() {
		method = MethodOther
	}
	return Payment{
		ID:            id,
		OrderID:       rec.Str("orderId", "order_id", "order.id"),
		Amount:        rec.Float("amount", "paymentAmount", "payment_amount"),
		Method:        method,
		Date:          rec.Str("date", "paymentDate", "payment_date"),
		BankReference: rec.Str("bankReference", "bank_reference", "bankRef", "bank_ref"),
		Attachments:   rec.Strings("attachments", "files", "filePaths", "file_paths"),
		Note:          rec.Str("note", "notes"),
		IsDeleted:     rec.Bool("isDeleted", "is_deleted", "deleted"),
		CreatedAt:     rec.Str("createdAt", "created_at"),
		UpdatedAt:     rec.Str("updatedAt", "updated_at"),
	}, nil
}
