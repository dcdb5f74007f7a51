// Package payments normalizes and serves order payment records.
package payments

// Method is how a payment was made.
type Method string

const (
	MethodCash         Method = "cash"
	MethodBankTransfer Method = "bank_transfer"
	MethodCard         Method = "card"
	MethodOther        Method = "other"
)

// IsValid reports whether the method is a known value.
func (m Method) IsValid() bool {
	switch m {
	case MethodCash, MethodBankTransfer, MethodCard, MethodOther:
		return true
	default:
		return false
	}
}

// Payment is the stable internal payment record. Each payment belongs to
// exactly one order; Attachments holds file paths, never content.
type Payment struct {
	ID            string   `json:"id"`
	OrderID       string   `json:"orderId"`
	Amount        float64  `json:"amount"`
	Method        Method   `json:"method"`
	Date          string   `json:"date,omitempty"`
	BankReference string   `json:"bankReference,omitempty"`
	Attachments   []string `json:"attachments,omitempty"`
	Note          string   `json:"note,omitempty"`
	IsDeleted     bool     `json:"isDeleted"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}
