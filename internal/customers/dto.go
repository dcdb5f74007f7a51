package customers

// CreateRequest is the inbound payload for creating a customer.
type CreateRequest struct {
	Code        string       `json:"code,omitempty" validate:"omitempty,max=50"`
	Name        string       `json:"name" validate:"required,max=200"`
	Email       string       `json:"email,omitempty" validate:"omitempty,email"`
	Phone       string       `json:"phone,omitempty" validate:"omitempty,max=50"`
	AddressInfo *AddressInfo `json:"addressInfo,omitempty"`
	VatInfo     *VatInfo     `json:"vatInfo,omitempty"`
	Note        string       `json:"note,omitempty"`
}

// UpdateRequest is the inbound payload for updating a customer. Only the
// fields present are forwarded.
type UpdateRequest struct {
	Name        *string      `json:"name,omitempty" validate:"omitempty,max=200"`
	Email       *string      `json:"email,omitempty" validate:"omitempty,email"`
	Phone       *string      `json:"phone,omitempty" validate:"omitempty,max=50"`
	AddressInfo *AddressInfo `json:"addressInfo,omitempty"`
	VatInfo     *VatInfo     `json:"vatInfo,omitempty"`
	Note        *string      `json:"note,omitempty"`
	IsDeleted   *bool        `json:"isDeleted,omitempty"`
}
