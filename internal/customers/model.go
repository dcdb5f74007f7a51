// Package customers normalizes and serves customer records.
package customers

import "github.com/warebridge/warebridge/internal/masterdata"

// AddressInfo is a structured customer address with up to three
// administrative levels attached.
type AddressInfo struct {
	Street   string                            `json:"street,omitempty"`
	Province *masterdata.AdministrativeUnitRef `json:"province,omitempty"`
	District *masterdata.AdministrativeUnitRef `json:"district,omitempty"`
	Ward     *masterdata.AdministrativeUnitRef `json:"ward,omitempty"`
}

// VatInfo carries the customer's invoicing identity. All-or-nothing: when
// no sub-field has a value the whole structure is absent from the record.
type VatInfo struct {
	TaxCode     string `json:"taxCode,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address,omitempty"`
}

// Customer is the stable internal customer record.
type Customer struct {
	ID          string       `json:"id"`
	Code        string       `json:"code,omitempty"`
	Name        string       `json:"name"`
	Email       string       `json:"email,omitempty"`
	Phone       string       `json:"phone,omitempty"`
	AddressInfo *AddressInfo `json:"addressInfo,omitempty"`
	VatInfo     *VatInfo     `json:"vatInfo,omitempty"`
	Note        string       `json:"note,omitempty"`
	IsDeleted   bool         `json:"isDeleted"`
	CreatedAt   string       `json:"createdAt"`
	UpdatedAt   string       `json:"updatedAt"`
}
