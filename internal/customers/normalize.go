package customers

import (
	"github.com/warebridge/warebridge/internal/masterdata"
	"github.com/warebridge/warebridge/internal/upstream"
)

// Normalize maps one raw backend customer to the stable internal record.
// Every field probes camelCase, snake_case and nested relations in order;
// only the identity is mandatory.
func Normalize(rec upstream.Record) (Customer, error) {
	id, err := rec.Identity("customer", "id", "customerId", "customer_id")
	if err != nil {
		return Customer{}, err
	}
	return Customer{
		ID:          id,
		Code:        rec.Str("code", "customerCode", "customer_code"),
		Name:        rec.Str("name", "customerName", "customer_name"),
		Email:       rec.Str("email"),
		Phone:       rec.Str("phone", "phoneNumber", "phone_number"),
		AddressInfo: normalizeAddress(rec.Child("addressInfo", "address_info", "address")),
		VatInfo:     normalizeVat(rec.Child("vatInfo", "vat_info", "vat")),
		Note:        rec.Str("note", "notes", "description"),
		IsDeleted:   rec.Bool("isDeleted", "is_deleted", "deleted"),
		CreatedAt:   rec.Str("createdAt", "created_at"),
		UpdatedAt:   rec.Str("updatedAt", "updated_at"),
	}, nil
}

func normalizeAddress(rec upstream.Record) *AddressInfo {
	if rec == nil {
		return nil
	}
	addr := AddressInfo{
		Street:   rec.Str("street", "streetAddress", "street_address", "detail"),
		Province: masterdata.NormalizeUnitRef(rec.Child("province", "provinceInfo", "province_info")),
		District: masterdata.NormalizeUnitRef(rec.Child("district", "districtInfo", "district_info")),
		Ward:     masterdata.NormalizeUnitRef(rec.Child("ward", "wardInfo", "ward_info")),
	}
	if addr.Street == "" && addr.Province == nil && addr.District == nil && addr.Ward == nil {
		return nil
	}
	return &addr
}

// normalizeVat resolves to nil rather than an empty-but-present structure
// when none of the sub-fields carry a value.
func normalizeVat(rec upstream.Record) *VatInfo {
	if rec == nil {
		return nil
	}
	vat := VatInfo{
		TaxCode:     rec.Str("taxCode", "tax_code"),
		CompanyName: rec.Str("companyName", "company_name"),
		Email:       rec.Str("email", "vatEmail", "vat_email"),
		Address:     rec.Str("address", "vatAddress", "vat_address"),
	}
	if vat == (VatInfo{}) {
		return nil
	}
	return &vat
}
