package masterdata

import "github.com/warebridge/warebridge/internal/upstream"

// NormalizeUnitRef extracts a minimal administrative unit reference; nil
// when the relation carries nothing usable.
func NormalizeUnitRef(rec upstream.Record) *AdministrativeUnitRef {
	if rec == nil {
		return nil
	}
	ref := AdministrativeUnitRef{
		ID:   rec.Str("id", "code"),
		Name: rec.Str("name", "fullName", "full_name"),
	}
	if ref.ID == "" && ref.Name == "" {
		return nil
	}
	return &ref
}

// NormalizeAdministrativeUnit maps a raw administrative unit record.
func NormalizeAdministrativeUnit(rec upstream.Record) (AdministrativeUnit, error) {
	id, err := rec.Identity("administrative unit", "id", "code")
	if err != nil {
		return AdministrativeUnit{}, err
	}
	return AdministrativeUnit{
		ID:        id,
		Code:      rec.Str("code"),
		Name:      rec.Str("name", "fullName", "full_name"),
		Level:     rec.Str("level", "divisionType", "division_type"),
		ParentID:  rec.Str("parentId", "parent_id", "parentCode", "parent_code"),
		IsDeleted: rec.Bool("isDeleted", "is_deleted", "deleted"),
	}, nil
}

// NormalizeSupplier maps a raw supplier record.
func NormalizeSupplier(rec upstream.Record) (Supplier, error) {
	id, err := rec.Identity("supplier", "id", "supplierId", "supplier_id")
	if err != nil {
		return Supplier{}, err
	}
	return Supplier{
		ID:        id,
		Code:      rec.Str("code", "supplierCode", "supplier_code"),
		Name:      rec.Str("name", "supplierName", "supplier_name"),
		Email:     rec.Str("email"),
		Phone:     rec.Str("phone", "phoneNumber", "phone_number"),
		Address:   rec.Str("address"),
		TaxCode:   rec.Str("taxCode", "tax_code"),
		IsDeleted: rec.Bool("isDeleted", "is_deleted", "deleted"),
		CreatedAt: rec.Str("createdAt", "created_at"),
		UpdatedAt: rec.Str("updatedAt", "updated_at"),
	}, nil
}

// NormalizeWarehouse maps a raw warehouse record.
func NormalizeWarehouse(rec upstream.Record) (Warehouse, error) {
	id, err := rec.Identity("warehouse", "id", "warehouseId", "warehouse_id")
	if err != nil {
		return Warehouse{}, err
	}
	return Warehouse{
		ID:        id,
		Code:      rec.Str("code", "warehouseCode", "warehouse_code"),
		Name:      rec.Str("name", "warehouseName", "warehouse_name"),
		Address:   rec.Str("address"),
		IsDeleted: rec.Bool("isDeleted", "is_deleted", "deleted"),
		CreatedAt: rec.Str("createdAt", "created_at"),
		UpdatedAt: rec.Str("updatedAt", "updated_at"),
	}, nil
}

// NormalizeCategory maps a raw category record.
func NormalizeCategory(rec upstream.Record) (Category, error) {
	id, err := rec.Identity("category", "id", "categoryId", "category_id")
	if err != nil {
		return Category{}, err
	}
	return Category{
		ID:          id,
		Code:        rec.Str("code", "categoryCode", "category_code"),
		Name:        rec.Str("name", "categoryName", "category_name"),
		Description: rec.Str("description"),
		IsDeleted:   rec.Bool("isDeleted", "is_deleted", "deleted"),
		CreatedAt:   rec.Str("createdAt", "created_at"),
		UpdatedAt:   rec.Str("updatedAt", "updated_at"),
	}, nil
}

// NormalizeProduct maps a raw product record.
func NormalizeProduct(rec upstream.Record) (Product, error) {
	id, err := rec.Identity("product", "id", "productId", "product_id")
	if err != nil {
		return Product{}, err
	}
	return Product{
		ID:         id,
		Code:       rec.Str("code", "productCode", "product_code"),
		Name:       rec.Str("name", "productName", "product_name"),
		Unit:       rec.Str("unit", "unitName", "unit_name"),
		Price:      rec.Float("price", "unitPrice", "unit_price"),
		CategoryID: rec.Str("categoryId", "category_id", "category.id"),
		IsDeleted:  rec.Bool("isDeleted", "is_deleted", "deleted"),
		CreatedAt:  rec.Str("createdAt", "created_at"),
		UpdatedAt:  rec.Str("updatedAt", "updated_at"),
	}, nil
}
