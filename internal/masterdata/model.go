// Package masterdata exposes the simple reference resources: suppliers,
// warehouses, product categories and administrative units.
package masterdata

// AdministrativeUnitRef is the minimal province/district/ward reference
// embedded in addresses.
type AdministrativeUnitRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AdministrativeUnit is one node of the province/district/ward hierarchy.
type AdministrativeUnit struct {
	ID        string `json:"id"`
	Code      string `json:"code,omitempty"`
	Name      string `json:"name"`
	Level     string `json:"level,omitempty"`
	ParentID  string `json:"parentId,omitempty"`
	IsDeleted bool   `json:"isDeleted"`
}

// Supplier is a goods supplier.
type Supplier struct {
	ID        string `json:"id"`
	Code      string `json:"code,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	TaxCode   string `json:"taxCode,omitempty"`
	IsDeleted bool   `json:"isDeleted"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Warehouse is a physical storage location.
type Warehouse struct {
	ID        string `json:"id"`
	Code      string `json:"code,omitempty"`
	Name      string `json:"name"`
	Address   string `json:"address,omitempty"`
	IsDeleted bool   `json:"isDeleted"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Category groups products.
type Category struct {
	ID          string `json:"id"`
	Code        string `json:"code,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsDeleted   bool   `json:"isDeleted"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// Product is the catalog entry referenced by stock levels, quotations and
// export slip items.
type Product struct {
	ID         string  `json:"id"`
	Code       string  `json:"code,omitempty"`
	Name       string  `json:"name"`
	Unit       string  `json:"unit,omitempty"`
	Price      float64 `json:"price"`
	CategoryID string  `json:"categoryId,omitempty"`
	IsDeleted  bool    `json:"isDeleted"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}
