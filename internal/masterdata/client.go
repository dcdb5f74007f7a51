package masterdata

import (
	"context"
	"fmt"

	"github.com/warebridge/warebridge/internal/upstream"
)

// Client exposes the master-data endpoints of the legacy backend.
type Client struct {
	api *upstream.Client
}

// NewClient wraps the shared upstream client.
func NewClient(api *upstream.Client) *Client {
	return &Client{api: api}
}

// ListParams are the common filters for master-data listings.
type ListParams struct {
	Page           int
	Limit          int
	Search         string
	IncludeDeleted bool
}

func (p ListParams) query() map[string]any {
	params := map[string]any{
		"page":  p.Page,
		"limit": p.Limit,
	}
	if p.Search != "" {
		params["search"] = upstream.FoldSearch(p.Search)
	}
	if p.IncludeDeleted {
		params["include_deleted"] = true
	}
	return params
}

// SupplierList is a normalized page of suppliers.
type SupplierList struct {
	Items []Supplier `json:"items"`
	Total int        `json:"total"`
	Page  int        `json:"page"`
	Limit int        `json:"limit"`
}

// ListSuppliers fetches and normalizes one page of suppliers.
func (c *Client) ListSuppliers(ctx context.Context, p ListParams) (SupplierList, error) {
	raw, err := c.api.Get(ctx, "/suppliers", upstream.BuildQuery(p.query()))
	if err != nil {
		return SupplierList{}, err
	}
	list := upstream.UnwrapList(raw, p.Page, p.Limit, "suppliers")
	out := SupplierList{Total: list.Total, Page: list.Page, Limit: list.Limit}
	for _, rec := range list.Items {
		s, err := NormalizeSupplier(rec)
		if err != nil {
			return SupplierList{}, fmt.Errorf("normalize supplier: %w", err)
		}
		out.Items = append(out.Items, s)
	}
	return out, nil
}

// WarehouseList is a normalized page of warehouses.
type WarehouseList struct {
	Items []Warehouse `json:"items"`
	Total int         `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

// ListWarehouses fetches and normalizes one page of warehouses.
func (c *Client) ListWarehouses(ctx context.Context, p ListParams) (WarehouseList, error) {
	raw, err := c.api.Get(ctx, "/warehouses", upstream.BuildQuery(p.query()))
	if err != nil {
		return WarehouseList{}, err
	}
	list := upstream.UnwrapList(raw, p.Page, p.Limit, "warehouses")
	out := WarehouseList{Total: list.Total, Page: list.Page, Limit: list.Limit}
	for _, rec := range list.Items {
		w, err := NormalizeWarehouse(rec)
		if err != nil {
			return WarehouseList{}, fmt.Errorf("normalize warehouse: %w", err)
		}
		out.Items = append(out.Items, w)
	}
	return out, nil
}

// CategoryList is a normalized page of categories.
type CategoryList struct {
	Items []Category `json:"items"`
	Total int        `json:"total"`
	Page  int        `json:"page"`
	Limit int        `json:"limit"`
}

// ListCategories fetches and normalizes one page of categories.
func (c *Client) ListCategories(ctx context.Context, p ListParams) (CategoryList, error) {
	raw, err := c.api.Get(ctx, "/categories", upstream.BuildQuery(p.query()))
	if err != nil {
		return CategoryList{}, err
	}
	list := upstream.UnwrapList(raw, p.Page, p.Limit, "categories")
	out := CategoryList{Total: list.Total, Page: list.Page, Limit: list.Limit}
	for _, rec := range list.Items {
		cat, err := NormalizeCategory(rec)
		if err != nil {
			return CategoryList{}, fmt.Errorf("normalize category: %w", err)
		}
		out.Items = append(out.Items, cat)
	}
	return out, nil
}

// ProductList is a normalized page of products.
type ProductList struct {
	Items []Product `json:"items"`
	Total int       `json:"total"`
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
}

// ListProducts fetches and normalizes one page of products.
func (c *Client) ListProducts(ctx context.Context, p ListParams) (ProductList, error) {
	raw, err := c.api.Get(ctx, "/products", upstream.BuildQuery(p.query()))
	if err != nil {
		return ProductList{}, err
	}
	list := upstream.UnwrapList(raw, p.Page, p.Limit, "products")
	out := ProductList{Total: list.Total, Page: list.Page, Limit: list.Limit}
	for _, rec := range list.Items {
		prod, err := NormalizeProduct(rec)
		if err != nil {
			return ProductList{}, fmt.Errorf("normalize product: %w", err)
		}
		out.Items = append(out.Items, prod)
	}
	return out, nil
}

// GetProduct fetches one product by id.
func (c *Client) GetProduct(ctx context.Context, id string) (Product, error) {
	raw, err := c.api.Get(ctx, "/products/"+id, nil)
	if err != nil {
		return Product{}, err
	}
	return NormalizeProduct(upstream.UnwrapRecord(raw, "product"))
}

// ListAdministrativeUnits fetches the province/district/ward hierarchy.
// level is "province", "district" or "ward"; parentID narrows districts to
// a province or wards to a district.
func (c *Client) ListAdministrativeUnits(ctx context.Context, level, parentID string) ([]AdministrativeUnit, error) {
	q := upstream.BuildQuery(map[string]any{
		"level":     level,
		"parent_id": parentID,
	})
	raw, err := c.api.Get(ctx, "/administrative", q)
	if err != nil {
		return nil, err
	}
	list := upstream.UnwrapList(raw, 0, 0, "units", "provinces", "districts", "wards")
	units := make([]AdministrativeUnit, 0, len(list.Items))
	for _, rec := range list.Items {
		u, err := NormalizeAdministrativeUnit(rec)
		if err != nil {
			return nil, fmt.Errorf("normalize administrative unit: %w", err)
		}
		units = append(units, u)
	}
	return units, nil
}
