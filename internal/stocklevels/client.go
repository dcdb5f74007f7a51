package stocklevels

import (
	"context"
	"fmt"

	"github.com/warebridge/warebridge/internal/upstream"
)

// Client is the stock level resource client.
type Client struct {
	api *upstream.Client
}

// NewClient wraps the shared upstream client.
func NewClient(api *upstream.Client) *Client {
	return &Client{api: api}
}

// ListParams filter the stock level listing.
type ListParams struct {
	Page        int
	Limit       int
	WarehouseID string
	ProductID   string
}

// ListResult is one normalized page of stock levels.
type ListResult struct {
	Items []StockLevel `json:"items"`
	Total int          `json:"total"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
}

// List fetches one page of stock levels.
func (c *Client) List(ctx context.Context, p ListParams) (ListResult, error) {
	q := upstream.BuildQuery(map[string]any{
		"page":         p.Page,
		"limit":        p.Limit,
		"warehouse_id": p.WarehouseID,
		"product_id":   p.ProductID,
	})
	raw, err := c.api.Get(ctx, "/stock-levels", q)
	if err != nil {
		return ListResult{}, err
	}
	list := upstream.UnwrapList(raw, p.Page, p.Limit, "stockLevels", "stock_levels")
	out := ListResult{Total: list.Total, Page: list.Page, Limit: list.Limit}
	for _, rec := range list.Items {
		level, err := Normalize(rec)
		if err != nil {
			return ListResult{}, fmt.Errorf("normalize stock level: %w", err)
		}
		out.Items = append(out.Items, level)
	}
	return out, nil
}

// Get fetches one stock level by id.
func (c *Client) Get(ctx context.Context, id string) (StockLevel, error) {
	raw, err := c.api.Get(ctx, "/stock-levels/"+id, nil)
	if err != nil {
		return StockLevel{}, err
	}
	return Normalize(upstream.UnwrapRecord(raw, "stockLevel", "stock_level"))
}

// Create posts a new stock level row.
func (c *Client) Create(ctx context.Context, warehouseID, productID string, quantity float64) (StockLevel, error) {
	body := map[string]any{
		"warehouse_id": warehouseID,
		"product_id":   productID,
		"quantity":     quantity,
	}
	raw, err := c.api.Post(ctx, "/stock-levels", body)
	if err != nil {
		return StockLevel{}, err
	}
	level, err := Normalize(upstream.UnwrapRecord(raw, "stockLevel", "stock_level"))
	if err != nil {
		return StockLevel{}, fmt.Errorf("create stock level: backend returned no usable record: %w", err)
	}
	return level, nil
}

// SetQuantity replaces the quantity of an existing row.
func (c *Client) SetQuantity(ctx context.Context, id string, quantity float64) (StockLevel, error) {
	raw, err := c.api.Patch(ctx, "/stock-levels/"+id, map[string]any{"quantity": quantity})
	if err != nil {
		return StockLevel{}, err
	}
	return Normalize(upstream.UnwrapRecord(raw, "stockLevel", "stock_level"))
}

// UpdateStockQuantity applies a delta to the (warehouse, product) pair via
// a read-modify-write upsert: look up the existing row (limit 1), replace
// its quantity with existing+delta, or create a new row at delta when none
// exists. NOT atomic: no lock or concurrency token protects the two steps,
// so concurrent callers racing on the same pair can lose updates. The
// durable fix is a backend-side atomic increment; this is a stopgap kept
// for wire compatibility.
func (c *Client) UpdateStockQuantity(ctx context.Context, warehouseID, productID string, delta float64) (StockLevel, error) {
	existing, err := c.List(ctx, ListParams{
		WarehouseID: warehouseID,
		ProductID:   productID,
		Limit:       1,
	})
	if err != nil {
		return StockLevel{}, fmt.Errorf("lookup stock level: %w", err)
	}
	for _, row := range existing.Items {
		if row.IsDeleted {
			continue
		}
		return c.SetQuantity(ctx, row.ID, row.Quantity+delta)
	}
	return c.Create(ctx, warehouseID, productID, delta)
}
