package orders

import (
	"context"
	"fmt"

	"github.com/warebridge/warebridge/internal/upstream"
)

// Client is the order resource client.
type Client struct {
	api *upstream.Client
}

// NewClient wraps the shared upstream client.
func NewClient(api *upstream.Client) *Client {
	return &Client{api: api}
}

// ListParams filter the order listing.
type ListParams struct {
	Page       int
	Limit      int
	Search     string
	Status     string
	CustomerID string
}

// ListResult is one normalized page of orders.
type ListResult struct {
	Items []Order `json:"items"`
	Total int     `json:"total"`
	Page  int     `json:"page"`
	Limit int     `json:"limit"`
}

// List fetches one page of orders.
func (c *Client) List(ctx context.Context, p ListParams) (ListResult, error) {
	params := map[string]any{
		"page":        p.Page,
		"limit":       p.Limit,
		"status":      p.Status,
		"customer_id": p.CustomerID,
	}
	if p.Search != "" {
		params["search"] = upstream.FoldSearch(p.Search)
	}
	raw, err := c.api.Get(ctx, "/orders", upstream.BuildQuery(params))
	if err != nil {
		return ListResult{}, err
	}
	list := upstream.UnwrapList(raw, p.Page, p.Limit, "orders")
	out := ListResult{Total: list.Total, Page: list.Page, Limit: list.Limit}
	for _, rec := range list.Items {
		order, err := Normalize(rec)
		if err != nil {
			return ListResult{}, fmt.Errorf("normalize order: %w", err)
		}
		out.Items = append(out.Items, order)
	}
	return out, nil
}

// Get fetches one order by id.
func (c *Client) Get(ctx context.Context, id string) (Order, error) {
	raw, err := c.api.Get(ctx, "/orders/"+id, nil)
	if err != nil {
		return Order{}, err
	}
	return Normalize(upstream.UnwrapRecord(raw, "order"))
}

// Update patches arbitrary order fields through the generic order-update
// endpoint and normalizes the result. The ordertags package uses this to
// rewrite the tags array.
func (c *Client) Update(ctx context.Context, id string, fields map[string]any) (Order, error) {
	raw, err := c.api.Patch(ctx, "/orders/"+id, fields)
	if err != nil {
		return Order{}, err
	}
	return Normalize(upstream.UnwrapRecord(raw, "order"))
}
