package customers

import (
	"context"
	"fmt"

	"github.com/warebridge/warebridge/internal/upstream"
)

// Client is the customer resource client.
type Client struct {
	api *upstream.Client
}

// NewClient wraps the shared upstream client.
func NewClient(api *upstream.Client) *Client {
	return &Client{api: api}
}

// ListParams filter the customer listing. Zero values are never sent.
type ListParams struct {
	Page           int
	Limit          int
	Search         string
	IncludeDeleted bool
}

// ListResult is one normalized page of customers.
type ListResult struct {
	Items []Customer `json:"items"`
	Total int        `json:"total"`
	Page  int        `json:"page"`
	Limit int        `json:"limit"`
}

// List fetches one page of customers and normalizes every record.
func (c *Client) List(ctx context.Context, p ListParams) (ListResult, error) {
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
	raw, err := c.api.Get(ctx, "/customers", upstream.BuildQuery(params))
	if err != nil {
		return ListResult{}, err
	}
	list := upstream.UnwrapList(raw, p.Page, p.Limit, "customers")
	out := ListResult{Total: list.Total, Page: list.Page, Limit: list.Limit}
	for _, rec := range list.Items {
		cust, err := Normalize(rec)
		if err != nil {
			return ListResult{}, fmt.Errorf("normalize customer: %w", err)
		}
		out.Items = append(out.Items, cust)
	}
	return out, nil
}

// Get fetches one customer by id.
func (c *Client) Get(ctx context.Context, id string) (Customer, error) {
	raw, err := c.api.Get(ctx, "/customers/"+id, nil)
	if err != nil {
		return Customer{}, err
	}
	return Normalize(upstream.UnwrapRecord(raw, "customer"))
}

// Create posts a new customer. The backend's response nesting varies per
// deployment (data, data.data, data.customer); UnwrapRecord tries each in
// order. A response without an id surfaces as an error instead of a
// half-built record.
func (c *Client) Create(ctx context.Context, payload CreateRequest) (Customer, error) {
	raw, err := c.api.Post(ctx, "/customers", payload)
	if err != nil {
		return Customer{}, err
	}
	cust, err := Normalize(upstream.UnwrapRecord(raw, "customer"))
	if err != nil {
		return Customer{}, fmt.Errorf("create customer: backend returned no usable record: %w", err)
	}
	return cust, nil
}

// Update patches an existing customer and normalizes the result.
func (c *Client) Update(ctx context.Context, id string, payload UpdateRequest) (Customer, error) {
	raw, err := c.api.Patch(ctx, "/customers/"+id, payload)
	if err != nil {
		return Customer{}, err
	}
	return Normalize(upstream.UnwrapRecord(raw, "customer"))
}

// Delete soft-deletes a customer.
func (c *Client) Delete(ctx context.Context, id string) error {
	_, err := c.api.Delete(ctx, "/customers/"+id)
	return err
}
