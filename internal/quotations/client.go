package quotations

import (
	"context"
	"fmt"

	"github.com/warebridge/warebridge/internal/upstream"
)

// Client is the quotation resource client.
type Client struct {
	api *upstream.Client
}

// NewClient wraps the shared upstream client.
func NewClient(api *upstream.Client) *Client {
	return &Client{api: api}
}

// ListParams filter the quotation listing.
type ListParams struct {
	Page       int
	Limit      int
	Search     string
	Status     string
	CustomerID string
}

// ListResult is one normalized page of quotations.
type ListResult struct {
	Items []Quotation `json:"items"`
	Total int         `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

// List fetches one page of quotations.
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
	raw, err := c.api.Get(ctx, "/quotations", upstream.BuildQuery(params))
	if err != nil {
		return ListResult{}, err
	}
	list := upstream.UnwrapList(raw, p.Page, p.Limit, "quotations")
	out := ListResult{Total: list.Total, Page: list.Page, Limit: list.Limit}
	for _, rec := range list.Items {
		q, err := Normalize(rec)
		if err != nil {
			return ListResult{}, fmt.Errorf("normalize quotation: %w", err)
		}
		out.Items = append(out.Items, q)
	}
	return out, nil
}

// Get fetches one quotation by id.
func (c *Client) Get(ctx context.Context, id string) (Quotation, error) {
	raw, err := c.api.Get(ctx, "/quotations/"+id, nil)
	if err != nil {
		return Quotation{}, err
	}
	return Normalize(upstream.UnwrapRecord(raw, "quotation"))
}

// CreateRequest is the inbound payload for a new quotation.
type CreateRequest struct {
	Code         string         `json:"code,omitempty"`
	ContractCode string         `json:"contractCode,omitempty"`
	CustomerID   string         `json:"customerId" validate:"required"`
	Type         string         `json:"type,omitempty"`
	Details      []CreateDetail `json:"details" validate:"required,min=1,dive"`
}

// CreateDetail is one requested quotation line.
type CreateDetail struct {
	ProductID string  `json:"productId" validate:"required"`
	Price     float64 `json:"price" validate:"gte=0"`
	Quantity  float64 `json:"quantity" validate:"gt=0"`
	Note      string  `json:"note,omitempty"`
}

// Create posts a new quotation.
func (c *Client) Create(ctx context.Context, payload CreateRequest) (Quotation, error) {
	raw, err := c.api.Post(ctx, "/quotations", payload)
	if err != nil {
		return Quotation{}, err
	}
	q, err := Normalize(upstream.UnwrapRecord(raw, "quotation"))
	if err != nil {
		return Quotation{}, fmt.Errorf("create quotation: backend returned no usable record: %w", err)
	}
	return q, nil
}

// UpdateStatus changes a quotation's status. Backend errors pass through
// unchanged so callers can extract the server's structured validation
// messages.
func (c *Client) UpdateStatus(ctx context.Context, id, status string) (Quotation, error) {
	raw, err := c.api.Patch(ctx, "/quotations/"+id+"/status", map[string]string{"status": status})
	if err != nil {
		return Quotation{}, err
	}
	return Normalize(upstream.UnwrapRecord(raw, "quotation"))
}

// Delete removes a quotation.
func (c *Client) Delete(ctx context.Context, id string) error {
	_, err := c.api.Delete(ctx, "/quotations/"+id)
	return err
}
