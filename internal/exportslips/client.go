package exportslips

import (
	"context"
	"fmt"

	"github.com/warebridge/warebridge/internal/upstream"
)

const (
	receiptsPath = "/warehouse-receipts"

	// Paging bounds for the by-order linear scan. The backend has no
	// filter-by-order parameter on this resource, so the scan walks pages
	// of scanPageSize records and silently gives up after scanMaxPages.
	scanPageSize = 100
	scanMaxPages = 10
)

// Client is the export slip resource client.
type Client struct {
	api *upstream.Client
}

// NewClient wraps the shared upstream client.
func NewClient(api *upstream.Client) *Client {
	return &Client{api: api}
}

// ListParams filter the slip listing.
type ListParams struct {
	Page        int
	Limit       int
	Status      Status
	WarehouseID string
}

// ListResult is one normalized page of slips.
type ListResult struct {
	Items []Slip `json:"items"`
	Total int    `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}

// List fetches one page of export slips.
func (c *Client) List(ctx context.Context, p ListParams) (ListResult, error) {
	q := upstream.BuildQuery(map[string]any{
		"type":         "export",
		"page":         p.Page,
		"limit":        p.Limit,
		"status":       string(p.Status),
		"warehouse_id": p.WarehouseID,
	})
	raw, err := c.api.Get(ctx, receiptsPath, q)
	if err != nil {
		return ListResult{}, err
	}
	list := upstream.UnwrapList(raw, p.Page, p.Limit, "slips", "receipts")
	out := ListResult{Total: list.Total, Page: list.Page, Limit: list.Limit}
	for _, rec := range list.Items {
		slip, err := Normalize(rec)
		if err != nil {
			return ListResult{}, fmt.Errorf("normalize export slip: %w", err)
		}
		out.Items = append(out.Items, slip)
	}
	return out, nil
}

// Get fetches one slip by id.
func (c *Client) Get(ctx context.Context, id string) (Slip, error) {
	raw, err := c.api.Get(ctx, receiptsPath+"/"+id, nil)
	if err != nil {
		return Slip{}, err
	}
	return Normalize(upstream.UnwrapRecord(raw, "slip", "receipt"))
}

// CreateRequest is the payload for creating a slip from an order's pending
// export request.
type CreateRequest struct {
	OrderID     string       `json:"orderId" validate:"required"`
	WarehouseID string       `json:"warehouseId" validate:"required"`
	Note        string       `json:"note,omitempty"`
	Items       []CreateItem `json:"items" validate:"required,min=1,dive"`
}

// CreateItem is one requested line.
type CreateItem struct {
	ProductID    string  `json:"productId" validate:"required"`
	RequestedQty float64 `json:"requestedQty" validate:"gt=0"`
	UnitPrice    float64 `json:"unitPrice" validate:"gte=0"`
}

// Create posts a new export slip.
func (c *Client) Create(ctx context.Context, payload CreateRequest) (Slip, error) {
	body := map[string]any{
		"type":         "export",
		"order_id":     payload.OrderID,
		"warehouse_id": payload.WarehouseID,
		"note":         payload.Note,
		"items":        payload.Items,
	}
	raw, err := c.api.Post(ctx, receiptsPath, body)
	if err != nil {
		return Slip{}, err
	}
	slip, err := Normalize(upstream.UnwrapRecord(raw, "slip", "receipt"))
	if err != nil {
		return Slip{}, fmt.Errorf("create export slip: backend returned no usable record: %w", err)
	}
	return slip, nil
}

// The transition calls below shape one request each and normalize the
// response. No transition legality is checked client-side: the backend
// owns the state machine and rejects illegal moves.

// Approve moves a pending slip to approved.
func (c *Client) Approve(ctx context.Context, id string) (Slip, error) {
	return c.transition(ctx, id, "approve", nil)
}

// Reject moves a pending slip to rejected with a reason.
func (c *Client) Reject(ctx context.Context, id, reason string) (Slip, error) {
	return c.transition(ctx, id, "reject", map[string]any{"reason": reason})
}

// MarkPicked records that goods were picked for an approved slip.
func (c *Client) MarkPicked(ctx context.Context, id string) (Slip, error) {
	return c.transition(ctx, id, "pick", nil)
}

// MarkExported records that goods left the warehouse.
func (c *Client) MarkExported(ctx context.Context, id string) (Slip, error) {
	return c.transition(ctx, id, "export", nil)
}

// DirectExport jumps a pending slip straight to exported; the backend
// allows it only for elevated roles.
func (c *Client) DirectExport(ctx context.Context, id string) (Slip, error) {
	return c.transition(ctx, id, "direct-export", nil)
}

// Cancel cancels a non-terminal slip.
func (c *Client) Cancel(ctx context.Context, id, reason string) (Slip, error) {
	return c.transition(ctx, id, "cancel", map[string]any{"reason": reason})
}

func (c *Client) transition(ctx context.Context, id, action string, body map[string]any) (Slip, error) {
	raw, err := c.api.Post(ctx, receiptsPath+"/"+id+"/"+action, body)
	if err != nil {
		return Slip{}, err
	}
	return Normalize(upstream.UnwrapRecord(raw, "slip", "receipt"))
}

// GetSlipByOrderID scans the paginated slip listing for the first slip
// that references orderID. A legacy compatibility shim: without a backend
// orderId filter the only option is walking pages. It terminates on the
// first match, on a short page (end of data) or at the page cap, in which
// case it returns nil without error.
func (c *Client) GetSlipByOrderID(ctx context.Context, orderID string) (*Slip, error) {
	for page := 1; page <= scanMaxPages; page++ {
		result, err := c.List(ctx, ListParams{Page: page, Limit: scanPageSize})
		if err != nil {
			return nil, fmt.Errorf("scan export slips page %d: %w", page, err)
		}
		for i := range result.Items {
			if result.Items[i].OrderID == orderID {
				return &result.Items[i], nil
			}
		}
		if len(result.Items) < scanPageSize {
			return nil, nil
		}
	}
	return nil, nil
}
