package payments

import (
	"context"
	"fmt"

	"github.com/warebridge/warebridge/internal/upstream"
)

// Client is the payment resource client.
type Client struct {
	api *upstream.Client
}

// NewClient wraps the shared upstream client.
func NewClient(api *upstream.Client) *Client {
	return &Client{api: api}
}

// CreateRequest is the inbound payload for recording a payment. A bank
// reference is required exactly when the method is bank_transfer.
type CreateRequest struct {
	OrderID       string   `json:"orderId" validate:"required"`
	Amount        float64  `json:"amount" validate:"gt=0"`
	Method        Method   `json:"method" validate:"required,oneof=cash bank_transfer card other"`
	Date          string   `json:"date,omitempty"`
	BankReference string   `json:"bankReference,omitempty" validate:"required_if=Method bank_transfer"`
	Attachments   []string `json:"attachments,omitempty"`
	Note          string   `json:"note,omitempty"`
}

// ListParams filter the payment listing.
type ListParams struct {
	Page    int
	Limit   int
	OrderID string
}

// ListResult is one normalized page of payments.
type ListResult struct {
	Items []Payment `json:"items"`
	Total int       `json:"total"`
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
}

// List fetches one page of payments.
func (c *Client) List(ctx context.Context, p ListParams) (ListResult, error) {
	q := upstream.BuildQuery(map[string]any{
		"page":     p.Page,
		"limit":    p.Limit,
		"order_id": p.OrderID,
	})
	raw, err := c.api.Get(ctx, "/payments", q)
	if err != nil {
		return ListResult{}, err
	}
	list := upstream.UnwrapList(raw, p.Page, p.Limit, "payments")
	out := ListResult{Total: list.Total, Page: list.Page, Limit: list.Limit}
	for _, rec := range list.Items {
		payment, err := Normalize(rec)
		if err != nil {
			return ListResult{}, fmt.Errorf("normalize payment: %w", err)
		}
		out.Items = append(out.Items, payment)
	}
	return out, nil
}

// Get fetches one payment by id.
func (c *Client) Get(ctx context.Context, id string) (Payment, error) {
	raw, err := c.api.Get(ctx, "/payments/"+id, nil)
	if err != nil {
		return Payment{}, err
	}
	return Normalize(upstream.UnwrapRecord(raw, "payment"))
}

// Create records a payment against an order.
func (c *Client) Create(ctx context.Context, payload CreateRequest) (Payment, error) {
	raw, err := c.api.Post(ctx, "/payments", payload)
	if err != nil {
		return Payment{}, err
	}
	payment, err := Normalize(upstream.UnwrapRecord(raw, "payment"))
	if err != nil {
		return Payment{}, fmt.Errorf("create payment: backend returned no usable record: %w", err)
	}
	return payment, nil
}

// Delete removes a payment.
func (c *Client) Delete(ctx context.Context, id string) error {
	_, err := c.api.Delete(ctx, "/payments/"+id)
	return err
}

// UploadAttachments uploads proof-of-payment files one by one and returns
// the stored paths.
func (c *Client) UploadAttachments(ctx context.Context, paymentID string, files []upstream.File) ([]string, error) {
	records, err := c.api.UploadFiles(ctx, "/payments/"+paymentID+"/attachments", "file", files)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(records))
	for _, rec := range records {
		if path := rec.Str("path", "filePath", "file_path", "url"); path != "" {
			paths = append(paths, path)
		}
	}
	return paths, nil
}

// DownloadAttachment fetches one stored attachment as an opaque blob.
func (c *Client) DownloadAttachment(ctx context.Context, paymentID, name string) (*upstream.Blob, error) {
	return c.api.Download(ctx, "/payments/"+paymentID+"/attachments/"+name, nil)
}
