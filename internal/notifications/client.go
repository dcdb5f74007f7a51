package notifications

import (
	"context"
	"log/slog"

	"github.com/warebridge/warebridge/internal/upstream"
)

// Client is the notification resource client.
type Client struct {
	api    *upstream.Client
	logger *slog.Logger
}

// NewClient wraps the shared upstream client.
func NewClient(api *upstream.Client, logger *slog.Logger) *Client {
	return &Client{api: api, logger: logger}
}

// ListParams filter the notification listing.
type ListParams struct {
	Page       int
	Limit      int
	UnreadOnly bool
}

// ListResult is one normalized page of notifications.
type ListResult struct {
	Items []Notification `json:"items"`
	Total int            `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// List fetches one page of notifications. This read path degrades
// gracefully: on any fetch or normalization failure the error is logged
// and a synthetic local data set is returned, so the bell icon never
// crashes over a non-critical resource.
func (c *Client) List(ctx context.Context, p ListParams) ListResult {
	params := map[string]any{
		"page":  p.Page,
		"limit": p.Limit,
	}
	if p.UnreadOnly {
		params["unread"] = true
	}
	raw, err := c.api.Get(ctx, "/notifications", upstream.BuildQuery(params))
	if err != nil {
		c.logger.Warn("notifications fetch failed, serving fallback", slog.Any("error", err))
		return fallbackList(p)
	}
	list := upstream.UnwrapList(raw, p.Page, p.Limit, "notifications")
	out := ListResult{Total: list.Total, Page: list.Page, Limit: list.Limit}
	for _, rec := range list.Items {
		n, err := Normalize(rec)
		if err != nil {
			c.logger.Warn("notification without identity skipped", slog.Any("error", err))
			continue
		}
		out.Items = append(out.Items, n)
	}
	return out
}

// MarkRead marks one notification as read.
func (c *Client) MarkRead(ctx context.Context, id string) (Notification, error) {
	raw, err := c.api.Patch(ctx, "/notifications/"+id+"/read", nil)
	if err != nil {
		return Notification{}, err
	}
	return Normalize(upstream.UnwrapRecord(raw, "notification"))
}

// MarkAllRead marks every notification of the current user as read.
func (c *Client) MarkAllRead(ctx context.Context) error {
	_, err := c.api.Patch(ctx, "/notifications/read-all", nil)
	return err
}

// Delete soft-deletes a notification.
func (c *Client) Delete(ctx context.Context, id string) error {
	_, err := c.api.Delete(ctx, "/notifications/"+id)
	return err
}

// fallbackList is the deliberate degrade-gracefully data set served when
// the backend is unreachable. Normalized but synthetic; ids are stable so
// the UI can de-duplicate across retries.
func fallbackList(p ListParams) ListResult {
	items := []Notification{
		{
			ID:      "local-1",
			Title:   "Không thể tải thông báo",
			Message: "Máy chủ thông báo tạm thời không phản hồi. Dữ liệu sẽ tự cập nhật khi kết nối trở lại.",
			Type:    TypeWarning,
		},
	}
	return ListResult{
		Items: items,
		Total: len(items),
		Page:  orOne(p.Page),
		Limit: p.Limit,
	}
}

func orOne(v int) int {
	if v <= 0 {
		return 1
	}
	return v
}
