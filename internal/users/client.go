package users

import (
	"context"
	"fmt"

	"github.com/warebridge/warebridge/internal/upstream"
)

// Client is the user resource client.
type Client struct {
	api *upstream.Client
}

// NewClient wraps the shared upstream client.
func NewClient(api *upstream.Client) *Client {
	return &Client{api: api}
}

// ListParams filter the user listing.
type ListParams struct {
	Page   int
	Limit  int
	Search string
	RoleID string
}

// ListResult is one normalized page of users.
type ListResult struct {
	Items []User `json:"items"`
	Total int    `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}

// List fetches one page of users.
func (c *Client) List(ctx context.Context, p ListParams) (ListResult, error) {
	params := map[string]any{
		"page":    p.Page,
		"limit":   p.Limit,
		"role_id": p.RoleID,
	}
	if p.Search != "" {
		params["search"] = upstream.FoldSearch(p.Search)
	}
	raw, err := c.api.Get(ctx, "/users", upstream.BuildQuery(params))
	if err != nil {
		return ListResult{}, err
	}
	list := upstream.UnwrapList(raw, p.Page, p.Limit, "users")
	out := ListResult{Total: list.Total, Page: list.Page, Limit: list.Limit}
	for _, rec := range list.Items {
		user, err := Normalize(rec)
		if err != nil {
			return ListResult{}, fmt.Errorf("normalize user: %w", err)
		}
		out.Items = append(out.Items, user)
	}
	return out, nil
}

// Get fetches one user by id.
func (c *Client) Get(ctx context.Context, id string) (User, error) {
	raw, err := c.api.Get(ctx, "/users/"+id, nil)
	if err != nil {
		return User{}, err
	}
	return Normalize(upstream.UnwrapRecord(raw, "user"))
}

// Me fetches the authenticated user's own profile.
func (c *Client) Me(ctx context.Context) (User, error) {
	raw, err := c.api.Get(ctx, "/users/me", nil)
	if err != nil {
		return User{}, err
	}
	return Normalize(upstream.UnwrapRecord(raw, "user"))
}

// ListRoles fetches all roles.
func (c *Client) ListRoles(ctx context.Context) ([]Role, error) {
	raw, err := c.api.Get(ctx, "/roles", nil)
	if err != nil {
		return nil, err
	}
	list := upstream.UnwrapList(raw, 0, 0, "roles")
	roles := make([]Role, 0, len(list.Items))
	for _, rec := range list.Items {
		role, err := NormalizeRole(rec)
		if err != nil {
			return nil, fmt.Errorf("normalize role: %w", err)
		}
		roles = append(roles, role)
	}
	return roles, nil
}
