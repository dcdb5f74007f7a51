// Package auth proxies login and logout to the legacy backend and manages
// the persisted token pair.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/warebridge/warebridge/internal/upstream"
	"github.com/warebridge/warebridge/internal/users"
)

// Client is the auth resource client.
type Client struct {
	api    *upstream.Client
	tokens upstream.TokenStore
}

// NewClient wraps the shared upstream client and token store.
func NewClient(api *upstream.Client, tokens upstream.TokenStore) *Client {
	return &Client{api: api, tokens: tokens}
}

// Session is the outcome of a successful login.
type Session struct {
	User        users.User `json:"user"`
	AccessToken string     `json:"accessToken"`
}

// Login authenticates against the backend and persists the returned token
// pair. The 401 refresh protocol never triggers on this call.
func (c *Client) Login(ctx context.Context, username, password string) (Session, error) {
	raw, err := c.api.Post(ctx, "/auth/login", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return Session{}, err
	}

	rec := upstream.UnwrapRecord(raw)
	access := rec.Str("accessToken", "access_token", "token")
	refresh := rec.Str("refreshToken", "refresh_token")
	if access == "" {
		return Session{}, errors.New("login response carried no access token")
	}
	if err := c.tokens.Save(ctx, access, refresh); err != nil {
		return Session{}, fmt.Errorf("persist tokens: %w", err)
	}

	session := Session{AccessToken: access}
	if userRec := rec.Child("user"); userRec != nil {
		if user, err := users.Normalize(userRec); err == nil {
			session.User = user
		}
	}
	return session, nil
}

// Logout tells the backend to revoke the session and clears the stored
// pair regardless of the backend's answer.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.api.Post(ctx, "/auth/logout", nil)
	if clearErr := c.tokens.Clear(ctx); clearErr != nil {
		return fmt.Errorf("clear tokens: %w", clearErr)
	}
	return err
}
