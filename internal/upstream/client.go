// Package upstream implements the client core for the legacy warehouse
// backend: a single configured request sender with bearer-token injection
// and a 401-triggered refresh-and-retry protocol, plus the envelope
// unwrapping and record probing every resource client is built on.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
)

// Response is the structured result of one backend call.
type Response struct {
	Status  int
	Header  http.Header
	Body    []byte
	Data    any
	Success bool
}

// Client is the single point of outbound communication with the backend.
// All resource clients share one instance so the token pair and the
// refresh protocol stay consistent across calls.
type Client struct {
	baseURL string
	http    Doer
	tokens  TokenStore
	logger  *slog.Logger

	// refreshGroup collapses concurrent 401s into a single refresh call.
	refreshGroup singleflight.Group
}

// Option configures a Client.
type Option func(*Client)

// WithDoer replaces the underlying transport.
func WithDoer(d Doer) Option {
	return func(c *Client) { c.http = d }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithTimeout replaces the default transport with one using the given
// total request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http = NewHTTPClient(d) }
}

// NewClient builds a Client for the given base URL. tokens must not be nil;
// use NewMemoryTokenStore when no persistent storage is wanted.
func NewClient(baseURL string, tokens TokenStore, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    NewHTTPClient(10 * time.Second),
		tokens:  tokens,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get issues a GET and returns the decoded body.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (any, error) {
	resp, err := c.Do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Post issues a POST with a JSON body and returns the decoded response body.
func (c *Client) Post(ctx context.Context, path string, body any) (any, error) {
	resp, err := c.Do(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Put issues a PUT with a JSON body and returns the decoded response body.
func (c *Client) Put(ctx context.Context, path string, body any) (any, error) {
	resp, err := c.Do(ctx, http.MethodPut, path, nil, body)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Patch issues a PATCH with a JSON body and returns the decoded response body.
func (c *Client) Patch(ctx context.Context, path string, body any) (any, error) {
	resp, err := c.Do(ctx, http.MethodPatch, path, nil, body)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Delete issues a DELETE and returns the decoded response body.
func (c *Client) Delete(ctx context.Context, path string) (any, error) {
	resp, err := c.Do(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Do sends one request with the cross-cutting behavior applied: bearer
// injection, JSON encoding, error taxonomy, and the single 401
// refresh-and-retry. Transport errors and non-2xx responses propagate as
// errors; there is no automatic retry beyond the one refresh path.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any) (*Response, error) {
	return c.do(ctx, method, path, query, body, false)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, retried bool) (*Response, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
	}

	req, err := c.newRequest(ctx, method, path, query, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.send(req)
	if err != nil {
		return nil, err
	}

	if resp.Status == http.StatusUnauthorized && !retried && !isAuthPath(path) {
		if err := c.refreshTokens(ctx); err != nil {
			return nil, err
		}
		return c.do(ctx, method, path, query, body, true)
	}
	if resp.Status < 200 || resp.Status > 299 {
		return nil, newAPIError(resp.Status, resp.Data)
	}
	resp.Success = true
	return resp, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")

	access, _, err := c.tokens.Tokens(ctx)
	if err != nil {
		return nil, fmt.Errorf("read tokens: %w", err)
	}
	// Absent token sends the request unauthenticated.
	if access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}
	return req, nil
}

func (c *Client) send(req *http.Request) (*Response, error) {
	httpResp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s %s response: %w", req.Method, req.URL.Path, err)
	}

	resp := &Response{
		Status: httpResp.StatusCode,
		Header: httpResp.Header,
		Body:   raw,
	}
	if len(raw) > 0 {
		// Tolerate non-JSON bodies: Data stays nil and callers fall back
		// to the raw bytes.
		_ = json.Unmarshal(raw, &resp.Data)
	}
	return resp, nil
}

// refreshTokens performs exactly one token refresh per expiry event.
// Concurrent callers that each hit a 401 share a single in-flight refresh
// through the singleflight group; every caller observes the same outcome.
// On failure both tokens are cleared and ErrSessionExpired is returned so
// the caller can force navigation back to login.
func (c *Client) refreshTokens(ctx context.Context) error {
	ch := c.refreshGroup.DoChan("refresh", func() (any, error) {
		return nil, c.refreshOnce(context.WithoutCancel(ctx))
	})
	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-ch:
		return res.Err
	}
}

func (c *Client) refreshOnce(ctx context.Context) error {
	_, refresh, err := c.tokens.Tokens(ctx)
	if err != nil {
		return fmt.Errorf("read refresh token: %w", err)
	}
	if refresh == "" {
		c.clearTokens(ctx)
		return ErrSessionExpired
	}

	payload, err := json.Marshal(map[string]string{"refresh_token": refresh})
	if err != nil {
		return fmt.Errorf("encode refresh body: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/auth/refresh", nil, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.send(req)
	if err != nil {
		c.clearTokens(ctx)
		return fmt.Errorf("%w: %v", ErrSessionExpired, err)
	}
	if resp.Status < 200 || resp.Status > 299 {
		c.clearTokens(ctx)
		return fmt.Errorf("%w: refresh rejected with status %d", ErrSessionExpired, resp.Status)
	}

	rec := UnwrapRecord(resp.Data)
	access := rec.Str("accessToken", "access_token", "token")
	newRefresh := rec.Str("refreshToken", "refresh_token")
	if access == "" {
		c.clearTokens(ctx)
		return fmt.Errorf("%w: refresh response carried no access token", ErrSessionExpired)
	}
	if err := c.tokens.Save(ctx, access, newRefresh); err != nil {
		return fmt.Errorf("save refreshed tokens: %w", err)
	}
	c.logger.Debug("access token refreshed")
	return nil
}

func (c *Client) clearTokens(ctx context.Context) {
	if err := c.tokens.Clear(ctx); err != nil {
		c.logger.Warn("clear tokens", slog.Any("error", err))
	}
}

// isAuthPath reports whether the path belongs to the login/refresh/logout
// trio, which must never trigger the refresh protocol themselves.
func isAuthPath(path string) bool {
	p := "/" + strings.TrimLeft(path, "/")
	for _, suffix := range []string{"/auth/login", "/auth/refresh", "/auth/logout"} {
		if strings.HasSuffix(p, suffix) {
			return true
		}
	}
	return false
}
