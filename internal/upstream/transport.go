package upstream

import (
	"net"
	"net/http"
	"time"
)

// Doer executes HTTP requests. Callers may inject any implementation
// (e.g. a mock transport in tests).
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewHTTPClient returns an http.Client tuned for talking to the legacy
// backend: a total request timeout plus pooled keep-alive connections.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:          100,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   5 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}
}
