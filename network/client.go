// Package network provides the HTTP client shared by feed fetching and episode downloads.
package network

import (
	"context"
	"net/http"
	"time"

	"github.com/podspy-cli/podspy/constant"
)

// Client is shared across the application. The overall timeout is left to
// callers' contexts because episode downloads can legitimately take minutes;
// connection setup and response headers are still bounded.
var Client = &http.Client{
	Transport: newTransport(),
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 10
	t.IdleConnTimeout = 30 * time.Second
	t.TLSHandshakeTimeout = 10 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 1 * time.Second
	return t
}

// NewRequest creates a GET request bound to ctx carrying the application user agent.
func NewRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", constant.UserAgent)
	return req, nil
}
