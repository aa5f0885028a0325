// Copyright Hadayhoc Technology, 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"net/http"
	"time"

	"github.com/hadayhoc-tech/nanglucso/pkg/types"
)

// defaultTimeout caps a request when the configuration names none. The
// generation stage layers its own per-attempt deadline on top via context.
const defaultTimeout = 5 * time.Minute

// uaTransport stamps a User-Agent header on every outgoing request.
type uaTransport struct {
	userAgent string
	base      http.RoundTripper
}

func (t *uaTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", t.userAgent)
	}
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}

// NewClient builds an HTTP client from the shared HTTP configuration:
// request timeout plus a User-Agent applied to every request.
func NewClient(cfg types.HTTPConfig) *http.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := &http.Client{Timeout: timeout}
	if cfg.UserAgent != "" {
		client.Transport = &uaTransport{userAgent: cfg.UserAgent}
	}
	return client
}
