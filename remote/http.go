package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/skosovsky/okie"
)

var _ okie.Fetcher = (*HTTPFetcher)(nil)

// DefaultMaxBodySize limits a single scaffolding file (10 MiB).
const DefaultMaxBodySize = 10 << 20

// defaultUserAgent is the User-Agent header value for HTTP requests.
const defaultUserAgent = "okie/1.0"

// HTTPFetcher downloads files with a plain GET.
type HTTPFetcher struct {
	httpClient  *http.Client
	userAgent   string
	maxBodySize int64
}

// HTTPOption configures HTTPFetcher.
type HTTPOption func(*HTTPFetcher)

// WithHTTPClient sets the HTTP client. Default has 30s timeout. If c is nil, the default client is left unchanged.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(h *HTTPFetcher) {
		if c != nil {
			h.httpClient = c
		}
	}
}

// WithUserAgent overrides the User-Agent header. Empty keeps the default.
func WithUserAgent(ua string) HTTPOption {
	return func(h *HTTPFetcher) {
		if ua != "" {
			h.userAgent = ua
		}
	}
}

// WithMaxBodySize sets the body size limit in bytes. n <= 0 keeps DefaultMaxBodySize.
func WithMaxBodySize(n int64) HTTPOption {
	return func(h *HTTPFetcher) {
		if n > 0 {
			h.maxBodySize = n
		}
	}
}

// NewHTTPFetcher creates an HTTPFetcher.
func NewHTTPFetcher(opts ...HTTPOption) *HTTPFetcher {
	h := &HTTPFetcher{
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		userAgent:   defaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Fetch GETs u and returns the full body. Non-2xx returns ErrHTTPStatus wrapped in ErrFetchFailed.
func (h *HTTPFetcher) Fetch(ctx context.Context, u *url.URL) ([]byte, error) {
	if u == nil {
		return nil, fmt.Errorf("%w: nil URL", ErrFetchFailed)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", h.userAgent)
	resp, err := h.httpClient.Do(req) // #nosec G107 -- URL is built from the configured base
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %w: %s %s", ErrFetchFailed, ErrHTTPStatus, resp.Status, u)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, h.maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrFetchFailed, err)
	}
	if int64(len(data)) > h.maxBodySize {
		return nil, fmt.Errorf("%w: %w: %d bytes", ErrFetchFailed, ErrBodyTooLarge, h.maxBodySize)
	}
	return data, nil
}
