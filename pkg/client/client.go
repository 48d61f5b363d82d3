package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/bft-labs/apiclient/pkg/log"
)

// Client issues HTTP requests against a fixed base URL with a fixed timeout.
// It is safe for concurrent use and cannot be reconfigured after New.
type Client struct {
	baseURL string
	rc      *resty.Client
}

// New builds a Client from cfg. It never fails and performs no network I/O;
// an unusable base URL is reported by the first request that needs it.
func New(cfg Config, opts ...Option) *Client {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(Timeout).
		SetLogger(o.logger).
		SetDebug(o.debug)

	o.logger.Debug("http client configured",
		log.String("base_url", cfg.BaseURL),
		log.Duration("timeout", Timeout),
	)

	return &Client{baseURL: cfg.BaseURL, rc: rc}
}

// BaseURL returns the base URL exactly as configured.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Timeout returns the per-request timeout, which is always Timeout.
func (c *Client) Timeout() time.Duration {
	return c.rc.GetClient().Timeout
}

// R returns a new request builder bound to this client, for callers that need
// per-request headers, query parameters or result decoding.
func (c *Client) R() *resty.Request {
	return c.rc.R()
}

// Execute sends a request with the given method to path, which is resolved
// against the base URL unless it is absolute. A nil body sends none.
//
// Transport errors are returned as produced by net/http. A non-2xx status is
// not an error; inspect the response.
func (c *Client) Execute(ctx context.Context, method, path string, body any) (*resty.Response, error) {
	req := c.rc.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	return req.Execute(method, path)
}

func (c *Client) Get(ctx context.Context, path string) (*resty.Response, error) {
	return c.Execute(ctx, http.MethodGet, path, nil)
}

func (c *Client) Head(ctx context.Context, path string) (*resty.Response, error) {
	return c.Execute(ctx, http.MethodHead, path, nil)
}

func (c *Client) Options(ctx context.Context, path string) (*resty.Response, error) {
	return c.Execute(ctx, http.MethodOptions, path, nil)
}

func (c *Client) Delete(ctx context.Context, path string) (*resty.Response, error) {
	return c.Execute(ctx, http.MethodDelete, path, nil)
}

func (c *Client) Post(ctx context.Context, path string, body any) (*resty.Response, error) {
	return c.Execute(ctx, http.MethodPost, path, body)
}

func (c *Client) Put(ctx context.Context, path string, body any) (*resty.Response, error) {
	return c.Execute(ctx, http.MethodPut, path, body)
}

func (c *Client) Patch(ctx context.Context, path string, body any) (*resty.Response, error) {
	return c.Execute(ctx, http.MethodPatch, path, body)
}

// Do sends a prepared request through the client's transport and timeout.
// A relative request URL is resolved against the base URL on a clone, so req
// itself is left untouched.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if !req.URL.IsAbs() {
		u, err := url.Parse(joinURL(c.baseURL, req.URL.RequestURI()))
		if err != nil {
			return nil, err
		}
		req = req.Clone(req.Context())
		req.URL = u
		req.Host = ""
	}
	return c.rc.GetClient().Do(req)
}

func joinURL(base, p string) string {
	if base == "" {
		return p
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(p, "/")
}
