package client

import "net/http"

// HTTPClient abstracts HTTP request execution for dependency injection.
// Both *Client and the standard *http.Client satisfy this interface.
type HTTPClient interface {
	// Do sends an HTTP request and returns an HTTP response.
	Do(req *http.Request) (*http.Response, error)
}

var (
	_ HTTPClient = (*Client)(nil)
	_ HTTPClient = (*http.Client)(nil)
)
