// Package apiclient provides the pre-configured HTTP client applications use
// to reach their API.
//
// Example usage:
//
//	c := apiclient.New(apiclient.ConfigFromEnv())
//	resp, err := c.Get(ctx, "/v1/users/me")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(resp.StatusCode())
package apiclient

import "github.com/bft-labs/apiclient/pkg/client"

// Client issues requests against a fixed base URL with a fixed timeout.
type Client = client.Client

// Config holds the settings a Client is built from.
type Config = client.Config

// HTTPClient is the Do-only interface satisfied by *Client and *http.Client.
type HTTPClient = client.HTTPClient

// Option configures optional behavior of a Client.
type Option = client.Option

// Timeout is the per-request timeout of every Client.
const Timeout = client.Timeout

// BaseURLEnv is the environment variable the base URL is read from.
const BaseURLEnv = client.BaseURLEnv

// New builds a Client. It never fails and makes no network calls.
func New(cfg Config, opts ...Option) *Client {
	return client.New(cfg, opts...)
}

// ConfigFromEnv reads the base URL from BASE_URL.
func ConfigFromEnv() Config {
	return client.ConfigFromEnv()
}

// Shared returns the process-wide Client built from BASE_URL.
func Shared() *Client {
	return client.Shared()
}
