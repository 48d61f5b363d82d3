// Package client builds the HTTP client applications use to talk to their API.
//
// A Client carries a base URL, normally read from the BASE_URL environment
// variable, and a fixed five minute request timeout. It performs no
// validation, retries, authentication or error translation: whatever the
// transport reports is returned to the caller.
//
// # Usage
//
// Build one client at startup and hand it to the components that need it:
//
//	c := client.New(client.ConfigFromEnv(), client.WithLogger(logger))
//	svc := users.NewService(c)
//
//	resp, err := c.Get(ctx, "/v1/users")
//	if err != nil {
//	    return err
//	}
//	if resp.IsError() {
//	    return fmt.Errorf("list users: status %d", resp.StatusCode())
//	}
//
// Code that only needs to send prepared *http.Request values can depend on
// the HTTPClient interface instead.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package client
