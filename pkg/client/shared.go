package client

import "sync"

var shared = sync.OnceValue(func() *Client {
	return New(ConfigFromEnv())
})

// Shared returns the process-wide Client, built from BASE_URL on first use.
// Every call returns the same instance.
//
// Prefer New and passing the Client to whatever needs it; Shared is for code
// that cannot take the dependency explicitly.
func Shared() *Client {
	return shared()
}
