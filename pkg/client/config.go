package client

import (
	"os"
	"time"
)

// BaseURLEnv is the environment variable ConfigFromEnv reads the base URL from.
const BaseURLEnv = "BASE_URL"

// Timeout is the per-request timeout of every Client. It is not configurable.
const Timeout = 300000 * time.Millisecond

// Config holds the settings a Client is built from.
type Config struct {
	// BaseURL is prepended to every relative request path. It is used as-is:
	// an empty or malformed value only surfaces once a request is made.
	BaseURL string
}

// ConfigFromEnv reads the base URL from BASE_URL.
func ConfigFromEnv() Config {
	return ConfigFromEnvVar(BaseURLEnv)
}

// ConfigFromEnvVar reads the base URL from the named environment variable.
// A missing variable yields an empty base URL.
func ConfigFromEnvVar(name string) Config {
	return Config{BaseURL: os.Getenv(name)}
}
