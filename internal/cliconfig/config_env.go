package cliconfig

import (
	"os"

	"github.com/bft-labs/apiclient/pkg/client"
)

// Environment variables read by ApplyEnvConfig. The base URL uses the same
// variable as client.ConfigFromEnv.
const (
	EnvBaseURL  = client.BaseURLEnv
	EnvLogLevel = "APICLIENT_LOG_LEVEL"
	EnvVerbose  = "APICLIENT_VERBOSE"
)

// ApplyEnvConfig applies configuration from environment variables.
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("base-url", os.Getenv(EnvBaseURL), &cfg.BaseURL)
	s.setString("log-level", os.Getenv(EnvLogLevel), &cfg.LogLevel)
	s.setBoolFromString("verbose", os.Getenv(EnvVerbose), &cfg.Verbose)
}
