package cliconfig

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Config holds CLI configuration for apiclient.
type Config struct {
	BaseURL  string
	LogLevel string
	Verbose  bool
}

// DefaultConfig returns a Config with default values. The base URL has no
// default; an empty one is allowed and fails at request time.
func DefaultConfig() Config {
	return Config{
		LogLevel: zerolog.InfoLevel.String(),
	}
}

// Validate checks the configuration for errors. The base URL is passed
// through as-is.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return nil
}

// configSetter applies values while respecting flag precedence: a value is
// skipped when the corresponding flag was set explicitly.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
