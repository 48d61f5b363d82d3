package cliconfig

import (
	"bytes"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.BaseURL != "" {
		t.Errorf("BaseURL = %v, want empty", cfg.BaseURL)
	}
	if cfg.Verbose {
		t.Error("Verbose = true, want false")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{name: "defaults", config: DefaultConfig()},
		{name: "empty base url is allowed", config: Config{LogLevel: "debug"}},
		{name: "malformed base url is allowed", config: Config{BaseURL: "%%%", LogLevel: "warn"}},
		{name: "unknown log level", config: Config{LogLevel: "loud"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "warn")

	l.Info().Msg("hidden")
	l.Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn message missing: %q", out)
	}
}

func TestNewLogger_FallsBackToInfo(t *testing.T) {
	for _, level := range []string{"", "bogus"} {
		var buf bytes.Buffer
		l := NewLogger(&buf, level)

		l.Debug().Msg("hidden")
		l.Info().Msg("shown")

		out := buf.String()
		if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
			t.Errorf("level %q: output %q", level, out)
		}
	}
}
