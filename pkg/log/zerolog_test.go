package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

var (
	_ resty.Logger = (*ZerologAdapter)(nil)
	_ resty.Logger = (*NoopLogger)(nil)
	_ Logger       = (*ZerologAdapter)(nil)
	_ Logger       = (*NoopLogger)(nil)
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var m map[string]any
		if err := dec.Decode(&m); err != nil {
			t.Fatalf("decode log line: %v", err)
		}
		out = append(out, m)
	}
	return out
}

func TestZerologAdapter_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologAdapterWithLogger(zerolog.New(&buf))

	l.Info("http client configured",
		String("base_url", "https://api.example.com"),
		Int("attempt", 1),
		Duration("timeout", 300*time.Second),
		Err(errors.New("refused")),
		Any("tags", []string{"a"}),
	)

	lines := decodeLines(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	e := lines[0]
	if e["level"] != "info" {
		t.Errorf("level = %v, want info", e["level"])
	}
	if e["message"] != "http client configured" {
		t.Errorf("message = %v", e["message"])
	}
	if e["base_url"] != "https://api.example.com" {
		t.Errorf("base_url = %v", e["base_url"])
	}
	if e["attempt"] != float64(1) {
		t.Errorf("attempt = %v, want 1", e["attempt"])
	}
	if e["timeout"] != float64(300000) {
		t.Errorf("timeout = %v, want 300000 (ms)", e["timeout"])
	}
	if e["error"] != "refused" {
		t.Errorf("error = %v, want refused", e["error"])
	}
}

func TestZerologAdapter_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologAdapterWithLogger(zerolog.New(&buf).Level(zerolog.WarnLevel))

	l.Debug("dropped")
	l.Info("dropped")
	l.Warn("kept")
	l.Error("kept")

	lines := decodeLines(t, &buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0]["level"] != "warn" || lines[1]["level"] != "error" {
		t.Errorf("levels = %v, %v", lines[0]["level"], lines[1]["level"])
	}
}

func TestZerologAdapter_Printf(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologAdapterWithLogger(zerolog.New(&buf))

	l.Debugf("dump %s\n", "GET /users")
	l.Warnf("warn %d", 1)
	l.Errorf("error %v", "x")

	lines := decodeLines(t, &buf)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0]["message"] != "dump GET /users" {
		t.Errorf("message = %q", lines[0]["message"])
	}
	if lines[1]["level"] != "warn" || lines[2]["level"] != "error" {
		t.Errorf("levels = %v, %v", lines[1]["level"], lines[2]["level"])
	}
}
