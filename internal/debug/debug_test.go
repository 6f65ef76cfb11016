package debug

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogDisabledByDefault(t *testing.T) {
	Close()
	if IsEnabled() {
		t.Fatal("expected debug logging to be disabled")
	}
	// Must not panic with no logger.
	Log("ignored %d", 1)
	Timed("noop")()
}

func TestLogWritesWhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	EnableWriter(&buf)
	defer Close()

	Log("scope %d opened", 7)
	Timed("render")()

	out := buf.String()
	if !strings.Contains(out, "scope 7 opened") {
		t.Errorf("expected log line, got %q", out)
	}
	if !strings.Contains(out, "render took") {
		t.Errorf("expected timing line, got %q", out)
	}
}
