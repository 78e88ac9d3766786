package clipboard

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

// TestWriteOSC52 verifies the payload is base64 encoded in an OSC52 sequence
func TestWriteOSC52(t *testing.T) {
	var buf bytes.Buffer
	if err := writeOSC52(&buf, "panel text", env(nil)); err != nil {
		t.Fatalf("writeOSC52 failed: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "\x1b]52;") {
		t.Errorf("Expected OSC52 prefix, got %q", out)
	}
	if !strings.Contains(out, base64.StdEncoding.EncodeToString([]byte("panel text"))) {
		t.Errorf("Expected encoded payload, got %q", out)
	}
}

// TestWriteOSC52Tmux verifies the tmux passthrough wrapper is applied
func TestWriteOSC52Tmux(t *testing.T) {
	var buf bytes.Buffer
	if err := writeOSC52(&buf, "x", env(map[string]string{"TMUX": "/tmp/tmux-1/default"})); err != nil {
		t.Fatalf("writeOSC52 failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "\x1bPtmux;") {
		t.Errorf("Expected tmux passthrough, got %q", buf.String())
	}
}
