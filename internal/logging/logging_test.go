package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelInfo)
	l.SetOutput(&buf)

	l.Debug("hidden %d", 1)
	l.Info("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line leaked at info level: %q", out)
	}
	if !strings.Contains(out, "shown 2") {
		t.Errorf("info line missing: %q", out)
	}
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelError)
	l.SetOutput(&buf)

	l.Warn("quiet")
	l.SetLevel(LevelDebug)
	l.Debug("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Errorf("warn line emitted at error level: %q", out)
	}
	if !strings.Contains(out, "loud") {
		t.Errorf("debug line missing after SetLevel: %q", out)
	}
}

func TestLogger_WithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelInfo)
	l.SetOutput(&buf)

	l.With("catalog").Info("registered")

	out := buf.String()
	if !strings.Contains(out, "component=catalog") {
		t.Errorf("component field missing: %q", out)
	}
}

func TestDiscard(t *testing.T) {
	// Must not panic and must not write anywhere.
	l := Discard()
	l.Error("nothing %s", "here")
	l.With("x").Error("still nothing")
}
