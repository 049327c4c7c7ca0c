package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)
	defer SetLevel(Notice)

	logger := New("test")

	SetLevel(Info)
	logger.Debug("debug message")
	logger.Infof("info %d", 42)

	out := buf.String()
	if strings.Contains(out, "debug message") {
		t.Fatalf("expected debug message to be filtered; got %q", out)
	}
	if !strings.Contains(out, "info 42") {
		t.Fatalf("expected info message in output; got %q", out)
	}
	if !strings.Contains(out, "[test]") {
		t.Fatalf("expected module name in output; got %q", out)
	}

	buf.Reset()
	SetLevel(Debug)
	logger.Debug("debug message")
	if !strings.Contains(buf.String(), "debug message") {
		t.Fatalf("expected debug message after raising verbosity; got %q", buf.String())
	}
}

func TestSetSinkPreservesLevel(t *testing.T) {
	defer SetSink(os.Stderr)
	defer SetLevel(Notice)

	SetLevel(Debug)
	var buf bytes.Buffer
	SetSink(&buf)

	if !IsEnabled(Debug) {
		t.Fatal("expected debug level to survive a sink change")
	}
}

func TestParseLevel(t *testing.T) {
	type spec struct {
		in     string
		exp    Level
		expErr bool
	}
	specs := []spec{
		{"debug", Debug, false},
		{" INFO ", Info, false},
		{"notice", Notice, false},
		{"warn", Warning, false},
		{"warning", Warning, false},
		{"error", Error, false},
		{"loud", Notice, true},
	}

	for index, s := range specs {
		level, err := ParseLevel(s.in)
		if s.expErr {
			if err == nil {
				t.Fatalf("[spec %d] expected an error", index)
			}
			continue
		}
		if err != nil {
			t.Fatalf("[spec %d] unexpected error: %v", index, err)
		}
		if level != s.exp {
			t.Fatalf("[spec %d] expected level %s; got %s", index, s.exp, level)
		}
	}
}
