package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func decodeEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var e map[string]any
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			t.Fatalf("malformed log line %q: %v", line, err)
		}
		entries = append(entries, e)
	}
	return entries
}

func TestJSONLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, WarnLevel)

	logger.Debug("too quiet")
	logger.Info("still too quiet")
	logger.Warn("heard")
	logger.Error("also heard")

	entries := decodeEntries(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0]["level"] != "WARN" || entries[0]["msg"] != "heard" {
		t.Errorf("entry 0 = %v", entries[0])
	}
	if entries[1]["level"] != "ERROR" {
		t.Errorf("entry 1 level = %v, want ERROR", entries[1]["level"])
	}
}

func TestJSONLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, DebugLevel)

	logger.Info("build finished",
		String("index", "components"),
		Int("nodes", 42),
		Float64("modularity", 0.37),
		Bool("cached", true),
		Duration("took", 1500*time.Millisecond),
		Err(errors.New("partial")),
	)

	entries := decodeEntries(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	fields, ok := entries[0]["fields"].(map[string]any)
	if !ok {
		t.Fatalf("no fields object in %v", entries[0])
	}
	if fields["index"] != "components" || fields["nodes"] != float64(42) {
		t.Errorf("fields = %v", fields)
	}
	if fields["took"] != "1.5s" {
		t.Errorf("duration field = %v, want 1.5s", fields["took"])
	}
	if fields["error"] != "partial" {
		t.Errorf("error field = %v, want partial", fields["error"])
	}
	if _, hasTime := entries[0]["time"]; !hasTime {
		t.Error("entry carries no timestamp")
	}
}

func TestJSONLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, InfoLevel)
	child := logger.With(String("component", "louvain"))

	child.Info("level done", Int("level", 2))
	logger.Info("parent stays clean")

	entries := decodeEntries(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	fields := entries[0]["fields"].(map[string]any)
	if fields["component"] != "louvain" || fields["level"] != float64(2) {
		t.Errorf("child fields = %v", fields)
	}
	if _, has := entries[1]["fields"]; has {
		t.Errorf("parent entry inherited child fields: %v", entries[1])
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   DebugLevel,
		"DEBUG":   DebugLevel,
		"info":    InfoLevel,
		"warn":    WarnLevel,
		"WARNING": WarnLevel,
		"error":   ErrorLevel,
		"":        InfoLevel,
		"bogus":   InfoLevel,
	}
	for s, want := range cases {
		if got := ParseLevel(s); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestErr_Nil(t *testing.T) {
	f := Err(nil)
	if f.Key != "error" || f.Value != nil {
		t.Errorf("Err(nil) = %+v", f)
	}
}

func TestNop(t *testing.T) {
	var logger Logger = Nop{}
	// Must be safe to call and chain.
	logger.With(String("k", "v")).Error("ignored")
}
