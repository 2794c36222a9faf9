package handlog

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/lox/huholdembot/internal/state"
)

func TestLogHandWritesOneJSONLineWithExpectedFields(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	l := New(dir)

	h := &state.HandHistory{
		HandID:      "h1",
		Button:      1,
		StartStacks: map[int]int{1: 1000, 2: 1000},
	}
	if err := l.LogHand(h); err != nil {
		t.Fatalf("LogHand failed: %v", err)
	}

	path := filepath.Join(dir, "h1.jsonl")
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("expected log file at %s: %v", path, err)
	}
	defer f.Close()

	var rec map[string]any
	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		t.Fatal("expected at least one line in the log file")
	}
	if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
		t.Fatalf("line is not valid JSON: %v", err)
	}
	if rec["hand_id"] != "h1" {
		t.Errorf("hand_id = %v, want h1", rec["hand_id"])
	}
	if _, ok := rec["timestamp"].(string); !ok {
		t.Error("expected a timestamp string field")
	}
	if scanner.Scan() {
		t.Error("expected exactly one line for one logged hand")
	}
}

func TestLogHandAppendsAcrossCalls(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	l := New(dir)

	for i := 0; i < 2; i++ {
		if err := l.LogHand(&state.HandHistory{HandID: "h2"}); err != nil {
			t.Fatalf("LogHand failed: %v", err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "h2.jsonl"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	lines := 0
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		lines++
	}
	if lines != 2 {
		t.Errorf("log file has %d lines, want 2", lines)
	}
}

func TestLogHandNilIsNoOp(t *testing.T) {
	t.Parallel()
	l := New(t.TempDir())
	if err := l.LogHand(nil); err != nil {
		t.Errorf("LogHand(nil) = %v, want nil", err)
	}
}

func TestNewDefaultsToLogsHandsDir(t *testing.T) {
	t.Parallel()
	l := New("")
	want := filepath.Join("logs", "hands")
	if l.dir != want {
		t.Errorf("default dir = %q, want %q", l.dir, want)
	}
}
