package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewRunLogger(t *testing.T) {
	t.Run("creates journal under catalog slug", func(t *testing.T) {
		base := t.TempDir()
		catalogPath := filepath.Join(t.TempDir(), "NoPlatinum.txt")

		r, err := NewRunLogger(base, catalogPath)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer r.Close()

		if !strings.HasPrefix(filepath.Base(r.Dir), "NoPlatinum-") {
			t.Errorf("Dir: got %q, want NoPlatinum-<hash>", r.Dir)
		}
		if r.RunID == "" {
			t.Error("expected RunID to be set")
		}
		if _, err := os.Stat(r.LogPath); err != nil {
			t.Errorf("log file not created: %v", err)
		}
	})

	t.Run("empty base dir returns error", func(t *testing.T) {
		_, err := NewRunLogger("", "NoPlatinum.txt")
		if err == nil || !strings.Contains(err.Error(), "empty") {
			t.Fatalf("expected empty dir error, got %v", err)
		}
	})
}

func TestRunLoggerEvent(t *testing.T) {
	r, err := NewRunLogger(t.TempDir(), "NoPlatinum.txt")
	if err != nil {
		t.Fatal(err)
	}
	r.Event("record added", "game", "Game A", "completed", 1, "total", 2)
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(r.LogPath)
	if err != nil {
		t.Fatal(err)
	}
	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &entry); err != nil {
		t.Fatalf("journal line is not JSON: %v (%q)", err, data)
	}
	if entry["msg"] != "record added" {
		t.Errorf("msg: got %v", entry["msg"])
	}
	if entry["game"] != "Game A" {
		t.Errorf("game: got %v", entry["game"])
	}
	if _, ok := entry["time"]; !ok {
		t.Error("expected time field")
	}
}

func TestRunLoggerNilSafe(t *testing.T) {
	var r *RunLogger
	r.Event("ignored")
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil: %v", err)
	}
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"NoPlatinum":   "NoPlatinum",
		"my trophies!": "my_trophies",
		"   ":          "catalog",
		"***":          "catalog",
		"a--b.c":       "a--b.c",
	}
	for in, want := range tests {
		if got := slugify(in); got != want {
			t.Errorf("slugify(%q): got %q, want %q", in, got, want)
		}
	}
}

func TestFindLogDirStable(t *testing.T) {
	base := t.TempDir()
	a, err := FindLogDir(base, "/tmp/a/NoPlatinum.txt")
	if err != nil {
		t.Fatal(err)
	}
	b, _ := FindLogDir(base, "/tmp/b/NoPlatinum.txt")
	again, _ := FindLogDir(base, "/tmp/a/NoPlatinum.txt")
	if a == b {
		t.Errorf("different catalogs share a log dir: %s", a)
	}
	if a != again {
		t.Errorf("log dir not stable: %s vs %s", a, again)
	}
}

func TestFindLatestLog(t *testing.T) {
	dir := t.TempDir()

	got, err := FindLatestLog(filepath.Join(dir, "missing"))
	if err != nil || got != "" {
		t.Fatalf("missing dir: got (%q, %v), want empty", got, err)
	}

	older := filepath.Join(dir, "older.jsonl")
	newer := filepath.Join(dir, "newer.jsonl")
	for _, p := range []string{older, newer, filepath.Join(dir, "notes.txt")} {
		if err := os.WriteFile(p, []byte("{}\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(older, past, past); err != nil {
		t.Fatal(err)
	}

	got, err = FindLatestLog(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got != newer {
		t.Errorf("FindLatestLog: got %q, want %q", got, newer)
	}
}

func TestTailLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.jsonl")
	if err := os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var all bytes.Buffer
	if err := TailLog(context.Background(), &all, path, 0, false); err != nil {
		t.Fatal(err)
	}
	if all.String() != "one\ntwo\nthree\n" {
		t.Errorf("all lines: got %q", all.String())
	}

	var last bytes.Buffer
	if err := TailLog(context.Background(), &last, path, 2, false); err != nil {
		t.Fatal(err)
	}
	if last.String() != "two\nthree\n" {
		t.Errorf("last 2: got %q", last.String())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var followed bytes.Buffer
	if err := TailLog(ctx, &followed, path, 1, true); err != nil {
		t.Errorf("follow with cancelled ctx: %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]log.Level{
		"debug":   log.DebugLevel,
		"INFO":    log.InfoLevel,
		"warning": log.WarnLevel,
		"error":   log.ErrorLevel,
		"":        log.WarnLevel,
		"bogus":   log.WarnLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q): got %v, want %v", in, got, want)
		}
	}
}

func TestNewFromConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := NewFromConfig(&buf, "info", "json", false, false)
	logger.Debug("hidden")
	logger.Info("shown", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line leaked at info level: %q", out)
	}
	if !strings.Contains(out, `"msg":"shown"`) || !strings.Contains(out, `"key":"value"`) {
		t.Errorf("json output: got %q", out)
	}
}
