package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "NoPlatinum.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestTUIModelRendersSorted(t *testing.T) {
	path := writeCatalog(t, "High (9 of 10 Trophies)\nLow (1 of 10 Trophies)\nBad (x of Trophies)\n")
	m := newTUIModel(path, time.Second)
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init should schedule a tick")
	}

	view := m.View()
	low, high := strings.Index(view, "Low"), strings.Index(view, "High")
	if low < 0 || high < 0 || low > high {
		t.Errorf("rows not ascending:\n%s", view)
	}
	if !strings.Contains(view, "Skipped lines: 1") {
		t.Errorf("missing skipped count:\n%s", view)
	}
	if !strings.Contains(view, "Trophies: 10/20 (50.00%)") {
		t.Errorf("missing summary:\n%s", view)
	}
}

func TestTUIModelKeys(t *testing.T) {
	path := writeCatalog(t, "High (9 of 10 Trophies)\nLow (1 of 10 Trophies)\n")
	m := newTUIModel(path, time.Second)
	m.Init()

	m.Update(key('s'))
	view := m.View()
	if strings.Index(view, "High") > strings.Index(view, "Low") {
		t.Errorf("s should reverse order:\n%s", view)
	}

	m.Update(key('h'))
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Error("h should show help")
	}

	_, cmd := m.Update(key('q'))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestTUIModelRefreshPicksUpChanges(t *testing.T) {
	path := writeCatalog(t, "Game A (1 of 2 Trophies)\n")
	m := newTUIModel(path, time.Second)
	m.Init()

	if err := os.WriteFile(path, []byte("Game A (1 of 2 Trophies)\nGame B (2 of 2 Trophies)\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, cmd := m.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick should reschedule")
	}
	if !strings.Contains(m.View(), "Game B") {
		t.Errorf("refresh did not load new record:\n%s", m.View())
	}
}

func TestTUIModelLoadError(t *testing.T) {
	m := newTUIModel(filepath.Join(t.TempDir(), "missing.txt"), 0)
	m.Init()
	if !strings.Contains(m.View(), "Error loading catalog") {
		t.Errorf("missing error view:\n%s", m.View())
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	if got := truncate("abcdefghijkl", 8); got != "abcde..." {
		t.Errorf("got %q", got)
	}
}

func TestIsTTY(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("buffer is not a TTY")
	}
}
