package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store/taskstore"
)

func useMono(t *testing.T) {
	t.Helper()
	if err := SetTheme("mono"); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = SetTheme("classic") })
}

func TestSetThemeUnknown(t *testing.T) {
	if err := SetTheme("sepia"); err == nil {
		t.Fatal("expected error for unknown theme")
	}
	if err := SetTheme("NEON"); err != nil {
		t.Fatalf("SetTheme(NEON): %v", err)
	}
	if Current().Name != "neon" {
		t.Errorf("current theme: got %q, want neon", Current().Name)
	}
	_ = SetTheme("classic")
}

func TestProgressBar(t *testing.T) {
	st := model.Stats{Total: 3, Completed: 1, Remaining: 2, Percentage: 33}
	got := ProgressBar(st, 9)
	if want := "███░░░░░░  33%"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := ProgressBar(model.Stats{}, 5); got != "░░░░░   0%" {
		t.Errorf("empty: got %q", got)
	}
}

func TestStatsLine(t *testing.T) {
	got := StatsLine(model.Stats{Total: 3, Completed: 1, Remaining: 2, Percentage: 33})
	want := "Total: 3 | Done: 1 | Remaining: 2 | Progress: 33%"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRowLines(t *testing.T) {
	useMono(t)
	rows := taskstore.Group([]model.Task{
		{ID: 2, Title: "Write report", Priority: model.Medium},
		{ID: 1, Title: "Fix bug", Priority: model.High, Completed: true},
	})

	grouped := RowLines(rows, true)
	want := []string{
		"To Do",
		"[ ] #2 Write report  Medium",
		"Done",
		"[x] #1 Fix bug  High",
	}
	if strings.Join(grouped, "\n") != strings.Join(want, "\n") {
		t.Errorf("grouped:\n%s\nwant:\n%s", strings.Join(grouped, "\n"), strings.Join(want, "\n"))
	}

	flat := RowLines(rows, false)
	if len(flat) != 2 {
		t.Errorf("flat: got %d lines, want 2", len(flat))
	}

	if empty := RowLines(nil, true); len(empty) != 1 || empty[0] != "no tasks" {
		t.Errorf("empty: got %q", empty)
	}
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("é", 100)
	got := truncate(long)
	if n := len([]rune(got)); n != maxTitle {
		t.Errorf("rune length: got %d, want %d", n, maxTitle)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("missing ellipsis: %q", got)
	}
}

func TestPanelAndMessages(t *testing.T) {
	useMono(t)
	var buf bytes.Buffer
	Panel(&buf, []string{"hello"})
	if !strings.Contains(buf.String(), "hello") || !strings.Contains(buf.String(), "+") {
		t.Errorf("panel output: %q", buf.String())
	}

	buf.Reset()
	Fail(&buf, "nope")
	if got := strings.TrimSpace(buf.String()); got != "✖ nope" {
		t.Errorf("Fail: got %q", got)
	}
	buf.Reset()
	OK(&buf, "done")
	if got := strings.TrimSpace(buf.String()); got != "✔ done" {
		t.Errorf("OK: got %q", got)
	}
}
