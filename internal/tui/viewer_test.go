package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/cubelife/internal/lifetime"
	"github.com/san-kum/cubelife/internal/plot"
)

func newViewer(t *testing.T) Model {
	t.Helper()
	c, err := plot.Build(lifetime.DefaultModel(), lifetime.DefaultSampleSet(), plot.DefaultOptions())
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return New(c, "classic", 100, 24, "defaults")
}

func key(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m Model, keys ...string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		m = next.(Model)
	}
	return m, cmd
}

func TestCursorBounds(t *testing.T) {
	m := newViewer(t)

	m, _ = press(m, "left")
	if m.Cursor() != 0 {
		t.Errorf("cursor moved below zero: %d", m.Cursor())
	}

	m, _ = press(m, "right", "l", "right")
	if m.Cursor() != 3 {
		t.Errorf("expected cursor 3, got %d", m.Cursor())
	}

	m, _ = press(m, "G", "right", "right")
	if m.Cursor() != 8 {
		t.Errorf("expected cursor pinned at last point 8, got %d", m.Cursor())
	}

	m, _ = press(m, "r")
	if m.Cursor() != 0 {
		t.Errorf("reset should return to 0, got %d", m.Cursor())
	}
}

func TestThemeCycle(t *testing.T) {
	m := newViewer(t)
	m, _ = press(m, "t")

	if m.Theme().Name != "cyberpunk" {
		t.Errorf("expected cyberpunk after classic, got %s", m.Theme().Name)
	}
}

func TestQuit(t *testing.T) {
	m := newViewer(t)
	_, cmd := press(m, "q")

	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestChartMsgClampsCursor(t *testing.T) {
	m := newViewer(t)
	m, _ = press(m, "G")

	s := lifetime.DefaultSampleSet()
	s.Challenges = []float64{10, 20}
	c, err := plot.Build(lifetime.DefaultModel(), s, plot.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	next, _ := m.Update(ChartMsg{Chart: c})
	m = next.(Model)
	if m.Chart() != c {
		t.Error("chart was not replaced")
	}
	if m.Cursor() != 1 {
		t.Errorf("expected cursor clamped to 1, got %d", m.Cursor())
	}
}

func TestChartMsgFollowsChallenge(t *testing.T) {
	m := newViewer(t)
	m, _ = press(m, "right", "right", "right") // 25 bits

	s := lifetime.DefaultSampleSet()
	s.Challenges = []float64{20, 25, 30}
	c, err := plot.Build(lifetime.DefaultModel(), s, plot.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	next, _ := m.Update(ChartMsg{Chart: c})
	if got := next.(Model).Cursor(); got != 1 {
		t.Errorf("expected cursor to stay on 25 bits at index 1, got %d", got)
	}
}

func TestErrMsgKeepsChart(t *testing.T) {
	m := newViewer(t)
	before := m.Chart()

	next, _ := m.Update(ErrMsg{Err: errors.New("bad yaml")})
	m = next.(Model)
	if m.Chart() != before {
		t.Error("error replaced the chart")
	}
	if !strings.Contains(m.View(), "bad yaml") {
		t.Error("view does not report the reload error")
	}

	next, _ = m.Update(ChartMsg{Chart: before})
	if next.(Model).Err() != nil {
		t.Error("a new chart should clear the error")
	}
}

func TestViewShowsSelectedPoint(t *testing.T) {
	m := newViewer(t)
	m, _ = press(m, "right", "right", "right")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	view := next.(Model).View()

	for _, want := range []string{"Cube Lifetime Function", "25 bits", "205.71 (206)", "12.86d"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHelpToggle(t *testing.T) {
	m := newViewer(t)
	m, _ = press(m, "?")

	if !strings.Contains(m.View(), "cycle themes") {
		t.Error("help overlay not shown")
	}
}
