package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/cubelife/internal/plot"
	"github.com/san-kum/cubelife/internal/render"
	"github.com/san-kum/cubelife/internal/viz"
)

// chrome is the number of screen rows used by everything except the plot area.
const chrome = 12

// ChartMsg replaces the chart being shown, e.g. after a config reload.
type ChartMsg struct {
	Chart *plot.Chart
}

// ErrMsg reports a failed reload; the previous chart stays on screen.
type ErrMsg struct {
	Err error
}

// Model is the interactive chart viewer.
type Model struct {
	chart    *plot.Chart
	theme    viz.Theme
	cursor   int
	width    int
	height   int
	source   string
	err      error
	showHelp bool
}

// New returns a viewer for c. width and height are used until the terminal
// reports its size.
func New(c *plot.Chart, theme string, width, height int, source string) Model {
	return Model{
		chart:  c,
		theme:  viz.GetTheme(theme),
		width:  width,
		height: height + chrome,
		source: source,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case ChartMsg:
		if msg.Chart != nil {
			m.cursor = follow(m.chart, msg.Chart, m.cursor)
			m.chart, m.err = msg.Chart, nil
		}
	case ErrMsg:
		m.err = msg.Err
	}
	return m, nil
}

// follow keeps the cursor on the same challenge level across a reload,
// falling back to the nearest valid index.
func follow(prev, next *plot.Chart, cursor int) int {
	if prev != nil && cursor < len(prev.Points) {
		if i := next.PointIndex(prev.Points[cursor].X); i >= 0 {
			return i
		}
	}
	return min(cursor, max(len(next.Points)-1, 0))
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	last := max(len(m.chart.Points)-1, 0)
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor < last {
			m.cursor++
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = last
	case "r":
		m.cursor = 0
	case "t":
		m.theme = viz.NextTheme(m.theme.Name)
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m Model) Cursor() int        { return m.cursor }
func (m Model) Theme() viz.Theme   { return m.theme }
func (m Model) Chart() *plot.Chart { return m.chart }
func (m Model) Err() error         { return m.err }

func (m Model) View() string {
	if m.chart == nil {
		return "no chart\n"
	}

	o := render.DefaultTerminalOptions()
	o.Theme = m.theme
	o.Highlight = m.cursor
	o.Width = m.width - 4 // panel border and padding
	o.Height = m.height - chrome

	var s strings.Builder
	s.WriteString(render.Terminal(m.chart, o))
	s.WriteString("\n" + m.status() + "\n")
	if m.err != nil {
		s.WriteString(viz.ErrorText.Render("reload failed: "+m.err.Error()) + "\n")
	}
	s.WriteString(m.help())

	return viz.Panel.Render(s.String())
}

func (m Model) status() string {
	if len(m.chart.Points) == 0 {
		return viz.KeyHint.Render("no challenge points")
	}
	p := m.chart.Points[m.cursor]
	u := m.chart.Units
	parts := []string{
		viz.MetricLabel.Render("challenge") + viz.MetricValue.Render(fmt.Sprintf("%g bits", p.X)),
		viz.MetricLabel.Render(strings.ToLower(u.PrimaryName)) + viz.MetricValue.Render(fmt.Sprintf("%.2f (%s)", p.Y, p.Label)),
		viz.MetricLabel.Render(strings.ToLower(u.SecondaryName)) + viz.MetricValue.Render(fmt.Sprintf("%.2f%s", p.Secondary, u.SecondarySuffix)),
	}
	return strings.Join(parts, "   ")
}

func (m Model) help() string {
	if !m.showHelp {
		return viz.KeyHint.Render(fmt.Sprintf("←/→ point  t theme (%s)  ? help  q quit", m.theme.Name))
	}
	lines := []string{
		"←/h  →/l   previous / next challenge point",
		"g/G        first / last point",
		"r          reset cursor",
		"t          cycle themes",
		"q          quit",
	}
	if m.source != "" {
		lines = append(lines, "source     "+m.source)
	}
	return viz.KeyHint.Render(strings.Join(lines, "\n"))
}

// Run shows the viewer until the user quits or ctx is cancelled. When watch
// is non-nil it runs alongside the program and may push ChartMsg/ErrMsg.
func Run(ctx context.Context, m Model, watch func(ctx context.Context, send func(tea.Msg))) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if watch != nil {
		go watch(ctx, p.Send)
	}
	_, err := p.Run()
	return err
}
