package pager

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"
	"github.com/podspy-cli/podspy/style"
)

const (
	headerHeight = 2
	footerHeight = 1
)

type model struct {
	title    string
	lines    []string
	viewport viewport.Model
	width    int
}

func newModel(title string, lines []string, width, height int) *model {
	m := &model{
		title:    title,
		lines:    lines,
		viewport: viewport.New(80, 20),
	}
	m.resize(width, height)
	return m
}

func (m *model) resize(width, height int) {
	m.width = width
	m.viewport.Width = width
	m.viewport.Height = max(height-headerHeight-footerHeight, 1)
	m.viewport.SetContent(m.content())
}

func (m *model) content() string {
	var b strings.Builder
	for i, line := range m.lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(truncate.StringWithTail(expandTab(line), uint(max(m.width, 1)), "…"))
	}
	return b.String()
}

// expandTab replaces the listing tab so truncation measures the visible width.
func expandTab(line string) string {
	return strings.Replace(line, "\t", "  ", 1)
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c", "enter":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	header := style.Title(m.title)
	footer := style.Faint(fmt.Sprintf("%3.f%%  ↑/↓ scroll • q quit", m.viewport.ScrollPercent()*100))
	return header + "\n\n" + m.viewport.View() + "\n" + footer
}

func run(m *model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
