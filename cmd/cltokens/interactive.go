package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/cl-interop/tokens"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	kindStyle = valueStyle

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	collisionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

type row struct {
	name      string
	value     int32
	ambiguous bool
}

type interactiveModel struct {
	tables   []tokens.Table
	rows     []row
	input    textinput.Model
	selected int
	offset   int
	height   int
}

func newInteractiveModel(tables []tokens.Table, filter string) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "CL_"
	ti.Prompt = "filter: "
	ti.Width = 40
	ti.SetValue(filter)
	ti.Focus()

	m := &interactiveModel{
		tables: tables,
		input:  ti,
		height: 20,
	}
	m.refresh()
	return m
}

// refresh recollects rows for the current filter. Names are upper-cased so
// the prefix match ignores case.
func (m *interactiveModel) refresh() {
	var filter tokens.Filter
	if p := strings.ToUpper(strings.TrimSpace(m.input.Value())); p != "" {
		filter = tokens.Prefix(p)
	}
	names := tokens.Collect(m.tables, filter)

	m.rows = m.rows[:0]
	for _, v := range tokens.Values(names) {
		m.rows = append(m.rows, row{name: names[v], value: v, ambiguous: tokens.Ambiguous(names, v)})
	}
	m.selected = 0
	m.offset = 0
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// title, input, blank, help
		if h := msg.Height - 5; h > 0 {
			m.height = h
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "up":
			if m.selected > 0 {
				m.selected--
			}
			if m.selected < m.offset {
				m.offset = m.selected
			}
			return m, nil

		case "down":
			if m.selected < len(m.rows)-1 {
				m.selected++
			}
			if m.selected >= m.offset+m.height {
				m.offset = m.selected - m.height + 1
			}
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refresh()
	}
	return m, cmd
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("CL Tokens"))
	b.WriteString(fmt.Sprintf(" %d constants\n", len(m.rows)))
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	end := min(m.offset+m.height, len(m.rows))
	for i := m.offset; i < end; i++ {
		r := m.rows[i]
		name := r.name
		if r.ambiguous {
			name = collisionStyle.Render(name)
		}
		line := fmt.Sprintf("%11d  %-10s  %s", r.value, tokens.Hex(r.value), name)
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + valueStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("type to filter • ↑/↓ scroll • esc quit"))
	return b.String()
}

func runInteractive(tables []tokens.Table, filter string) error {
	p := tea.NewProgram(newInteractiveModel(tables, filter), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
