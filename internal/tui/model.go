package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the root bubbletea model: a tab bar over one pane per
// resource plus the dashboard.
type Model struct {
	panes  []pane
	keys   KeyMap
	theme  Theme
	active int
	width  int
	height int
}

func newModel(panes []pane, theme Theme, keys KeyMap) Model {
	return Model{panes: panes, theme: theme, keys: keys}
}

func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.panes))
	for _, p := range m.panes {
		if cmd := p.init(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		active := m.panes[m.active]
		if !active.capturing() {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.keys.NextTab):
				m.active = (m.active + 1) % len(m.panes)
				return m, nil
			case key.Matches(msg, m.keys.PrevTab):
				m.active = (m.active + len(m.panes) - 1) % len(m.panes)
				return m, nil
			}
		}
		return m, active.update(msg)
	}

	// Data messages go to every pane; each pane's controller ignores
	// messages addressed to another resource.
	var cmds []tea.Cmd
	for _, p := range m.panes {
		if cmd := p.update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	var b strings.Builder

	tabs := make([]string, len(m.panes))
	for i, p := range m.panes {
		if i == m.active {
			tabs[i] = m.theme.TabActive.Render(p.title())
		} else {
			tabs[i] = m.theme.TabInactive.Render(p.title())
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")
	b.WriteString(m.panes[m.active].view(m.width, m.height))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Muted.Render("tab/shift+tab switch · q quit"))
	return b.String()
}
