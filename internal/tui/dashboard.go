package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/officepro/officepro/internal/controller"
	"github.com/officepro/officepro/internal/dashboard"
	"github.com/officepro/officepro/internal/model"
)

type dashboardLoadedMsg struct {
	err     error
	summary *model.DashboardSummary
	stats   []model.DashboardStat
}

// dashboardPane shows the cross-resource summary. All source reads run
// together; any failure keeps the previous snapshot and surfaces the
// error banner.
type dashboardPane struct {
	composer *dashboard.Composer
	summary  *model.DashboardSummary
	stats    []model.DashboardStat
	errMsg   string
	theme    Theme
	keys     KeyMap
	loading  bool
}

func newDashboardPane(composer *dashboard.Composer, theme Theme, keys KeyMap) *dashboardPane {
	return &dashboardPane{composer: composer, theme: theme, keys: keys}
}

func (p *dashboardPane) title() string   { return "Dashboard" }
func (p *dashboardPane) capturing() bool { return false }

func (p *dashboardPane) init() tea.Cmd {
	return p.load()
}

func (p *dashboardPane) load() tea.Cmd {
	p.loading = true
	p.errMsg = ""
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), effectTimeout)
		defer cancel()
		summary, stats, err := p.composer.Load(ctx)
		return dashboardLoadedMsg{summary: summary, stats: stats, err: err}
	}
}

func (p *dashboardPane) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, p.keys.Refresh) {
			return p.load()
		}
	case dashboardLoadedMsg:
		p.loading = false
		if msg.err != nil {
			p.errMsg = controller.FailureMessage
			return nil
		}
		p.summary = msg.summary
		p.stats = msg.stats
	}
	return nil
}

func (p *dashboardPane) view(_, _ int) string {
	var b strings.Builder

	if p.errMsg != "" {
		b.WriteString(p.theme.Error.Render(p.errMsg) + "\n")
	}
	if p.loading {
		b.WriteString(p.theme.Muted.Render("Loading…") + "\n")
	}
	if p.summary == nil {
		if !p.loading && p.errMsg == "" {
			b.WriteString(p.theme.Muted.Render("No data yet. Press 'r' to refresh.") + "\n")
		}
		return b.String()
	}

	cards := make([]string, 0, len(p.stats))
	for _, stat := range p.stats {
		value := fmt.Sprintf("%.2f %s", stat.Value, stat.Unit)
		if stat.Unit == "" {
			value = fmt.Sprintf("%.0f", stat.Value)
		}
		card := p.theme.Title.Render(value) + "\n" + p.theme.Muted.Render(stat.Label)
		cards = append(cards, p.theme.Box.Render(card))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...) + "\n\n")

	s := p.summary
	lines := []string{
		fmt.Sprintf("Budgets tracked      %d", s.BudgetsTotal),
		fmt.Sprintf("Purchases pending    %d", s.PurchasesPending),
		fmt.Sprintf("Suppliers on file    %d", s.SuppliersCount),
		fmt.Sprintf("Registered users     %d", s.UsersCount),
		fmt.Sprintf("Spend to date        %.2f", s.SpendToDate),
	}
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\n" + p.theme.Muted.Render("r refresh"))
	return b.String()
}
