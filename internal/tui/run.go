package tui

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/officepro/officepro/internal/controller"
	"github.com/officepro/officepro/internal/dashboard"
	"github.com/officepro/officepro/internal/model"
	"github.com/officepro/officepro/internal/service"
)

// Config carries everything the browser needs.
type Config struct {
	Gateways service.Gateways
	Logger   *slog.Logger
}

// Run starts the full-screen browser and blocks until the user quits.
func Run(ctx context.Context, cfg Config) error {
	theme := DefaultTheme()
	keys := DefaultKeyMap()
	logger := cfg.Logger

	categories := controller.NewCategoryController(cfg.Gateways.Categories, logger)
	users := controller.NewUserController(cfg.Gateways.Users, logger)

	categoryOptions := func() []controller.Option {
		records := categories.Records()
		opts := make([]controller.Option, 0, len(records))
		for _, c := range records {
			opts = append(opts, controller.Option{Label: c.Name, Value: c.ID})
		}
		return opts
	}
	userOptions := func() []controller.Option {
		records := users.Records()
		opts := make([]controller.Option, 0, len(records))
		for _, u := range records {
			opts = append(opts, controller.Option{Label: u.FullName(), Value: u.ID})
		}
		return opts
	}

	budgets := controller.NewBudgetController(cfg.Gateways.Budgets, logger)
	suppliers := controller.NewSupplierController(cfg.Gateways.Suppliers, categoryOptions, logger)
	purchases := controller.NewPurchaseController(cfg.Gateways.Purchases, userOptions, categoryOptions, logger)

	categoryName := func(id string) string {
		for _, c := range categories.Records() {
			if c.ID == id {
				return c.Name
			}
		}
		return "Unknown"
	}
	userName := func(id string) string {
		for _, u := range users.Records() {
			if u.ID == id {
				return u.FullName()
			}
		}
		return "Unknown"
	}

	panes := []pane{
		newDashboardPane(dashboard.NewComposer(cfg.Gateways, logger), theme, keys),
		newResourcePane("Budgets", "budget", budgets,
			[]string{"Name", "General", "Available"},
			func(b model.Budget) []string {
				return []string{b.Name, money(b.GeneralAmount), money(b.AvailableAmount)}
			}, theme, keys),
		newResourcePane("Categories", "category", categories,
			[]string{"Name"},
			func(c model.Category) []string {
				return []string{c.Name}
			}, theme, keys),
		newResourcePane("Suppliers", "supplier", suppliers,
			[]string{"Name", "Contact", "Category"},
			func(s model.Supplier) []string {
				return []string{s.Name, s.ContactInfo, categoryName(s.CategoryID)}
			}, theme, keys),
		newResourcePane("Users", "user", users,
			[]string{"Name", "Role", "Email"},
			func(u model.User) []string {
				return []string{u.FullName(), u.Role.String(), u.Email}
			}, theme, keys),
		newResourcePane("Purchases", "purchase", purchases,
			[]string{"Title", "Requested by", "Category", "Amount", "Status", "Created"},
			func(p model.Purchase) []string {
				return []string{
					p.Title,
					userName(p.UserID),
					categoryName(p.CategoryID),
					money(p.RequestedAmount),
					p.Status.String(),
					p.CreatedAt,
				}
			}, theme, keys),
	}

	program := tea.NewProgram(newModel(panes, theme, keys), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
