// Package dashboard derives read-only summary statistics from the four
// resource lists that feed the landing screen.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/officepro/officepro/internal/model"
	"github.com/officepro/officepro/internal/service"
)

// Composer aggregates budgets, purchases, suppliers, and users into
// dashboard figures. It only reads through the gateways; it never
// mutates any controller's list.
type Composer struct {
	budgets   service.BudgetGateway
	purchases service.PurchaseGateway
	suppliers service.SupplierGateway
	users     service.UserGateway
	logger    *slog.Logger
}

// NewComposer builds a composer over the resource gateways.
func NewComposer(gw service.Gateways, logger *slog.Logger) *Composer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Composer{
		budgets:   gw.Budgets,
		purchases: gw.Purchases,
		suppliers: gw.Suppliers,
		users:     gw.Users,
		logger:    logger,
	}
}

// Load fans out the four list reads concurrently and waits for all of
// them. Aggregation is all-or-nothing: if any read fails, no summary is
// returned rather than a partially-correct one.
func (c *Composer) Load(ctx context.Context) (*model.DashboardSummary, []model.DashboardStat, error) {
	var (
		budgets   []model.Budget
		purchases []model.Purchase
		suppliers []model.Supplier
		users     []model.User
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		budgets, err = c.budgets.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		purchases, err = c.purchases.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		suppliers, err = c.suppliers.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = c.users.List(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		c.logger.Error("dashboard aggregation failed", "error", err)
		return nil, nil, fmt.Errorf("failed to load dashboard data: %w", err)
	}

	var pending, approved int
	var spendToDate float64
	for _, p := range purchases {
		switch p.Status {
		case model.StatusPending:
			pending++
		case model.StatusApproved:
			approved++
			spendToDate += p.RequestedAmount
		}
	}

	summary := &model.DashboardSummary{
		BudgetsTotal:     len(budgets),
		PurchasesPending: pending,
		SuppliersCount:   len(suppliers),
		UsersCount:       len(users),
		SpendToDate:      spendToDate,
	}
	stats := []model.DashboardStat{
		{Label: "Active budgets", Value: float64(len(budgets))},
		{Label: "Requests awaiting", Value: float64(pending)},
		{Label: "Approved", Value: float64(approved)},
		{Label: "Suppliers", Value: float64(len(suppliers))},
	}
	return summary, stats, nil
}
