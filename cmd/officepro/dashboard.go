package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/officepro/officepro/internal/cli"
	"github.com/officepro/officepro/internal/dashboard"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the procurement summary",
		Long:  `Load all resources together and print the derived totals. Any source failure aborts the whole summary.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gw, err := newGateways()
			if err != nil {
				return err
			}

			composer := dashboard.NewComposer(gw, slog.Default())
			summary, stats, err := composer.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load dashboard: %w", err)
			}

			fmt.Println(cli.TitleStyle.Render("Procurement dashboard"))

			w := newTable("Metric", "Value")
			fmt.Fprintf(w, "Budgets tracked\t%d\n", summary.BudgetsTotal)
			fmt.Fprintf(w, "Purchases pending\t%d\n", summary.PurchasesPending)
			fmt.Fprintf(w, "Suppliers on file\t%d\n", summary.SuppliersCount)
			fmt.Fprintf(w, "Registered users\t%d\n", summary.UsersCount)
			fmt.Fprintf(w, "Spend to date\t%s\n", money(summary.SpendToDate))
			w.Flush()

			fmt.Println()
			for _, stat := range stats {
				value := money(stat.Value)
				if stat.Unit != "" {
					value += " " + stat.Unit
				}
				fmt.Printf("%s  %s\n", cli.InfoStyle.Render(value), stat.Label)
			}
			return nil
		},
	}
}
