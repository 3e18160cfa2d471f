package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/officepro/officepro/internal/cli"
	"github.com/officepro/officepro/internal/service"
)

func exportCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all resources to CSV",
		Long:  `Write one CSV file per resource into the output directory.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gw, err := newGateways()
			if err != nil {
				return err
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			steps := []struct {
				write func(ctx context.Context, w *csv.Writer) error
				name  string
			}{
				{name: "budgets", write: exportBudgets(gw)},
				{name: "categories", write: exportCategories(gw)},
				{name: "suppliers", write: exportSuppliers(gw)},
				{name: "users", write: exportUsers(gw)},
				{name: "purchases", write: exportPurchases(gw)},
			}

			bar := progressbar.NewOptions(len(steps),
				progressbar.OptionSetDescription("Exporting"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)

			for _, step := range steps {
				if err := exportFile(cmd.Context(), filepath.Join(outDir, step.name+".csv"), step.write); err != nil {
					return fmt.Errorf("failed to export %s: %w", step.name, err)
				}
				_ = bar.Add(1)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Exported %d files to %s", len(steps), outDir)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "export", "output directory for the CSV files")
	return cmd
}

func exportFile(ctx context.Context, path string, write func(ctx context.Context, w *csv.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := write(ctx, w); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func exportBudgets(gw service.Gateways) func(ctx context.Context, w *csv.Writer) error {
	return func(ctx context.Context, w *csv.Writer) error {
		budgets, err := gw.Budgets.List(ctx)
		if err != nil {
			return err
		}
		if err := w.Write([]string{"guid", "name", "generalAmount", "availableAmount"}); err != nil {
			return err
		}
		for _, b := range budgets {
			if err := w.Write([]string{b.GUID, b.Name, money(b.GeneralAmount), money(b.AvailableAmount)}); err != nil {
				return err
			}
		}
		return nil
	}
}

func exportCategories(gw service.Gateways) func(ctx context.Context, w *csv.Writer) error {
	return func(ctx context.Context, w *csv.Writer) error {
		categories, err := gw.Categories.List(ctx)
		if err != nil {
			return err
		}
		if err := w.Write([]string{"id", "name"}); err != nil {
			return err
		}
		for _, c := range categories {
			if err := w.Write([]string{c.ID, c.Name}); err != nil {
				return err
			}
		}
		return nil
	}
}

func exportSuppliers(gw service.Gateways) func(ctx context.Context, w *csv.Writer) error {
	return func(ctx context.Context, w *csv.Writer) error {
		suppliers, err := gw.Suppliers.List(ctx)
		if err != nil {
			return err
		}
		if err := w.Write([]string{"id", "name", "contactInfo", "categoryId"}); err != nil {
			return err
		}
		for _, s := range suppliers {
			if err := w.Write([]string{s.ID, s.Name, s.ContactInfo, s.CategoryID}); err != nil {
				return err
			}
		}
		return nil
	}
}

func exportUsers(gw service.Gateways) func(ctx context.Context, w *csv.Writer) error {
	return func(ctx context.Context, w *csv.Writer) error {
		users, err := gw.Users.List(ctx)
		if err != nil {
			return err
		}
		if err := w.Write([]string{"id", "name", "surname", "role", "email"}); err != nil {
			return err
		}
		for _, u := range users {
			if err := w.Write([]string{u.ID, u.Name, u.Surname, u.Role.String(), u.Email}); err != nil {
				return err
			}
		}
		return nil
	}
}

func exportPurchases(gw service.Gateways) func(ctx context.Context, w *csv.Writer) error {
	return func(ctx context.Context, w *csv.Writer) error {
		purchases, err := gw.Purchases.List(ctx)
		if err != nil {
			return err
		}
		header := []string{"id", "userId", "categoryId", "title", "description", "status", "requestedAmount", "createdAt"}
		if err := w.Write(header); err != nil {
			return err
		}
		for _, p := range purchases {
			row := []string{p.ID, p.UserID, p.CategoryID, p.Title, p.Description, p.Status.String(), money(p.RequestedAmount), p.CreatedAt}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	}
}
