package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/officepro/officepro/internal/cli"
	"github.com/officepro/officepro/internal/model"
)

func budgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Manage procurement budgets",
		Long:  `List, add, update, and delete the budgets purchases draw from.`,
	}

	cmd.AddCommand(listBudgetsCmd())
	cmd.AddCommand(addBudgetCmd())
	cmd.AddCommand(updateBudgetCmd())
	cmd.AddCommand(deleteBudgetCmd())

	return cmd
}

func listBudgetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all budgets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			gw, err := newGateways()
			if err != nil {
				return err
			}

			budgets, err := gw.Budgets.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list budgets: %w", err)
			}
			if len(budgets) == 0 {
				fmt.Println(cli.InfoStyle.Render("No budgets found. Use 'officepro budgets add' to create one."))
				return nil
			}

			w := newTable("GUID", "Name", "General", "Available")
			defer w.Flush()
			for _, b := range budgets {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", b.GUID, b.Name, money(b.GeneralAmount), money(b.AvailableAmount))
			}
			return nil
		},
	}
}

func addBudgetCmd() *cobra.Command {
	var amount string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new budget",
		Long:  `Create a budget. The available amount starts at the general amount.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			general, err := parseAmount(amount)
			if err != nil {
				return err
			}

			gw, err := newGateways()
			if err != nil {
				return err
			}

			created, err := gw.Budgets.Create(cmd.Context(), model.CreateBudgetRequest{
				Name:          args[0],
				GeneralAmount: general,
			})
			if err != nil {
				return fmt.Errorf("failed to create budget: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Created budget %q (%s)", created.Name, created.GUID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "0", "general amount allocated to the budget")
	return cmd
}

func updateBudgetCmd() *cobra.Command {
	var (
		name      string
		general   string
		available string
	)

	cmd := &cobra.Command{
		Use:   "update <guid>",
		Short: "Update a budget",
		Long:  `Replace a budget's fields. Flags left unset keep their current value.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gw, err := newGateways()
			if err != nil {
				return err
			}

			current, err := gw.Budgets.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to load budget: %w", err)
			}

			req := model.UpdateBudgetRequest{
				ID:              current.GUID,
				Name:            current.Name,
				GeneralAmount:   current.GeneralAmount,
				AvailableAmount: current.AvailableAmount,
			}
			if name != "" {
				req.Name = name
			}
			if general != "" {
				if req.GeneralAmount, err = parseAmount(general); err != nil {
					return err
				}
			}
			if available != "" {
				if req.AvailableAmount, err = parseAmount(available); err != nil {
					return err
				}
			}

			updated, err := gw.Budgets.Update(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to update budget: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Updated budget %q", updated.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new budget name")
	cmd.Flags().StringVar(&general, "general", "", "new general amount")
	cmd.Flags().StringVar(&available, "available", "", "new available amount")
	return cmd
}

func deleteBudgetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "rm <guid>",
		Short: "Delete a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gw, err := newGateways()
			if err != nil {
				return err
			}

			if !force {
				ok, err := cli.Confirm(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(),
					fmt.Sprintf("Delete budget %s?", args[0]))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println(cli.InfoStyle.Render("Aborted."))
					return nil
				}
			}

			if err := gw.Budgets.Delete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to delete budget: %w", err)
			}
			fmt.Println(cli.SuccessStyle.Render("✓ Budget deleted"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")
	return cmd
}
