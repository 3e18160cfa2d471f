package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/officepro/officepro/internal/cli"
	"github.com/officepro/officepro/internal/model"
)

func purchasesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "purchases",
		Short: "Manage purchase requests",
		Long:  `List, file, update, and delete purchase requests. New requests always start pending.`,
	}

	cmd.AddCommand(listPurchasesCmd())
	cmd.AddCommand(addPurchaseCmd())
	cmd.AddCommand(updatePurchaseCmd())
	cmd.AddCommand(deletePurchaseCmd())

	return cmd
}

func listPurchasesCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List purchase requests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			gw, err := newGateways()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			purchases, err := gw.Purchases.List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list purchases: %w", err)
			}

			if status != "" {
				want, err := model.ParsePurchaseStatus(status)
				if err != nil {
					return err
				}
				filtered := purchases[:0]
				for _, p := range purchases {
					if p.Status == want {
						filtered = append(filtered, p)
					}
				}
				purchases = filtered
			}

			if len(purchases) == 0 {
				fmt.Println(cli.InfoStyle.Render("No purchase requests found."))
				return nil
			}

			userNames := map[string]string{}
			if users, err := gw.Users.List(ctx); err == nil {
				for _, u := range users {
					userNames[u.ID] = u.FullName()
				}
			}
			categoryNames := map[string]string{}
			if categories, err := gw.Categories.List(ctx); err == nil {
				for _, c := range categories {
					categoryNames[c.ID] = c.Name
				}
			}

			w := newTable("ID", "Title", "Requested by", "Category", "Amount", "Status", "Created")
			defer w.Flush()
			for _, p := range purchases {
				requester := userNames[p.UserID]
				if requester == "" {
					requester = cli.SubtleStyle.Render("Unknown")
				}
				category := categoryNames[p.CategoryID]
				if category == "" {
					category = cli.SubtleStyle.Render("Unknown")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					p.ID, p.Title, requester, category, money(p.RequestedAmount), p.Status, p.CreatedAt)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "only show requests with this status (pending, approved, rejected)")
	return cmd
}

func addPurchaseCmd() *cobra.Command {
	var (
		description string
		user        string
		category    string
		amount      string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "File a new purchase request",
		Long:  `File a purchase request. The server assigns the pending status and the creation time.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			requested, err := parseAmount(amount)
			if err != nil {
				return err
			}

			gw, err := newGateways()
			if err != nil {
				return err
			}

			created, err := gw.Purchases.Create(cmd.Context(), model.CreatePurchaseRequest{
				UserID:          user,
				CategoryID:      category,
				Title:           args[0],
				Description:     description,
				RequestedAmount: requested,
			})
			if err != nil {
				return fmt.Errorf("failed to create purchase: %w", err)
			}
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Filed purchase %q (%s)", created.Title, created.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "free-form description of the request")
	cmd.Flags().StringVar(&user, "user", "", "id of the requesting user")
	cmd.Flags().StringVar(&category, "category", "", "id of the purchasing category")
	cmd.Flags().StringVar(&amount, "amount", "0", "requested amount")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func updatePurchaseCmd() *cobra.Command {
	var (
		title       string
		description string
		user        string
		category    string
		amount      string
		status      string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a purchase request",
		Long:  `Replace a purchase request's fields, including its review status. Flags left unset keep their current value.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gw, err := newGateways()
			if err != nil {
				return err
			}

			current, err := gw.Purchases.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to load purchase: %w", err)
			}

			req := model.UpdatePurchaseRequest{
				ID:              current.ID,
				UserID:          current.UserID,
				CategoryID:      current.CategoryID,
				Title:           current.Title,
				Description:     current.Description,
				Status:          current.Status,
				RequestedAmount: current.RequestedAmount,
			}
			if title != "" {
				req.Title = title
			}
			if description != "" {
				req.Description = description
			}
			if user != "" {
				req.UserID = user
			}
			if category != "" {
				req.CategoryID = category
			}
			if amount != "" {
				if req.RequestedAmount, err = parseAmount(amount); err != nil {
					return err
				}
			}
			if status != "" {
				if req.Status, err = model.ParsePurchaseStatus(status); err != nil {
					return err
				}
			}

			updated, err := gw.Purchases.Update(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to update purchase: %w", err)
			}
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Updated purchase %q (%s)", updated.Title, updated.Status)))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&user, "user", "", "new requesting user id")
	cmd.Flags().StringVar(&category, "category", "", "new purchasing category id")
	cmd.Flags().StringVar(&amount, "amount", "", "new requested amount")
	cmd.Flags().StringVar(&status, "status", "", "new status (pending, approved, rejected)")
	return cmd
}

func deletePurchaseCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a purchase request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gw, err := newGateways()
			if err != nil {
				return err
			}

			if !force {
				ok, err := cli.Confirm(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(),
					fmt.Sprintf("Delete purchase %s?", args[0]))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println(cli.InfoStyle.Render("Aborted."))
					return nil
				}
			}

			if err := gw.Purchases.Delete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to delete purchase: %w", err)
			}
			fmt.Println(cli.SuccessStyle.Render("✓ Purchase deleted"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")
	return cmd
}
