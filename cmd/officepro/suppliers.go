package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/officepro/officepro/internal/cli"
	"github.com/officepro/officepro/internal/model"
)

func suppliersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suppliers",
		Short: "Manage suppliers",
		Long:  `List, add, update, and delete the vendors the office buys from.`,
	}

	cmd.AddCommand(listSuppliersCmd())
	cmd.AddCommand(addSupplierCmd())
	cmd.AddCommand(updateSupplierCmd())
	cmd.AddCommand(deleteSupplierCmd())

	return cmd
}

func listSuppliersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all suppliers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			gw, err := newGateways()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			suppliers, err := gw.Suppliers.List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list suppliers: %w", err)
			}
			if len(suppliers) == 0 {
				fmt.Println(cli.InfoStyle.Render("No suppliers found. Use 'officepro suppliers add' to create one."))
				return nil
			}

			categoryNames := map[string]string{}
			if categories, err := gw.Categories.List(ctx); err == nil {
				for _, c := range categories {
					categoryNames[c.ID] = c.Name
				}
			}

			w := newTable("ID", "Name", "Contact", "Category")
			defer w.Flush()
			for _, s := range suppliers {
				category := categoryNames[s.CategoryID]
				if category == "" {
					category = cli.SubtleStyle.Render("Unknown")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ID, s.Name, s.ContactInfo, category)
			}
			return nil
		},
	}
}

func addSupplierCmd() *cobra.Command {
	var (
		contact  string
		category string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new supplier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gw, err := newGateways()
			if err != nil {
				return err
			}

			created, err := gw.Suppliers.Create(cmd.Context(), model.CreateSupplierRequest{
				Name:        args[0],
				ContactInfo: contact,
				CategoryID:  category,
			})
			if err != nil {
				return fmt.Errorf("failed to create supplier: %w", err)
			}
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Created supplier %q (%s)", created.Name, created.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&contact, "contact", "", "contact details for the supplier")
	cmd.Flags().StringVar(&category, "category", "", "id of the purchasing category")
	_ = cmd.MarkFlagRequired("contact")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func updateSupplierCmd() *cobra.Command {
	var (
		name     string
		contact  string
		category string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a supplier",
		Long:  `Replace a supplier's fields. Flags left unset keep their current value.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gw, err := newGateways()
			if err != nil {
				return err
			}

			current, err := gw.Suppliers.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to load supplier: %w", err)
			}

			req := model.UpdateSupplierRequest{
				ID:          current.ID,
				Name:        current.Name,
				ContactInfo: current.ContactInfo,
				CategoryID:  current.CategoryID,
			}
			if name != "" {
				req.Name = name
			}
			if contact != "" {
				req.ContactInfo = contact
			}
			if category != "" {
				req.CategoryID = category
			}

			updated, err := gw.Suppliers.Update(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to update supplier: %w", err)
			}
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Updated supplier %q", updated.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new supplier name")
	cmd.Flags().StringVar(&contact, "contact", "", "new contact details")
	cmd.Flags().StringVar(&category, "category", "", "new purchasing category id")
	return cmd
}

func deleteSupplierCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a supplier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gw, err := newGateways()
			if err != nil {
				return err
			}

			if !force {
				ok, err := cli.Confirm(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(),
					fmt.Sprintf("Delete supplier %s?", args[0]))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println(cli.InfoStyle.Render("Aborted."))
					return nil
				}
			}

			if err := gw.Suppliers.Delete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to delete supplier: %w", err)
			}
			fmt.Println(cli.SuccessStyle.Render("✓ Supplier deleted"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")
	return cmd
}
