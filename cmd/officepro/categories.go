package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/officepro/officepro/internal/cli"
	"github.com/officepro/officepro/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage purchasing categories",
		Long:  `List, add, update, and delete the categories suppliers and purchases attach to.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(updateCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			gw, err := newGateways()
			if err != nil {
				return err
			}

			categories, err := gw.Categories.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list categories: %w", err)
			}
			if len(categories) == 0 {
				fmt.Println(cli.InfoStyle.Render("No categories found. Use 'officepro categories add' to create one."))
				return nil
			}

			w := newTable("ID", "Name")
			defer w.Flush()
			for _, c := range categories {
				fmt.Fprintf(w, "%s\t%s\n", c.ID, c.Name)
			}
			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gw, err := newGateways()
			if err != nil {
				return err
			}

			created, err := gw.Categories.Create(cmd.Context(), model.CreateCategoryRequest{Name: args[0]})
			if err != nil {
				return fmt.Errorf("failed to create category: %w", err)
			}
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Created category %q (%s)", created.Name, created.ID)))
			return nil
		},
	}
}

func updateCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <id> <name>",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			gw, err := newGateways()
			if err != nil {
				return err
			}

			updated, err := gw.Categories.Update(cmd.Context(), model.UpdateCategoryRequest{
				ID:   args[0],
				Name: args[1],
			})
			if err != nil {
				return fmt.Errorf("failed to update category: %w", err)
			}
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Updated category %q", updated.Name)))
			return nil
		},
	}
}

func deleteCategoryCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gw, err := newGateways()
			if err != nil {
				return err
			}

			if !force {
				ok, err := cli.Confirm(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(),
					fmt.Sprintf("Delete category %s?", args[0]))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println(cli.InfoStyle.Render("Aborted."))
					return nil
				}
			}

			if err := gw.Categories.Delete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to delete category: %w", err)
			}
			fmt.Println(cli.SuccessStyle.Render("✓ Category deleted"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")
	return cmd
}
