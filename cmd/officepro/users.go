package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/officepro/officepro/internal/cli"
	"github.com/officepro/officepro/internal/model"
)

func usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage staff accounts",
		Long:  `List, add, update, and delete the staff accounts that file purchase requests.`,
	}

	cmd.AddCommand(listUsersCmd())
	cmd.AddCommand(addUserCmd())
	cmd.AddCommand(updateUserCmd())
	cmd.AddCommand(deleteUserCmd())

	return cmd
}

func listUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users",
		RunE: func(cmd *cobra.Command, _ []string) error {
			gw, err := newGateways()
			if err != nil {
				return err
			}

			users, err := gw.Users.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}
			if len(users) == 0 {
				fmt.Println(cli.InfoStyle.Render("No users found. Use 'officepro users add' to create one."))
				return nil
			}

			w := newTable("ID", "Name", "Role", "Email")
			defer w.Flush()
			for _, u := range users {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.ID, u.FullName(), u.Role, u.Email)
			}
			return nil
		},
	}
}

func addUserCmd() *cobra.Command {
	var (
		surname  string
		role     string
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new user",
		Long:  `Create a staff account. The password is only sent on creation; later updates never carry credentials.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userRole, err := model.ParseUserRole(role)
			if err != nil {
				return err
			}
			if len(password) < 6 {
				return fmt.Errorf("password must be at least 6 characters")
			}

			gw, err := newGateways()
			if err != nil {
				return err
			}

			created, err := gw.Users.Create(cmd.Context(), model.CreateUserRequest{
				Name:     args[0],
				Surname:  surname,
				Role:     userRole,
				Email:    email,
				Password: password,
			})
			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Created user %q (%s)", created.FullName(), created.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&surname, "surname", "", "surname of the staff member")
	cmd.Flags().StringVar(&role, "role", "employee", "account role (employee, analyst, admin)")
	cmd.Flags().StringVar(&email, "email", "", "contact email")
	cmd.Flags().StringVar(&password, "password", "", "initial password (min 6 characters)")
	_ = cmd.MarkFlagRequired("surname")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func updateUserCmd() *cobra.Command {
	var (
		name    string
		surname string
		role    string
		email   string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a user",
		Long:  `Replace a user's fields. Flags left unset keep their current value.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gw, err := newGateways()
			if err != nil {
				return err
			}

			current, err := gw.Users.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to load user: %w", err)
			}

			req := model.UpdateUserRequest{
				ID:      current.ID,
				Name:    current.Name,
				Surname: current.Surname,
				Role:    current.Role,
				Email:   current.Email,
			}
			if name != "" {
				req.Name = name
			}
			if surname != "" {
				req.Surname = surname
			}
			if role != "" {
				if req.Role, err = model.ParseUserRole(role); err != nil {
					return err
				}
			}
			if email != "" {
				req.Email = email
			}

			updated, err := gw.Users.Update(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to update user: %w", err)
			}
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Updated user %q", updated.FullName())))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new first name")
	cmd.Flags().StringVar(&surname, "surname", "", "new surname")
	cmd.Flags().StringVar(&role, "role", "", "new role (employee, analyst, admin)")
	cmd.Flags().StringVar(&email, "email", "", "new email")
	return cmd
}

func deleteUserCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gw, err := newGateways()
			if err != nil {
				return err
			}

			if !force {
				ok, err := cli.Confirm(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(),
					fmt.Sprintf("Delete user %s?", args[0]))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println(cli.InfoStyle.Render("Aborted."))
					return nil
				}
			}

			if err := gw.Users.Delete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to delete user: %w", err)
			}
			fmt.Println(cli.SuccessStyle.Render("✓ User deleted"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")
	return cmd
}
