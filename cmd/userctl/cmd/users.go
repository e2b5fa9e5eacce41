package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-user-keeper/models"
)

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := opts.client()
			if err != nil {
				return err
			}

			users, err := api.ListUsers(cmd.Context())
			if err != nil {
				return wrapAPIError("list users", err)
			}

			return render(cmd.OutOrStdout(), opts.output, users, func(w io.Writer) {
				fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE")
				for _, u := range users {
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role)
				}
			})
		},
	}
}

func newGetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			api, err := opts.client()
			if err != nil {
				return err
			}

			user, err := api.GetUser(cmd.Context(), id)
			if err != nil {
				return wrapAPIError("get user", err)
			}

			return render(cmd.OutOrStdout(), opts.output, user, userTable(user))
		},
	}
}

func newUpdateCmd(opts *options) *cobra.Command {
	var name, email, role string

	c := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a user's name, email or role",
		Long: `Change a user's name, email or role. Only the flags given are sent.

Examples:
  userctl -t "$TOKEN" update 5 --name Ann
  userctl -t "$ADMIN_TOKEN" update 7 --role admin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var update models.UserUpdate
			if cmd.Flags().Changed(models.FieldName) {
				update.Name = &name
			}
			if cmd.Flags().Changed(models.FieldEmail) {
				update.Email = &email
			}
			if cmd.Flags().Changed(models.FieldRole) {
				update.Role = &role
			}
			if update.IsEmpty() {
				return fmt.Errorf("nothing to update: set at least one of --name, --email, --role")
			}

			api, err := opts.client()
			if err != nil {
				return err
			}

			user, err := api.UpdateUser(cmd.Context(), id, update)
			if err != nil {
				return wrapAPIError("update user", err)
			}

			return render(cmd.OutOrStdout(), opts.output, user, userTable(user))
		},
	}

	c.Flags().StringVar(&name, models.FieldName, "", "new name")
	c.Flags().StringVar(&email, models.FieldEmail, "", "new email")
	c.Flags().StringVar(&role, models.FieldRole, "", "new role: user, admin")

	return c
}

func newDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			api, err := opts.client()
			if err != nil {
				return err
			}

			user, err := api.DeleteUser(cmd.Context(), id)
			if err != nil {
				return wrapAPIError("delete user", err)
			}

			return render(cmd.OutOrStdout(), opts.output, user, func(w io.Writer) {
				fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE")
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", user.ID, user.Name, user.Email, user.Role)
			})
		},
	}
}

func userTable(u models.UserView) func(w io.Writer) {
	return func(w io.Writer) {
		fmt.Fprintf(w, "ID:\t%d\n", u.ID)
		fmt.Fprintf(w, "Name:\t%s\n", u.Name)
		fmt.Fprintf(w, "Email:\t%s\n", u.Email)
		fmt.Fprintf(w, "Role:\t%s\n", u.Role)
		fmt.Fprintf(w, "Created:\t%s\n", u.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Fprintf(w, "Updated:\t%s\n", u.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
}

// parseID only checks the syntax. Range checks are left to the server so
// its validation message is shown.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user id %q", raw)
	}
	return id, nil
}
