package main

import (
	"fmt"

	"github.com/cmlabs-hris/hr-attendance-go/internal/app"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/auth"
	"github.com/spf13/cobra"
)

var (
	userEmail      string
	userPassword   string
	userRoles      []string
	userEmployeeID string
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Provision login accounts",
}

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user with one or more roles",
	Example: `  attendancectl users create --email hr@example.com --password s3cretpass --role HR
  attendancectl users create --email intern@example.com --password s3cretpass --role Intern --employee-id <uuid>`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := auth.CreateUserRequest{
			Email:    userEmail,
			Password: userPassword,
			Roles:    userRoles,
		}
		if userEmployeeID != "" {
			req.EmployeeID = &userEmployeeID
		}
		if err := req.Validate(); err != nil {
			return err
		}

		return withApp(cmd.Context(), func(a *app.App) error {
			created, err := a.Auth.CreateUser(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (%s)\n", created.Email, created.ID)
			return nil
		})
	},
}

func init() {
	usersCreateCmd.Flags().StringVar(&userEmail, "email", "", "Login email")
	usersCreateCmd.Flags().StringVar(&userPassword, "password", "", "Initial password, at least 8 characters")
	usersCreateCmd.Flags().StringSliceVar(&userRoles, "role", nil, "Role (HR, DepartmentHead, Intern, Staff); repeatable")
	usersCreateCmd.Flags().StringVar(&userEmployeeID, "employee-id", "", "Linked employee id")
	_ = usersCreateCmd.MarkFlagRequired("email")
	_ = usersCreateCmd.MarkFlagRequired("password")
	_ = usersCreateCmd.MarkFlagRequired("role")

	usersCmd.AddCommand(usersCreateCmd)
}
