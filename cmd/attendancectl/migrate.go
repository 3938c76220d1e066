package main

import (
	"fmt"

	"github.com/cmlabs-hris/hr-attendance-go/internal/app"
	"github.com/cmlabs-hris/hr-attendance-go/migrations"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate <up|down>",
	Short:     "Apply or revert the embedded schema migrations",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app.App) error {
			switch args[0] {
			case "up":
				if err := migrations.Up(cmd.Context(), a.DB); err != nil {
					return err
				}
			case "down":
				if err := migrations.Down(cmd.Context(), a.DB); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Migrations %s applied\n", args[0])
			return nil
		})
	},
}
