package main

import (
	"fmt"
	"os"

	"github.com/cmlabs-hris/hr-attendance-go/internal/app"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/holiday"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var holidaysCmd = &cobra.Command{
	Use:   "holidays",
	Short: "Manage the holiday calendar",
}

var holidaysImportCmd = &cobra.Command{
	Use:   "import <file.yaml>",
	Short: "Upsert holidays from a YAML calendar",
	Long: `Reads a calendar of the form

  holidays:
    - date: 2025-01-01
      name: New Year's Day

and upserts every entry by date. Invalid entries are reported and skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cal, err := loadCalendar(args[0])
		if err != nil {
			return err
		}

		return withApp(cmd.Context(), func(a *app.App) error {
			result, err := a.Holidays.Import(cmd.Context(), cal)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %d holidays\n", result.Imported)
			for _, failed := range result.Failed {
				fmt.Fprintf(out, "  skipped %s\n", failed)
			}
			return nil
		})
	},
}

func init() {
	holidaysCmd.AddCommand(holidaysImportCmd)
}

func loadCalendar(path string) (holiday.Calendar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return holiday.Calendar{}, fmt.Errorf("failed to read calendar: %w", err)
	}
	return parseCalendar(data)
}

func parseCalendar(data []byte) (holiday.Calendar, error) {
	var cal holiday.Calendar
	if err := yaml.Unmarshal(data, &cal); err != nil {
		return holiday.Calendar{}, fmt.Errorf("failed to parse calendar: %w", err)
	}
	if len(cal.Holidays) == 0 {
		return holiday.Calendar{}, fmt.Errorf("calendar has no holidays")
	}
	return cal, nil
}
