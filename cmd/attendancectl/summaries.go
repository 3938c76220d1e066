package main

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/hr-attendance-go/internal/app"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/summary"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/validator"
	"github.com/spf13/cobra"
)

var (
	summaryDate       string
	summaryDepartment string
	summaryID         string
)

var summariesCmd = &cobra.Command{
	Use:   "summaries",
	Short: "Generate and approve daily attendance summaries",
}

var summariesGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate summaries for a day",
	Long: `Generates the attendance summaries of one department, or of every
department when --department is omitted. --date defaults to yesterday (UTC).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(summaryDate, time.Now())
		if err != nil {
			return err
		}

		return withApp(cmd.Context(), func(a *app.App) error {
			if summaryDepartment == "" {
				return a.SummaryJob.GenerateFor(cmd.Context(), date)
			}
			resp, err := a.Summaries.Generate(cmd.Context(), summary.DepartmentDayRequest{
				Date:         date.Format(validator.DateLayout),
				DepartmentID: summaryDepartment,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d summaries for department %s on %s\n", resp.Generated, resp.DepartmentID, resp.Date)
			return nil
		})
	},
}

var summariesApproveCmd = &cobra.Command{
	Use:   "approve",
	Short: "Approve one summary by --id or a department day by --date and --department",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if summaryID == "" && (summaryDate == "" || summaryDepartment == "") {
			return fmt.Errorf("either --id or both --date and --department are required")
		}

		return withApp(cmd.Context(), func(a *app.App) error {
			if summaryID != "" {
				resp, err := a.Summaries.ApproveSingle(cmd.Context(), summaryID)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Approved summary %s (employee %s, %s)\n", resp.ID, resp.EmployeeID, resp.Date)
				return nil
			}

			resp, err := a.Summaries.ApproveBulk(cmd.Context(), summary.DepartmentDayRequest{
				Date:         summaryDate,
				DepartmentID: summaryDepartment,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Approved %d summaries\n", resp.Approved)
			return nil
		})
	},
}

func init() {
	summariesGenerateCmd.Flags().StringVar(&summaryDate, "date", "", "Day to generate (YYYY-MM-DD)")
	summariesGenerateCmd.Flags().StringVar(&summaryDepartment, "department", "", "Department id; all departments when empty")

	summariesApproveCmd.Flags().StringVar(&summaryID, "id", "", "Summary id")
	summariesApproveCmd.Flags().StringVar(&summaryDate, "date", "", "Day to approve (YYYY-MM-DD)")
	summariesApproveCmd.Flags().StringVar(&summaryDepartment, "department", "", "Department id")

	summariesCmd.AddCommand(summariesGenerateCmd)
	summariesCmd.AddCommand(summariesApproveCmd)
}

// resolveDate parses value, falling back to the UTC day before now
func resolveDate(value string, now time.Time) (time.Time, error) {
	if value == "" {
		u := now.UTC()
		return time.Date(u.Year(), u.Month(), u.Day()-1, 0, 0, 0, 0, time.UTC), nil
	}
	date, ok := validator.IsValidDate(value)
	if !ok {
		return time.Time{}, fmt.Errorf("invalid --date %q, expected YYYY-MM-DD", value)
	}
	return date, nil
}
