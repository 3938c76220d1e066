package summary

import (
	"context"
)

type SummaryService interface {
	// Generate reconciles and upserts the summaries of a department for a day.
	// Unscheduled employees on working days produce no row.
	Generate(ctx context.Context, req DepartmentDayRequest) (GenerateResponse, error)

	ListByDepartment(ctx context.Context, req DepartmentDayRequest) ([]SummaryResponse, error)

	ApproveSingle(ctx context.Context, id string) (SummaryResponse, error)

	// ApproveBulk approves every summary of the department and day; zero matches is not an error
	ApproveBulk(ctx context.Context, req DepartmentDayRequest) (ApproveBulkResponse, error)

	// Export renders the department's summaries for a day as an xlsx workbook
	Export(ctx context.Context, req DepartmentDayRequest) (ExportFile, error)
}
