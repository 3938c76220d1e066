package attendance

import (
	"context"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/auth"
)

// LogService records and lists raw attendance logs
type LogService interface {
	// RecordLog validates and persists one log
	RecordLog(ctx context.Context, caller auth.Identity, req CreateLogRequest) (LogResponse, error)

	// RecordLogsBulk persists each entry independently; one failure never aborts the rest
	RecordLogsBulk(ctx context.Context, caller auth.Identity, req BulkCreateLogRequest) (BulkLogResponse, error)

	// ListLogs returns logs newest first; department-scoped callers only see their department
	ListLogs(ctx context.Context, caller auth.Identity, filter LogFilter) (ListLogResponse, error)
}
