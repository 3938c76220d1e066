package intern

import (
	"context"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/auth"
)

// InternService serves the self-service views of the caller's linked employee.
// Every method fails with ErrInternNotFound when the caller has no employee.
type InternService interface {
	Dashboard(ctx context.Context, caller auth.Identity) (DashboardResponse, error)
	AttendanceHistory(ctx context.Context, caller auth.Identity) (HistoryResponse, error)
	Profile(ctx context.Context, caller auth.Identity) (ProfileResponse, error)
	PerformanceReviews(ctx context.Context, caller auth.Identity) ([]ReviewResponse, error)
	SubmitComplaint(ctx context.Context, caller auth.Identity, req CreateComplaintRequest) (ComplaintResponse, error)
}
