package intern

import "context"

type ComplaintRepository interface {
	Create(ctx context.Context, c Complaint) (Complaint, error)
}

type ReviewRepository interface {
	// ListByEmployee returns reviews newest review date first
	ListByEmployee(ctx context.Context, employeeID string) ([]PerformanceReview, error)
}

type ProfileRepository interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (Profile, error)
}
