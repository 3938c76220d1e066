package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	// ListApprovedCovering returns approved leave covering date for employees of the department
	ListApprovedCovering(ctx context.Context, departmentID string, date time.Time) ([]Leave, error)
}

// ByEmployee keeps the first approved leave per employee that covers date
func ByEmployee(leaves []Leave, date time.Time) map[string]Leave {
	out := make(map[string]Leave, len(leaves))
	for _, l := range leaves {
		if !l.IsApproved() || !l.Covers(date) {
			continue
		}
		if _, seen := out[l.EmployeeID]; !seen {
			out[l.EmployeeID] = l
		}
	}
	return out
}
