package leave

import "time"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// DefaultReason is reported for leave without a reason
const DefaultReason = "Leave"

type Leave struct {
	ID         string
	EmployeeID string
	FromDate   time.Time
	ToDate     time.Time
	Reason     *string
	Status     string
	CreatedAt  time.Time
}

// Covers reports whether date falls inside [FromDate, ToDate]
func (l Leave) Covers(date time.Time) bool {
	return !l.FromDate.After(date) && !l.ToDate.Before(date)
}

// IsApproved reports whether the leave counts towards attendance
func (l Leave) IsApproved() bool {
	return l.Status == StatusApproved
}

// ReasonOrDefault returns the reason, or DefaultReason when blank
func (l Leave) ReasonOrDefault() string {
	if l.Reason == nil || *l.Reason == "" {
		return DefaultReason
	}
	return *l.Reason
}
