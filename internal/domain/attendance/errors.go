package attendance

import (
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/validator"
)

// Attendance log errors
var (
	ErrEmployeeNotExist   = errors.New("employee does not exist")
	ErrDepartmentMismatch = errors.New("employee belongs to a different department")
	ErrDepartmentRequired = errors.New("department scope could not be determined for caller")
	ErrDuplicateLog       = errors.New("attendance log already exists")
	ErrSessionNotFound    = errors.New("attendance session not found")
)

// DuplicateLogError names the conflicting key; it matches ErrDuplicateLog with errors.Is
type DuplicateLogError struct {
	EmployeeID string
	Date       string
	SessionID  string
}

func (e *DuplicateLogError) Error() string {
	return fmt.Sprintf("attendance log already exists for employee %s on %s session %s", e.EmployeeID, e.Date, e.SessionID)
}

func (e *DuplicateLogError) Is(target error) bool {
	return target == ErrDuplicateLog
}

func NewDuplicateLogError(k Key) error {
	return &DuplicateLogError{
		EmployeeID: k.EmployeeID,
		Date:       k.Date.Format(validator.DateLayout),
		SessionID:  k.SessionID,
	}
}
