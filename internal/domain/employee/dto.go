package employee

import (
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/validator"
)

type EmployeeResponse struct {
	ID             string  `json:"id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	FullName       string  `json:"full_name"`
	DepartmentID   string  `json:"department_id"`
	PositionID     *string `json:"position_id,omitempty"`
	PositionName   *string `json:"position_name,omitempty"`
	EmploymentDate string  `json:"employment_date"`
}

// ScheduledEmployeeResponse adds the shift covering the requested date
type ScheduledEmployeeResponse struct {
	EmployeeResponse
	ShiftID        string `json:"shift_id"`
	ShiftName      string `json:"shift_name"`
	ShiftStartTime string `json:"shift_start_time"`
	ShiftEndTime   string `json:"shift_end_time"`
}

type ScheduledRosterRequest struct {
	Date         string `json:"date"`
	DepartmentID string `json:"department_id"`
}

func (r *ScheduledRosterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.ParseDateOrDateTime(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id is required",
		})
	} else if !validator.IsValidUUID(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ScheduledRosterResponse struct {
	Date         string                      `json:"date"`
	DepartmentID string                      `json:"department_id"`
	DayType      string                      `json:"day_type"`
	Message      string                      `json:"message,omitempty"`
	Employees    []ScheduledEmployeeResponse `json:"employees"`
}
