package summary

import (
	"encoding/json"
	"time"

	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/validator"
)

// DepartmentDayRequest addresses the summaries of one department on one day
type DepartmentDayRequest struct {
	Date         string `json:"date"`
	DepartmentID string `json:"department_id"`
}

// UnmarshalJSON accepts departmentId as well as department_id
func (r *DepartmentDayRequest) UnmarshalJSON(data []byte) error {
	type snakeCase DepartmentDayRequest
	var body struct {
		snakeCase
		DepartmentID string `json:"departmentId"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}

	*r = DepartmentDayRequest(body.snakeCase)
	if r.DepartmentID == "" {
		r.DepartmentID = body.DepartmentID
	}
	return nil
}

func (r *DepartmentDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.ParseDateOrDateTime(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD or ISO8601 format",
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

// Day returns the requested UTC calendar day; call after Validate
func (r *DepartmentDayRequest) Day() time.Time {
	d, _ := validator.ParseDateOrDateTime(r.Date)
	return d
}

type SummaryEmployeeResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type SummaryResponse struct {
	ID               string                   `json:"id"`
	EmployeeID       string                   `json:"employee_id"`
	Date             string                   `json:"date"`
	Status           string                   `json:"status"`
	TotalWorkHours   *float64                 `json:"total_work_hours"`
	LateArrival      bool                     `json:"late_arrival"`
	EarlyDeparture   bool                     `json:"early_departure"`
	UnplannedAbsence bool                     `json:"unplanned_absence"`
	Remarks          string                   `json:"remarks"`
	DepartmentID     string                   `json:"department_id"`
	Employee         *SummaryEmployeeResponse `json:"employee,omitempty"`
	CreatedAt        string                   `json:"created_at"`
	UpdatedAt        string                   `json:"updated_at"`
}

func NewSummaryResponse(s Summary) SummaryResponse {
	resp := SummaryResponse{
		ID:               s.ID,
		EmployeeID:       s.EmployeeID,
		Date:             s.Date.Format(validator.DateLayout),
		Status:           s.Status,
		TotalWorkHours:   s.TotalWorkHours,
		LateArrival:      s.LateArrival,
		EarlyDeparture:   s.EarlyDeparture,
		UnplannedAbsence: s.UnplannedAbsence,
		Remarks:          s.Remarks,
		DepartmentID:     s.DepartmentID,
		CreatedAt:        s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        s.UpdatedAt.Format(time.RFC3339),
	}
	if s.EmployeeFirstName != nil {
		emp := &SummaryEmployeeResponse{ID: s.EmployeeID, FirstName: *s.EmployeeFirstName}
		if s.EmployeeLastName != nil {
			emp.LastName = *s.EmployeeLastName
		}
		resp.Employee = emp
	}
	return resp
}

type GenerateResponse struct {
	Date         string            `json:"date"`
	DepartmentID string            `json:"department_id"`
	Generated    int               `json:"generated"`
	Summaries    []SummaryResponse `json:"summaries"`
}

type ApproveBulkResponse struct {
	Date         string `json:"date"`
	DepartmentID string `json:"department_id"`
	Approved     int64  `json:"approved"`
}

// ExportFile is a rendered spreadsheet ready to stream
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
