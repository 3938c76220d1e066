package attendance

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE LOG DTOs
// ========================================

type CreateLogRequest struct {
	EmployeeID     string  `json:"employee_id"`
	Date           string  `json:"date"`
	SessionID      string  `json:"session_id"`
	ActualClockIn  *string `json:"actual_clock_in,omitempty"`
	ActualClockOut *string `json:"actual_clock_out,omitempty"`
	Status         string  `json:"status"`
	DepartmentID   *string `json:"department_id,omitempty"`
}

// UnmarshalJSON accepts camelCase keys as well as snake_case ones
func (r *CreateLogRequest) UnmarshalJSON(data []byte) error {
	type snakeCase CreateLogRequest
	var body struct {
		snakeCase
		EmployeeID     string  `json:"employeeId"`
		SessionID      string  `json:"sessionId"`
		ActualClockIn  *string `json:"actualClockIn"`
		ActualClockOut *string `json:"actualClockOut"`
		DepartmentID   *string `json:"departmentId"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}

	*r = CreateLogRequest(body.snakeCase)
	if r.EmployeeID == "" {
		r.EmployeeID = body.EmployeeID
	}
	if r.SessionID == "" {
		r.SessionID = body.SessionID
	}
	if r.ActualClockIn == nil {
		r.ActualClockIn = body.ActualClockIn
	}
	if r.ActualClockOut == nil {
		r.ActualClockOut = body.ActualClockOut
	}
	if r.DepartmentID == nil {
		r.DepartmentID = body.DepartmentID
	}
	return nil
}

func (r *CreateLogRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

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

	if validator.IsEmpty(r.SessionID) {
		errs = append(errs, validator.ValidationError{
			Field:   "session_id",
			Message: "session_id is required",
		})
	}

	if r.ActualClockIn != nil && *r.ActualClockIn != "" {
		if _, ok := validator.IsValidDateTime(*r.ActualClockIn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "actual_clock_in",
				Message: "actual_clock_in must be an ISO8601 timestamp",
			})
		}
	}

	if r.ActualClockOut != nil && *r.ActualClockOut != "" {
		if _, ok := validator.IsValidDateTime(*r.ActualClockOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "actual_clock_out",
				Message: "actual_clock_out must be an ISO8601 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToLog converts a validated request into a Log
func (r *CreateLogRequest) ToLog() Log {
	date, _ := validator.ParseDateOrDateTime(r.Date)
	return Log{
		EmployeeID:     r.EmployeeID,
		Date:           date,
		SessionID:      r.SessionID,
		ActualClockIn:  parseTimestamp(r.ActualClockIn),
		ActualClockOut: parseTimestamp(r.ActualClockOut),
		Status:         r.Status,
	}
}

func parseTimestamp(value *string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}
	t, ok := validator.IsValidDateTime(*value)
	if !ok {
		return nil
	}
	return &t
}

type BulkCreateLogRequest struct {
	Logs []CreateLogRequest `json:"logs"`
}

// MaxBulkLogs bounds a single bulk request
const MaxBulkLogs = 500

func (r *BulkCreateLogRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Logs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "logs",
			Message: "logs must contain at least one entry",
		})
	}
	if len(r.Logs) > MaxBulkLogs {
		errs = append(errs, validator.ValidationError{
			Field:   "logs",
			Message: fmt.Sprintf("logs must not exceed %d entries", MaxBulkLogs),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LogEmployeeResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type LogSessionResponse struct {
	ID               string  `json:"id"`
	SessionNumber    int     `json:"session_number"`
	ExpectedClockIn  *string `json:"expected_clock_in"`
	ExpectedClockOut *string `json:"expected_clock_out"`
}

type LogResponse struct {
	ID             string               `json:"id"`
	EmployeeID     string               `json:"employee_id"`
	Date           string               `json:"date"`
	SessionID      string               `json:"session_id"`
	ActualClockIn  *string              `json:"actual_clock_in"`
	ActualClockOut *string              `json:"actual_clock_out"`
	Status         string               `json:"status"`
	CreatedAt      string               `json:"created_at"`
	Employee       *LogEmployeeResponse `json:"employee,omitempty"`
	Session        *LogSessionResponse  `json:"session,omitempty"`
}

func NewLogResponse(l Log) LogResponse {
	resp := LogResponse{
		ID:             l.ID,
		EmployeeID:     l.EmployeeID,
		Date:           l.Date.Format(validator.DateLayout),
		SessionID:      l.SessionID,
		ActualClockIn:  formatTimestamp(l.ActualClockIn),
		ActualClockOut: formatTimestamp(l.ActualClockOut),
		Status:         l.Status,
		CreatedAt:      l.CreatedAt.Format(time.RFC3339),
	}
	if l.Employee != nil {
		resp.Employee = &LogEmployeeResponse{
			ID:        l.Employee.ID,
			FirstName: l.Employee.FirstName,
			LastName:  l.Employee.LastName,
		}
	}
	if l.Session != nil {
		resp.Session = &LogSessionResponse{
			ID:               l.Session.ID,
			SessionNumber:    l.Session.SessionNumber,
			ExpectedClockIn:  l.Session.ExpectedClockIn,
			ExpectedClockOut: l.Session.ExpectedClockOut,
		}
	}
	return resp
}

func formatTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

// BulkLogResult is the outcome of one entry of a bulk request
type BulkLogResult struct {
	Success bool         `json:"success"`
	Log     *LogResponse `json:"log,omitempty"`
	Error   string       `json:"error,omitempty"`
}

type BulkLogResponse struct {
	Total     int             `json:"total"`
	Succeeded int             `json:"succeeded"`
	Failed    int             `json:"failed"`
	Results   []BulkLogResult `json:"results"`
}

type LogFilter struct {
	DepartmentID *string `json:"department_id,omitempty"`
	EmployeeID   *string `json:"employee_id,omitempty"`
	StartDate    *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate      *string `json:"end_date,omitempty"`   // YYYY-MM-DD

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *LogFilter) Validate() error {
	var errs validator.ValidationErrors

	// Page validation
	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	// Limit validation
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.DepartmentID != nil && *f.DepartmentID != "" && !validator.IsValidUUID(*f.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id must be a valid UUID",
		})
	}

	if f.EmployeeID != nil && *f.EmployeeID != "" && !validator.IsValidUUID(*f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListLogResponse struct {
	TotalCount int64         `json:"total_count"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalPages int           `json:"total_pages"`
	Showing    string        `json:"showing"`
	Logs       []LogResponse `json:"logs"`
}
