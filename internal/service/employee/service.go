package employee

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/schedule"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	holidayRepo    holiday.HolidayRepository
	assignmentRepo schedule.ShiftAssignmentRepository
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	holidayRepo holiday.HolidayRepository,
	assignmentRepo schedule.ShiftAssignmentRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo:   employeeRepo,
		holidayRepo:    holidayRepo,
		assignmentRepo: assignmentRepo,
	}
}

// Helper function to map Employee to EmployeeResponse
func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:             emp.ID,
		FirstName:      emp.FirstName,
		LastName:       emp.LastName,
		FullName:       emp.FullName(),
		DepartmentID:   emp.DepartmentID,
		PositionID:     emp.PositionID,
		PositionName:   emp.PositionName,
		EmploymentDate: emp.EmploymentDate.Format(validator.DateLayout),
	}
}

func formatTimeOfDay(t *schedule.TimeOfDay) string {
	if t == nil {
		return ""
	}
	return t.String()
}

// ListByDepartment implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListByDepartment(ctx context.Context, departmentID string) ([]employee.EmployeeResponse, error) {
	if !validator.IsValidUUID(departmentID) {
		return nil, validator.ValidationErrors{{
			Field:   "department_id",
			Message: "department_id must be a valid UUID",
		}}
	}

	employees, err := s.employeeRepo.ListByDepartment(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}
	return responses, nil
}

// ListScheduled implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListScheduled(ctx context.Context, req employee.ScheduledRosterRequest) (employee.ScheduledRosterResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.ScheduledRosterResponse{}, err
	}
	date, _ := validator.ParseDateOrDateTime(req.Date)

	h, err := s.holidayRepo.GetByDate(ctx, date)
	if err != nil {
		return employee.ScheduledRosterResponse{}, fmt.Errorf("failed to get holiday: %w", err)
	}

	dayType := holiday.Classify(date, h)
	resp := employee.ScheduledRosterResponse{
		Date:         date.Format(validator.DateLayout),
		DepartmentID: req.DepartmentID,
		DayType:      string(dayType),
		Employees:    []employee.ScheduledEmployeeResponse{},
	}

	switch dayType {
	case holiday.DayHoliday:
		resp.Message = fmt.Sprintf("%s is a holiday (%s). No employees are scheduled.", resp.Date, h.DisplayName())
		return resp, nil
	case holiday.DayWeekend:
		resp.Message = fmt.Sprintf("%s falls on a weekend. No employees are scheduled.", resp.Date)
		return resp, nil
	}

	employees, err := s.employeeRepo.ListByDepartment(ctx, req.DepartmentID)
	if err != nil {
		return employee.ScheduledRosterResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}
	assignments, err := s.assignmentRepo.ListActiveByDepartment(ctx, req.DepartmentID, date)
	if err != nil {
		return employee.ScheduledRosterResponse{}, fmt.Errorf("failed to list shift assignments: %w", err)
	}
	active := schedule.ActiveByEmployee(assignments, date)

	for _, emp := range employees {
		a, ok := active[emp.ID]
		if !ok {
			continue
		}
		resp.Employees = append(resp.Employees, employee.ScheduledEmployeeResponse{
			EmployeeResponse: mapEmployeeToResponse(emp),
			ShiftID:          a.ShiftID,
			ShiftName:        a.Shift.Name,
			ShiftStartTime:   formatTimeOfDay(a.Shift.StartTime),
			ShiftEndTime:     formatTimeOfDay(a.Shift.EndTime),
		})
	}
	return resp, nil
}
