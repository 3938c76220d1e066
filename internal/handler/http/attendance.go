package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-attendance-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	CreateBulk(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
	ListScheduledEmployees(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	logService      attendance.LogService
	employeeService employee.EmployeeService
}

func NewAttendanceHandler(logService attendance.LogService, employeeService employee.EmployeeService) AttendanceHandler {
	return &attendanceHandlerImpl{
		logService:      logService,
		employeeService: employeeService,
	}
}

// Create implements AttendanceHandler.
func (h *attendanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	identity, err := caller(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.CreateLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode attendance log", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	log, err := h.logService.RecordLog(r.Context(), identity, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance log recorded", log)
}

// CreateBulk implements AttendanceHandler.
func (h *attendanceHandlerImpl) CreateBulk(w http.ResponseWriter, r *http.Request) {
	identity, err := caller(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.BulkCreateLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode bulk attendance logs", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.logService.RecordLogsBulk(r.Context(), identity, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Bulk attendance logs processed", result)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	identity, err := caller(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := attendance.LogFilter{
		DepartmentID: optionalQueryParam(r, "departmentId", "department_id"),
		EmployeeID:   optionalQueryParam(r, "employeeId", "employee_id"),
		StartDate:    optionalQueryParam(r, "startDate", "start_date"),
		EndDate:      optionalQueryParam(r, "endDate", "end_date"),
		Page:         intQueryParam(r, "page"),
		Limit:        intQueryParam(r, "limit"),
	}

	logs, err := h.logService.ListLogs(r.Context(), identity, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, logs)
}

// ListEmployees implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	identity, err := caller(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	departmentID := chi.URLParam(r, "departmentId")
	if !identity.CanAccessDepartment(departmentID) {
		response.HandleError(w, employee.ErrDepartmentOutOfScope)
		return
	}

	employees, err := h.employeeService.ListByDepartment(r.Context(), departmentID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// ListScheduledEmployees implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListScheduledEmployees(w http.ResponseWriter, r *http.Request) {
	identity, err := caller(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	req := employee.ScheduledRosterRequest{
		Date:         queryParam(r, "date"),
		DepartmentID: queryParam(r, "departmentId", "department_id"),
	}
	if req.DepartmentID != "" && !identity.CanAccessDepartment(req.DepartmentID) {
		response.HandleError(w, employee.ErrDepartmentOutOfScope)
		return
	}

	roster, err := h.employeeService.ListScheduled(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if roster.Message != "" {
		response.SuccessWithMessage(w, roster.Message, roster)
		return
	}
	response.Success(w, roster)
}
