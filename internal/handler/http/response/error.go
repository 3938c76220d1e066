package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/auth"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/intern"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/summary"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/user"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrIncorrectPassword):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrEmployeeLinkRequired):
		NotFound(w, err.Error())
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrUnknownRole):
		BadRequest(w, err.Error(), nil)

	// Attendance log errors
	case errors.Is(err, attendance.ErrEmployeeNotExist):
		BadRequest(w, "Employee does not exist.", nil)
	case errors.Is(err, attendance.ErrSessionNotFound):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrDepartmentMismatch),
		errors.Is(err, attendance.ErrDepartmentRequired),
		errors.Is(err, employee.ErrDepartmentOutOfScope):
		Forbidden(w, err.Error())
	case errors.Is(err, attendance.ErrDuplicateLog):
		Conflict(w, err.Error())

	// Roster, summary, holiday and intern errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, summary.ErrSummaryNotFound):
		NotFound(w, "Attendance summary not found")
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, err.Error())
	case errors.Is(err, intern.ErrInternNotFound):
		NotFound(w, "Intern not found.")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
