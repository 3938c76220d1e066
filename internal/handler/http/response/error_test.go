package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/auth"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/intern"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/summary"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError_StatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation", validator.ValidationErrors{{Field: "date", Message: "date is required"}}, http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("request: %w", validator.ValidationErrors{{Field: "date", Message: "bad"}}), http.StatusBadRequest},
		{"bad credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"wrong current password", auth.ErrIncorrectPassword, http.StatusUnauthorized},
		{"revoked token", auth.ErrTokenRevoked, http.StatusUnauthorized},
		{"unknown employee", attendance.ErrEmployeeNotExist, http.StatusBadRequest},
		{"other department", attendance.ErrDepartmentMismatch, http.StatusForbidden},
		{"roster outside scope", employee.ErrDepartmentOutOfScope, http.StatusForbidden},
		{"duplicate log", attendance.NewDuplicateLogError(attendance.Key{EmployeeID: "e", SessionID: "s"}), http.StatusConflict},
		{"summary not found", summary.ErrSummaryNotFound, http.StatusNotFound},
		{"holiday clash", holiday.ErrHolidayExists, http.StatusConflict},
		{"intern not found", intern.ErrInternNotFound, http.StatusNotFound},
		{"anything else", errors.New("pq: connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)
			assert.Equal(t, tt.code, rec.Code)

			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
		})
	}
}

func TestHandleError_HidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, errors.New("password=hunter2 host=db"))

	assert.NotContains(t, rec.Body.String(), "hunter2")
	assert.Contains(t, rec.Body.String(), "An unexpected error occurred")
}

func TestHandleError_ValidationDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{{Field: "department_id", Message: "department_id is required"}})

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "department_id is required", body.Error.Details["department_id"])
}

func TestFile(t *testing.T) {
	rec := httptest.NewRecorder()
	File(rec, "report.xlsx", "application/octet-stream", []byte("abc"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="report.xlsx"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "3", rec.Header().Get("Content-Length"))
	assert.Equal(t, "abc", rec.Body.String())
}
