package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/auth"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/validator"
)

type LogServiceImpl struct {
	attendance.LogRepository
	employee.EmployeeRepository
}

func NewLogService(logRepo attendance.LogRepository, employeeRepo employee.EmployeeRepository) attendance.LogService {
	return &LogServiceImpl{
		LogRepository:      logRepo,
		EmployeeRepository: employeeRepo,
	}
}

// RecordLog implements attendance.LogService.
func (a *LogServiceImpl) RecordLog(ctx context.Context, caller auth.Identity, req attendance.CreateLogRequest) (attendance.LogResponse, error) {
	log, err := a.prepare(ctx, caller, req)
	if err != nil {
		return attendance.LogResponse{}, err
	}

	created, err := a.LogRepository.Create(ctx, log)
	if err != nil {
		if errors.Is(err, attendance.ErrDuplicateLog) || errors.Is(err, attendance.ErrSessionNotFound) {
			return attendance.LogResponse{}, err
		}
		return attendance.LogResponse{}, fmt.Errorf("failed to record attendance log: %w", err)
	}

	slog.Info("attendance log recorded", "log_id", created.ID, "employee_id", created.EmployeeID, "recorded_by", caller.UserID)
	return attendance.NewLogResponse(created), nil
}

// RecordLogsBulk implements attendance.LogService.
func (a *LogServiceImpl) RecordLogsBulk(ctx context.Context, caller auth.Identity, req attendance.BulkCreateLogRequest) (attendance.BulkLogResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.BulkLogResponse{}, err
	}

	resp := attendance.BulkLogResponse{
		Total:   len(req.Logs),
		Results: make([]attendance.BulkLogResult, 0, len(req.Logs)),
	}

	for i := range req.Logs {
		created, err := a.recordChecked(ctx, caller, req.Logs[i])
		if err != nil {
			resp.Failed++
			resp.Results = append(resp.Results, attendance.BulkLogResult{Success: false, Error: bulkErrorMessage(err)})
			continue
		}
		logResp := attendance.NewLogResponse(created)
		resp.Succeeded++
		resp.Results = append(resp.Results, attendance.BulkLogResult{Success: true, Log: &logResp})
	}

	slog.Info("bulk attendance logs processed",
		"total", resp.Total,
		"succeeded", resp.Succeeded,
		"failed", resp.Failed,
		"recorded_by", caller.UserID,
	)
	return resp, nil
}

// recordChecked checks the key explicitly before inserting
func (a *LogServiceImpl) recordChecked(ctx context.Context, caller auth.Identity, req attendance.CreateLogRequest) (attendance.Log, error) {
	log, err := a.prepare(ctx, caller, req)
	if err != nil {
		return attendance.Log{}, err
	}

	exists, err := a.LogRepository.Exists(ctx, log.Key())
	if err != nil {
		return attendance.Log{}, err
	}
	if exists {
		return attendance.Log{}, attendance.NewDuplicateLogError(log.Key())
	}

	return a.LogRepository.Create(ctx, log)
}

// prepare validates the request, resolves the employee and applies department scope
func (a *LogServiceImpl) prepare(ctx context.Context, caller auth.Identity, req attendance.CreateLogRequest) (attendance.Log, error) {
	if err := req.Validate(); err != nil {
		return attendance.Log{}, err
	}
	if !validator.IsValidUUID(req.EmployeeID) {
		return attendance.Log{}, attendance.ErrEmployeeNotExist
	}
	if !validator.IsValidUUID(req.SessionID) {
		return attendance.Log{}, attendance.ErrSessionNotFound
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.Log{}, attendance.ErrEmployeeNotExist
		}
		return attendance.Log{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if caller.IsDepartmentScoped() {
		scope := caller.DepartmentID
		if scope == nil || *scope == "" {
			scope = req.DepartmentID
		}
		if scope == nil || *scope == "" {
			return attendance.Log{}, attendance.ErrDepartmentRequired
		}
		if emp.DepartmentID != *scope {
			return attendance.Log{}, attendance.ErrDepartmentMismatch
		}
	}

	return req.ToLog(), nil
}

func bulkErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs),
		errors.Is(err, attendance.ErrDuplicateLog),
		errors.Is(err, attendance.ErrEmployeeNotExist),
		errors.Is(err, attendance.ErrSessionNotFound),
		errors.Is(err, attendance.ErrDepartmentMismatch),
		errors.Is(err, attendance.ErrDepartmentRequired):
		return err.Error()
	default:
		slog.Error("bulk attendance log entry failed", "error", err)
		return "failed to record attendance log"
	}
}

// ListLogs implements attendance.LogService.
func (a *LogServiceImpl) ListLogs(ctx context.Context, caller auth.Identity, filter attendance.LogFilter) (attendance.ListLogResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListLogResponse{}, err
	}

	if caller.IsDepartmentScoped() {
		if caller.DepartmentID == nil || *caller.DepartmentID == "" {
			return attendance.ListLogResponse{}, attendance.ErrDepartmentRequired
		}
		filter.DepartmentID = caller.DepartmentID
	}

	logs, total, err := a.LogRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListLogResponse{}, fmt.Errorf("failed to list attendance logs: %w", err)
	}

	responses := make([]attendance.LogResponse, 0, len(logs))
	for _, l := range logs {
		responses = append(responses, attendance.NewLogResponse(l))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	showing := fmt.Sprintf("%d-%d of %d", (filter.Page-1)*filter.Limit+1, min(filter.Page*filter.Limit, int(total)), total)
	if total == 0 {
		showing = "0 of 0"
	}

	return attendance.ListLogResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Showing:    showing,
		Logs:       responses,
	}, nil
}
