package summary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/schedule"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/summary"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

// Options tunes generation
type Options struct {
	// LockApproved leaves approved rows untouched on regeneration
	LockApproved bool
	// Concurrency bounds in-flight upserts
	Concurrency int
	// Location anchors shift start times; nil means UTC
	Location *time.Location
}

type SummaryServiceImpl struct {
	summaries   summary.SummaryRepository
	employees   employee.EmployeeRepository
	departments employee.DepartmentRepository
	holidays    holiday.HolidayRepository
	assignments schedule.ShiftAssignmentRepository
	leaves      leave.LeaveRepository
	logs        attendance.LogRepository
	opts        Options
}

func NewSummaryService(
	summaryRepo summary.SummaryRepository,
	employeeRepo employee.EmployeeRepository,
	departmentRepo employee.DepartmentRepository,
	holidayRepo holiday.HolidayRepository,
	assignmentRepo schedule.ShiftAssignmentRepository,
	leaveRepo leave.LeaveRepository,
	logRepo attendance.LogRepository,
	opts Options,
) summary.SummaryService {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &SummaryServiceImpl{
		summaries:   summaryRepo,
		employees:   employeeRepo,
		departments: departmentRepo,
		holidays:    holidayRepo,
		assignments: assignmentRepo,
		leaves:      leaveRepo,
		logs:        logRepo,
		opts:        opts,
	}
}

// dayData is everything loaded for one department and day
type dayData struct {
	holiday     *holiday.Holiday
	employees   []employee.Employee
	assignments map[string]schedule.ShiftAssignment
	leaves      map[string]leave.Leave
	logs        map[string]attendance.Log
}

func (s *SummaryServiceImpl) load(ctx context.Context, departmentID string, date time.Time) (dayData, error) {
	var data dayData
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		h, err := s.holidays.GetByDate(gctx, date)
		data.holiday = h
		return err
	})
	g.Go(func() error {
		emps, err := s.employees.ListByDepartment(gctx, departmentID)
		data.employees = emps
		return err
	})
	g.Go(func() error {
		assignments, err := s.assignments.ListActiveByDepartment(gctx, departmentID, date)
		data.assignments = schedule.ActiveByEmployee(assignments, date)
		return err
	})
	g.Go(func() error {
		leaves, err := s.leaves.ListApprovedCovering(gctx, departmentID, date)
		data.leaves = leave.ByEmployee(leaves, date)
		return err
	})
	g.Go(func() error {
		logs, err := s.logs.ListByDepartmentAndDate(gctx, departmentID, date)
		data.logs = attendance.FirstByEmployee(logs)
		return err
	})

	if err := g.Wait(); err != nil {
		return dayData{}, err
	}
	return data, nil
}

func (d dayData) input(emp employee.Employee, date time.Time, loc *time.Location) summary.DayInput {
	in := summary.DayInput{
		EmployeeID:   emp.ID,
		DepartmentID: emp.DepartmentID,
		Date:         date,
		Holiday:      d.holiday,
		Location:     loc,
	}
	if a, ok := d.assignments[emp.ID]; ok {
		in.Assignment = &a
	}
	if l, ok := d.leaves[emp.ID]; ok {
		in.Leave = &l
	}
	if l, ok := d.logs[emp.ID]; ok {
		in.Log = &l
	}
	return in
}

// Generate implements summary.SummaryService.
func (s *SummaryServiceImpl) Generate(ctx context.Context, req summary.DepartmentDayRequest) (summary.GenerateResponse, error) {
	if err := req.Validate(); err != nil {
		return summary.GenerateResponse{}, err
	}
	date := req.Day()

	data, err := s.load(ctx, req.DepartmentID, date)
	if err != nil {
		return summary.GenerateResponse{}, fmt.Errorf("failed to load attendance data: %w", err)
	}

	results := make([]*summary.Summary, len(data.employees))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Concurrency)

	for i, emp := range data.employees {
		derived, emit := summary.Reconcile(data.input(emp, date, s.opts.Location))
		if !emit {
			continue
		}
		i := i
		g.Go(func() error {
			if s.opts.LockApproved {
				existing, err := s.summaries.GetByEmployeeAndDate(gctx, derived.EmployeeID, date)
				if err != nil {
					return err
				}
				if existing != nil && existing.IsApproved() {
					results[i] = existing
					return nil
				}
			}
			saved, err := s.summaries.Upsert(gctx, derived)
			if err != nil {
				return err
			}
			results[i] = &saved
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return summary.GenerateResponse{}, fmt.Errorf("failed to generate attendance summaries: %w", err)
	}

	resp := summary.GenerateResponse{
		Date:         date.Format(validator.DateLayout),
		DepartmentID: req.DepartmentID,
		Summaries:    make([]summary.SummaryResponse, 0, len(results)),
	}
	for _, r := range results {
		if r != nil {
			resp.Summaries = append(resp.Summaries, summary.NewSummaryResponse(*r))
		}
	}
	resp.Generated = len(resp.Summaries)

	slog.Info("attendance summaries generated",
		"department_id", req.DepartmentID,
		"date", resp.Date,
		"employees", len(data.employees),
		"generated", resp.Generated,
	)
	return resp, nil
}

// ListByDepartment implements summary.SummaryService.
func (s *SummaryServiceImpl) ListByDepartment(ctx context.Context, req summary.DepartmentDayRequest) ([]summary.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rows, err := s.summaries.ListByDepartmentAndDate(ctx, req.DepartmentID, req.Day())
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance summaries: %w", err)
	}

	responses := make([]summary.SummaryResponse, 0, len(rows))
	for _, r := range rows {
		responses = append(responses, summary.NewSummaryResponse(r))
	}
	return responses, nil
}

// ApproveSingle implements summary.SummaryService.
func (s *SummaryServiceImpl) ApproveSingle(ctx context.Context, id string) (summary.SummaryResponse, error) {
	if !validator.IsValidUUID(id) {
		return summary.SummaryResponse{}, summary.ErrSummaryNotFound
	}

	approved, err := s.summaries.Approve(ctx, id)
	if err != nil {
		if errors.Is(err, summary.ErrSummaryNotFound) {
			return summary.SummaryResponse{}, err
		}
		return summary.SummaryResponse{}, fmt.Errorf("failed to approve attendance summary: %w", err)
	}

	slog.Info("attendance summary approved", "summary_id", id)
	return summary.NewSummaryResponse(approved), nil
}

// ApproveBulk implements summary.SummaryService.
func (s *SummaryServiceImpl) ApproveBulk(ctx context.Context, req summary.DepartmentDayRequest) (summary.ApproveBulkResponse, error) {
	if err := req.Validate(); err != nil {
		return summary.ApproveBulkResponse{}, err
	}
	date := req.Day()

	count, err := s.summaries.ApproveByDepartmentAndDate(ctx, req.DepartmentID, date)
	if err != nil {
		return summary.ApproveBulkResponse{}, fmt.Errorf("failed to approve attendance summaries: %w", err)
	}

	slog.Info("attendance summaries approved", "department_id", req.DepartmentID, "date", date.Format(validator.DateLayout), "count", count)
	return summary.ApproveBulkResponse{
		Date:         date.Format(validator.DateLayout),
		DepartmentID: req.DepartmentID,
		Approved:     count,
	}, nil
}
