package intern

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/auth"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/intern"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/summary"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/validator"
)

type InternServiceImpl struct {
	employeeRepo  employee.EmployeeRepository
	logRepo       attendance.LogRepository
	profileRepo   intern.ProfileRepository
	reviewRepo    intern.ReviewRepository
	complaintRepo intern.ComplaintRepository
}

func NewInternService(
	employeeRepo employee.EmployeeRepository,
	logRepo attendance.LogRepository,
	profileRepo intern.ProfileRepository,
	reviewRepo intern.ReviewRepository,
	complaintRepo intern.ComplaintRepository,
) intern.InternService {
	return &InternServiceImpl{
		employeeRepo:  employeeRepo,
		logRepo:       logRepo,
		profileRepo:   profileRepo,
		reviewRepo:    reviewRepo,
		complaintRepo: complaintRepo,
	}
}

// resolveEmployee finds the employee linked to the caller's account
func (s *InternServiceImpl) resolveEmployee(ctx context.Context, caller auth.Identity) (employee.Employee, error) {
	emp, err := s.employeeRepo.GetByUserID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, intern.ErrInternNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

// Dashboard implements intern.InternService.
func (s *InternServiceImpl) Dashboard(ctx context.Context, caller auth.Identity) (intern.DashboardResponse, error) {
	emp, err := s.resolveEmployee(ctx, caller)
	if err != nil {
		return intern.DashboardResponse{}, err
	}

	logs, err := s.logRepo.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return intern.DashboardResponse{}, fmt.Errorf("failed to list attendance logs: %w", err)
	}

	resp := intern.DashboardResponse{
		Message:    intern.WelcomeMessage(emp.FirstName),
		LastStatus: intern.NoRecordsStatus,
	}
	for _, l := range logs {
		switch l.Status {
		case summary.StatusPresent:
			resp.PresentDays++
		case summary.StatusAbsent:
			resp.AbsentDays++
		}
	}
	if len(logs) > 0 && logs[0].Status != "" {
		resp.LastStatus = logs[0].Status
	}
	return resp, nil
}

// AttendanceHistory implements intern.InternService.
func (s *InternServiceImpl) AttendanceHistory(ctx context.Context, caller auth.Identity) (intern.HistoryResponse, error) {
	emp, err := s.resolveEmployee(ctx, caller)
	if err != nil {
		return intern.HistoryResponse{}, err
	}

	logs, err := s.logRepo.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return intern.HistoryResponse{}, fmt.Errorf("failed to list attendance logs: %w", err)
	}

	history := make([]intern.HistoryItem, 0, len(logs))
	for _, l := range logs {
		history = append(history, intern.HistoryItem{
			Date:   l.Date.Format(validator.DateLayout),
			Status: l.Status,
		})
	}
	return intern.HistoryResponse{History: history}, nil
}

// Profile implements intern.InternService.
func (s *InternServiceImpl) Profile(ctx context.Context, caller auth.Identity) (intern.ProfileResponse, error) {
	emp, err := s.resolveEmployee(ctx, caller)
	if err != nil {
		return intern.ProfileResponse{}, err
	}

	profile, err := s.profileRepo.GetByEmployeeID(ctx, emp.ID)
	if err != nil {
		if errors.Is(err, intern.ErrInternNotFound) {
			return intern.ProfileResponse{}, err
		}
		return intern.ProfileResponse{}, fmt.Errorf("failed to get profile: %w", err)
	}
	return intern.NewProfileResponse(profile), nil
}

// PerformanceReviews implements intern.InternService.
func (s *InternServiceImpl) PerformanceReviews(ctx context.Context, caller auth.Identity) ([]intern.ReviewResponse, error) {
	emp, err := s.resolveEmployee(ctx, caller)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list performance reviews: %w", err)
	}

	responses := make([]intern.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		responses = append(responses, intern.NewReviewResponse(r))
	}
	return responses, nil
}

// SubmitComplaint implements intern.InternService.
func (s *InternServiceImpl) SubmitComplaint(ctx context.Context, caller auth.Identity, req intern.CreateComplaintRequest) (intern.ComplaintResponse, error) {
	if err := req.Validate(); err != nil {
		return intern.ComplaintResponse{}, err
	}

	emp, err := s.resolveEmployee(ctx, caller)
	if err != nil {
		return intern.ComplaintResponse{}, err
	}

	created, err := s.complaintRepo.Create(ctx, intern.Complaint{
		EmployeeID:  emp.ID,
		Subject:     strings.TrimSpace(req.Subject),
		Description: strings.TrimSpace(req.Description),
		Status:      intern.ComplaintStatusOpen,
	})
	if err != nil {
		return intern.ComplaintResponse{}, fmt.Errorf("failed to create complaint: %w", err)
	}

	slog.Info("complaint submitted", "complaint_id", created.ID, "employee_id", emp.ID)
	return intern.NewComplaintResponse(created), nil
}
