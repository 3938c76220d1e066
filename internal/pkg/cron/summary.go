package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/summary"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/validator"
)

// SummaryJobs regenerates the previous day's attendance summaries once a day
type SummaryJobs struct {
	summaryService summary.SummaryService
	departmentRepo employee.DepartmentRepository
	hour           int
	now            func() time.Time

	mu      sync.Mutex
	lastRun time.Time
}

func NewSummaryJobs(summaryService summary.SummaryService, departmentRepo employee.DepartmentRepository, hour int) *SummaryJobs {
	return &SummaryJobs{
		summaryService: summaryService,
		departmentRepo: departmentRepo,
		hour:           hour,
		now:            time.Now,
	}
}

func (j *SummaryJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("generate_daily_summaries", 1*time.Hour, j.GenerateDailySummaries)
}

// GenerateDailySummaries runs during the configured UTC hour, at most once per day
func (j *SummaryJobs) GenerateDailySummaries(ctx context.Context) error {
	now := j.now().UTC()
	if now.Hour() != j.hour {
		return nil
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	j.mu.Lock()
	defer j.mu.Unlock()
	if j.lastRun.Equal(today) {
		return nil
	}

	yesterday := today.AddDate(0, 0, -1)
	if err := j.GenerateFor(ctx, yesterday); err != nil {
		return err
	}
	j.lastRun = today
	return nil
}

// GenerateFor generates summaries of every department for date. A failing
// department does not stop the others.
func (j *SummaryJobs) GenerateFor(ctx context.Context, date time.Time) error {
	departments, err := j.departmentRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list departments: %w", err)
	}

	day := date.Format(validator.DateLayout)
	slog.Info("cron: generating attendance summaries", "date", day, "departments", len(departments))

	var errs []error
	generated := 0
	for _, dept := range departments {
		resp, err := j.summaryService.Generate(ctx, summary.DepartmentDayRequest{Date: day, DepartmentID: dept.ID})
		if err != nil {
			slog.Error("cron: summary generation failed", "department_id", dept.ID, "date", day, "error", err)
			errs = append(errs, fmt.Errorf("department %s: %w", dept.ID, err))
			continue
		}
		generated += resp.Generated
	}

	slog.Info("cron: attendance summaries generated", "date", day, "generated", generated, "failed_departments", len(errs))
	return errors.Join(errs...)
}
