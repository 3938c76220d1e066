package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDepartments struct {
	list []employee.Department
}

func (f *fakeDepartments) GetByID(ctx context.Context, id string) (employee.Department, error) {
	return employee.Department{}, employee.ErrDepartmentNotFound
}

func (f *fakeDepartments) List(ctx context.Context) ([]employee.Department, error) {
	return f.list, nil
}

type fakeSummaryService struct {
	calls   []summary.DepartmentDayRequest
	failFor string
}

func (f *fakeSummaryService) Generate(ctx context.Context, req summary.DepartmentDayRequest) (summary.GenerateResponse, error) {
	f.calls = append(f.calls, req)
	if req.DepartmentID == f.failFor {
		return summary.GenerateResponse{}, errors.New("store unavailable")
	}
	return summary.GenerateResponse{Generated: 3}, nil
}

func (f *fakeSummaryService) ListByDepartment(ctx context.Context, req summary.DepartmentDayRequest) ([]summary.SummaryResponse, error) {
	return nil, nil
}

func (f *fakeSummaryService) ApproveSingle(ctx context.Context, id string) (summary.SummaryResponse, error) {
	return summary.SummaryResponse{}, nil
}

func (f *fakeSummaryService) ApproveBulk(ctx context.Context, req summary.DepartmentDayRequest) (summary.ApproveBulkResponse, error) {
	return summary.ApproveBulkResponse{}, nil
}

func (f *fakeSummaryService) Export(ctx context.Context, req summary.DepartmentDayRequest) (summary.ExportFile, error) {
	return summary.ExportFile{}, nil
}

func newJobs(svc *fakeSummaryService, at time.Time) *SummaryJobs {
	depts := &fakeDepartments{list: []employee.Department{{ID: "dept-a"}, {ID: "dept-b"}}}
	j := NewSummaryJobs(svc, depts, 1)
	j.now = func() time.Time { return at }
	return j
}

func TestGenerateDailySummaries_OutsideHour(t *testing.T) {
	svc := &fakeSummaryService{}
	j := newJobs(svc, time.Date(2024, 6, 5, 14, 0, 0, 0, time.UTC))

	require.NoError(t, j.GenerateDailySummaries(context.Background()))
	assert.Empty(t, svc.calls)
}

func TestGenerateDailySummaries_OncePerDay(t *testing.T) {
	svc := &fakeSummaryService{}
	j := newJobs(svc, time.Date(2024, 6, 5, 1, 20, 0, 0, time.UTC))
	ctx := context.Background()

	require.NoError(t, j.GenerateDailySummaries(ctx))
	require.NoError(t, j.GenerateDailySummaries(ctx))

	require.Len(t, svc.calls, 2)
	assert.Equal(t, "2024-06-04", svc.calls[0].Date)
	assert.Equal(t, "dept-a", svc.calls[0].DepartmentID)
	assert.Equal(t, "dept-b", svc.calls[1].DepartmentID)
}

func TestGenerateDailySummaries_RetriesAfterFailure(t *testing.T) {
	svc := &fakeSummaryService{failFor: "dept-a"}
	j := newJobs(svc, time.Date(2024, 6, 5, 1, 0, 0, 0, time.UTC))
	ctx := context.Background()

	err := j.GenerateDailySummaries(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dept-a")
	// the healthy department still ran
	assert.Len(t, svc.calls, 2)

	svc.failFor = ""
	require.NoError(t, j.GenerateDailySummaries(ctx))
	assert.Len(t, svc.calls, 4)
}

func TestScheduler_RunOnce(t *testing.T) {
	s := NewScheduler()
	runs := 0
	s.AddJob("ok", time.Hour, func(ctx context.Context) error { runs++; return nil })
	s.AddJob("broken", time.Hour, func(ctx context.Context) error { runs++; return errors.New("nope") })

	err := s.RunOnce(context.Background())

	assert.Equal(t, 2, runs)
	assert.EqualError(t, err, "nope")
}

func TestScheduler_StartStop(t *testing.T) {
	s := NewScheduler()
	started := make(chan struct{}, 1)
	s.AddJob("tick", time.Hour, func(ctx context.Context) error {
		select {
		case started <- struct{}{}:
		default:
		}
		return nil
	})

	s.Start(context.Background())
	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("job did not run on start")
	}
	s.Stop()
}
