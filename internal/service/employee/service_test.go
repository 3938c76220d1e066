package employee

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/schedule"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	deptID   = "11111111-1111-4111-8111-111111111111"
	empAlice = "aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaaa"
	empBob   = "bbbbbbbb-bbbb-4bbb-8bbb-bbbbbbbbbbbb"
)

type fakeEmployees struct {
	list []employee.Employee
	err  error
}

func (f *fakeEmployees) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployees) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployees) ListByDepartment(ctx context.Context, departmentID string) ([]employee.Employee, error) {
	return f.list, f.err
}

type fakeHolidays struct {
	holiday *holiday.Holiday
}

func (f *fakeHolidays) GetByDate(ctx context.Context, date time.Time) (*holiday.Holiday, error) {
	return f.holiday, nil
}

func (f *fakeHolidays) ListByYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	return nil, nil
}

func (f *fakeHolidays) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	return h, nil
}

func (f *fakeHolidays) Upsert(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	return h, nil
}

func (f *fakeHolidays) Delete(ctx context.Context, id string) error {
	return nil
}

type fakeAssignments struct {
	list []schedule.ShiftAssignment
}

func (f *fakeAssignments) ListActiveByDepartment(ctx context.Context, departmentID string, date time.Time) ([]schedule.ShiftAssignment, error) {
	return f.list, nil
}

func newTestService(h *holiday.Holiday) (employee.EmployeeService, *fakeEmployees) {
	start := schedule.TimeOfDay{Hour: 9}
	end := schedule.TimeOfDay{Hour: 17, Minute: 30}
	employees := &fakeEmployees{list: []employee.Employee{
		{ID: empAlice, FirstName: "Alice", LastName: "Tan", DepartmentID: deptID, EmploymentDate: time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC)},
		{ID: empBob, FirstName: "Bob", DepartmentID: deptID},
	}}
	assignments := &fakeAssignments{list: []schedule.ShiftAssignment{{
		EmployeeID: empAlice,
		ShiftID:    "shift-1",
		Shift:      schedule.Shift{ID: "shift-1", Name: "Day", StartTime: &start, EndTime: &end},
	}}}
	return NewEmployeeService(employees, &fakeHolidays{holiday: h}, assignments), employees
}

func TestListByDepartment(t *testing.T) {
	svc, _ := newTestService(nil)

	list, err := svc.ListByDepartment(context.Background(), deptID)

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Alice Tan", list[0].FullName)
	assert.Equal(t, "2023-01-09", list[0].EmploymentDate)
	assert.Equal(t, "Bob", list[1].FullName)
}

func TestListByDepartment_Errors(t *testing.T) {
	svc, employees := newTestService(nil)

	_, err := svc.ListByDepartment(context.Background(), "sales")
	var verrs validator.ValidationErrors
	assert.True(t, errors.As(err, &verrs))

	boom := errors.New("connection refused")
	employees.err = boom
	_, err = svc.ListByDepartment(context.Background(), deptID)
	assert.ErrorIs(t, err, boom)
}

func TestListScheduled(t *testing.T) {
	ctx := context.Background()

	t.Run("working day lists assigned employees only", func(t *testing.T) {
		svc, _ := newTestService(nil)
		resp, err := svc.ListScheduled(ctx, employee.ScheduledRosterRequest{Date: "2024-06-04", DepartmentID: deptID})
		require.NoError(t, err)
		assert.Equal(t, string(holiday.DayWorking), resp.DayType)
		assert.Empty(t, resp.Message)
		require.Len(t, resp.Employees, 1)
		assert.Equal(t, empAlice, resp.Employees[0].ID)
		assert.Equal(t, "Day", resp.Employees[0].ShiftName)
		assert.Equal(t, "09:00:00", resp.Employees[0].ShiftStartTime)
		assert.Equal(t, "17:30:00", resp.Employees[0].ShiftEndTime)
	})

	t.Run("holiday short circuits", func(t *testing.T) {
		svc, _ := newTestService(&holiday.Holiday{Name: "Founders Day"})
		resp, err := svc.ListScheduled(ctx, employee.ScheduledRosterRequest{Date: "2024-06-04", DepartmentID: deptID})
		require.NoError(t, err)
		assert.Equal(t, string(holiday.DayHoliday), resp.DayType)
		assert.Contains(t, resp.Message, "Founders Day")
		assert.NotNil(t, resp.Employees)
		assert.Empty(t, resp.Employees)
	})

	t.Run("weekend short circuits", func(t *testing.T) {
		svc, _ := newTestService(nil)
		resp, err := svc.ListScheduled(ctx, employee.ScheduledRosterRequest{Date: "2024-06-08", DepartmentID: deptID})
		require.NoError(t, err)
		assert.Equal(t, string(holiday.DayWeekend), resp.DayType)
		assert.Contains(t, resp.Message, "weekend")
		assert.Empty(t, resp.Employees)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc, _ := newTestService(nil)
		_, err := svc.ListScheduled(ctx, employee.ScheduledRosterRequest{})
		var verrs validator.ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.Len(t, verrs, 2)
	})
}
