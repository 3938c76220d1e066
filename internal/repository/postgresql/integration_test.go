package postgresql

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/summary"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/user"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/database"
	"github.com/cmlabs-hris/hr-attendance-go/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

// TestMain connects to TEST_DATABASE_URL and applies migrations. Without it
// the integration tests are skipped.
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		os.Exit(m.Run())
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolOptions{MaxConns: 4, MinConns: 1})
	if err != nil {
		panic("Failed to connect to test database: " + err.Error())
	}
	if err := migrations.Up(ctx, db); err != nil {
		panic("Failed to migrate test database: " + err.Error())
	}
	testDB = db

	code := m.Run()
	db.Close()
	os.Exit(code)
}

// txContext returns a context bound to a transaction that is rolled back when
// the test ends, so every test sees a clean database.
func txContext(t *testing.T) context.Context {
	t.Helper()
	if testDB == nil {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	tx, err := testDB.BeginTx(ctx)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = tx.Rollback(ctx)
	})
	return context.WithValue(ctx, txKey{}, tx)
}

func seedEmployee(t *testing.T, ctx context.Context, departmentName, firstName string) (departmentID, employeeID string) {
	t.Helper()
	q := GetQuerier(ctx, testDB)

	err := q.QueryRow(ctx,
		`INSERT INTO departments (name) VALUES ($1)
		 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id`, departmentName).Scan(&departmentID)
	require.NoError(t, err)

	err = q.QueryRow(ctx,
		`INSERT INTO employees (first_name, department_id) VALUES ($1, $2) RETURNING id`,
		firstName, departmentID).Scan(&employeeID)
	require.NoError(t, err)
	return departmentID, employeeID
}

func TestUserRepository_CreateAndRoles(t *testing.T) {
	ctx := txContext(t)
	repo := NewUserRepository(testDB)

	created, err := repo.Create(ctx, user.User{Email: "hr.lead@example.com", PasswordHash: "hash"})
	require.NoError(t, err)
	require.NoError(t, repo.AssignRoles(ctx, created.ID, []user.Role{user.RoleHR, user.RoleDepartmentHead}))

	found, err := repo.GetByEmail(ctx, "HR.Lead@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, []user.Role{user.RoleHR, user.RoleDepartmentHead}, found.Roles)
	assert.Nil(t, found.EmployeeID)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepository_UnknownRole(t *testing.T) {
	ctx := txContext(t)
	repo := NewUserRepository(testDB)

	created, err := repo.Create(ctx, user.User{Email: "someone@example.com", PasswordHash: "hash"})
	require.NoError(t, err)

	err = repo.AssignRoles(ctx, created.ID, []user.Role{"Janitor"})
	assert.ErrorIs(t, err, user.ErrUnknownRole)
}

func TestHolidayRepository(t *testing.T) {
	ctx := txContext(t)
	repo := NewHolidayRepository(testDB)
	date := time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC)

	created, err := repo.Create(ctx, holiday.Holiday{Date: date, Name: "New Year"})
	require.NoError(t, err)
	assert.Equal(t, "New Year", created.Name)

	found, err := repo.GetByDate(ctx, date)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)

	upserted, err := repo.Upsert(ctx, holiday.Holiday{Date: date, Name: "New Year's Day"})
	require.NoError(t, err)
	assert.Equal(t, "New Year's Day", upserted.Name)

	list, err := repo.ListByYear(ctx, 2031)
	require.NoError(t, err)
	require.Len(t, list, 1)

	missing, err := repo.GetByDate(ctx, date.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Nil(t, missing)

	// Unique violation aborts the transaction, so it runs last
	_, err = repo.Create(ctx, holiday.Holiday{Date: date, Name: "Duplicate"})
	assert.ErrorIs(t, err, holiday.ErrHolidayExists)
}

func TestSummaryRepository_UpsertAndApprove(t *testing.T) {
	ctx := txContext(t)
	repo := NewSummaryRepository(testDB)
	departmentID, employeeID := seedEmployee(t, ctx, "Integration QA", "Dina")
	date := time.Date(2031, 3, 3, 0, 0, 0, 0, time.UTC)
	hours := 7.5

	first, err := repo.Upsert(ctx, summary.Summary{
		EmployeeID:     employeeID,
		Date:           date,
		Status:         summary.StatusPresent,
		TotalWorkHours: &hours,
		LateArrival:    true,
		DepartmentID:   departmentID,
	})
	require.NoError(t, err)

	second, err := repo.Upsert(ctx, summary.Summary{
		EmployeeID:   employeeID,
		Date:         date,
		Status:       summary.StatusAbsent,
		DepartmentID: departmentID,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "upsert must keep one row per employee and day")
	assert.Equal(t, summary.StatusAbsent, second.Status)
	assert.Nil(t, second.TotalWorkHours)

	list, err := repo.ListByDepartmentAndDate(ctx, departmentID, date)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].EmployeeFirstName)
	assert.Equal(t, "Dina", *list[0].EmployeeFirstName)

	approved, err := repo.ApproveByDepartmentAndDate(ctx, departmentID, date)
	require.NoError(t, err)
	assert.Equal(t, int64(1), approved)

	stored, err := repo.GetByEmployeeAndDate(ctx, employeeID, date)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, summary.StatusApproved, stored.Status)

	_, err = repo.Approve(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, summary.ErrSummaryNotFound)
}
