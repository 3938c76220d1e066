package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceLogRepository struct {
	db *database.DB
}

func NewAttendanceLogRepository(db *database.DB) attendance.LogRepository {
	return &attendanceLogRepository{db: db}
}

const logColumns = `l.id, l.employee_id, l.date, l.session_id, l.actual_clock_in, l.actual_clock_out, l.status, l.created_at`

func scanLog(row pgx.Row) (attendance.Log, error) {
	var l attendance.Log
	err := row.Scan(&l.ID, &l.EmployeeID, &l.Date, &l.SessionID, &l.ActualClockIn, &l.ActualClockOut, &l.Status, &l.CreatedAt)
	return l, err
}

// Create implements attendance.LogRepository.
func (a *attendanceLogRepository) Create(ctx context.Context, log attendance.Log) (attendance.Log, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_logs AS l (id, employee_id, date, session_id, actual_clock_in, actual_clock_out, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + logColumns

	created, err := scanLog(q.QueryRow(ctx, query,
		uuid.New().String(), log.EmployeeID, log.Date, log.SessionID,
		log.ActualClockIn, log.ActualClockOut, log.Status,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return attendance.Log{}, attendance.NewDuplicateLogError(log.Key())
		}
		if isForeignKeyViolation(err) {
			return attendance.Log{}, attendance.ErrSessionNotFound
		}
		return attendance.Log{}, fmt.Errorf("failed to create attendance log: %w", err)
	}
	return created, nil
}

// Exists implements attendance.LogRepository.
func (a *attendanceLogRepository) Exists(ctx context.Context, key attendance.Key) (bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM attendance_logs
			WHERE employee_id = $1 AND date = $2 AND session_id = $3
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, key.EmployeeID, key.Date, key.SessionID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check attendance log: %w", err)
	}
	return exists, nil
}

// List implements attendance.LogRepository.
func (a *attendanceLogRepository) List(ctx context.Context, filter attendance.LogFilter) ([]attendance.Log, int64, error) {
	q := GetQuerier(ctx, a.db)

	// Build WHERE clause
	baseWhere := "1 = 1"
	args := []interface{}{}
	argIdx := 1

	if filter.DepartmentID != nil && *filter.DepartmentID != "" {
		baseWhere += fmt.Sprintf(" AND e.department_id = $%d", argIdx)
		args = append(args, *filter.DepartmentID)
		argIdx++
	}

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND l.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	// Date range filters
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND l.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND l.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	countQuery := `
		SELECT COUNT(*)
		FROM attendance_logs l
		JOIN employees e ON e.id = l.employee_id
		WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance logs: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s,
			e.id, e.first_name, e.last_name, e.department_id,
			s.id, s.session_number,
			to_char(s.expected_clock_in, 'HH24:MI:SS'), to_char(s.expected_clock_out, 'HH24:MI:SS')
		FROM attendance_logs l
		JOIN employees e ON e.id = l.employee_id
		LEFT JOIN attendance_sessions s ON s.id = l.session_id
		WHERE %s
		ORDER BY l.date DESC, l.created_at DESC
		LIMIT $%d OFFSET $%d
	`, logColumns, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendance logs: %w", err)
	}
	defer rows.Close()

	var logs []attendance.Log
	for rows.Next() {
		var l attendance.Log
		var emp attendance.EmployeeRef
		var sessionID *string
		var sessionNumber *int
		var expectedIn, expectedOut *string
		err := rows.Scan(
			&l.ID, &l.EmployeeID, &l.Date, &l.SessionID, &l.ActualClockIn, &l.ActualClockOut, &l.Status, &l.CreatedAt,
			&emp.ID, &emp.FirstName, &emp.LastName, &emp.DepartmentID,
			&sessionID, &sessionNumber, &expectedIn, &expectedOut,
		)
		if err != nil {
			return nil, 0, err
		}
		l.Employee = &emp
		if sessionID != nil {
			l.Session = &attendance.Session{ID: *sessionID, ExpectedClockIn: expectedIn, ExpectedClockOut: expectedOut}
			if sessionNumber != nil {
				l.Session.SessionNumber = *sessionNumber
			}
		}
		logs = append(logs, l)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

// ListByDepartmentAndDate implements attendance.LogRepository.
func (a *attendanceLogRepository) ListByDepartmentAndDate(ctx context.Context, departmentID string, date time.Time) ([]attendance.Log, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + logColumns + `
		FROM attendance_logs l
		JOIN employees e ON e.id = l.employee_id
		LEFT JOIN attendance_sessions s ON s.id = l.session_id
		WHERE e.department_id = $1 AND l.date = $2
		ORDER BY l.employee_id, l.actual_clock_in ASC NULLS LAST, s.session_number, l.created_at
	`

	return a.queryLogs(ctx, q, query, departmentID, date)
}

// ListByEmployee implements attendance.LogRepository.
func (a *attendanceLogRepository) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Log, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + logColumns + `
		FROM attendance_logs l
		WHERE l.employee_id = $1
		ORDER BY l.date DESC, l.created_at DESC
	`

	return a.queryLogs(ctx, q, query, employeeID)
}

func (a *attendanceLogRepository) queryLogs(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]attendance.Log, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance logs: %w", err)
	}
	defer rows.Close()

	var logs []attendance.Log
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}
