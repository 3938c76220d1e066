package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/summary"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type summaryRepositoryImpl struct {
	db *database.DB
}

func NewSummaryRepository(db *database.DB) summary.SummaryRepository {
	return &summaryRepositoryImpl{db: db}
}

const summaryColumns = `
	s.id, s.employee_id, s.date, s.status, s.total_work_hours,
	s.late_arrival, s.early_departure, s.unplanned_absence, s.remarks,
	s.department_id, s.created_at, s.updated_at
`

func scanSummary(row pgx.Row, dest *summary.Summary, extra ...interface{}) error {
	targets := []interface{}{
		&dest.ID, &dest.EmployeeID, &dest.Date, &dest.Status, &dest.TotalWorkHours,
		&dest.LateArrival, &dest.EarlyDeparture, &dest.UnplannedAbsence, &dest.Remarks,
		&dest.DepartmentID, &dest.CreatedAt, &dest.UpdatedAt,
	}
	return row.Scan(append(targets, extra...)...)
}

// Upsert implements summary.SummaryRepository.
func (r *summaryRepositoryImpl) Upsert(ctx context.Context, s summary.Summary) (summary.Summary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_summaries AS s (
			id, employee_id, date, status, total_work_hours,
			late_arrival, early_departure, unplanned_absence, remarks, department_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			status            = EXCLUDED.status,
			total_work_hours  = EXCLUDED.total_work_hours,
			late_arrival      = EXCLUDED.late_arrival,
			early_departure   = EXCLUDED.early_departure,
			unplanned_absence = EXCLUDED.unplanned_absence,
			remarks           = EXCLUDED.remarks,
			department_id     = EXCLUDED.department_id,
			updated_at        = NOW()
		RETURNING ` + summaryColumns

	var saved summary.Summary
	err := scanSummary(q.QueryRow(ctx, query,
		uuid.New().String(), s.EmployeeID, s.Date, s.Status, s.TotalWorkHours,
		s.LateArrival, s.EarlyDeparture, s.UnplannedAbsence, s.Remarks, s.DepartmentID,
	), &saved)
	if err != nil {
		return summary.Summary{}, fmt.Errorf("failed to upsert summary for employee %s: %w", s.EmployeeID, err)
	}
	return saved, nil
}

// GetByID implements summary.SummaryRepository.
func (r *summaryRepositoryImpl) GetByID(ctx context.Context, id string) (summary.Summary, error) {
	q := GetQuerier(ctx, r.db)

	var found summary.Summary
	err := scanSummary(q.QueryRow(ctx, `SELECT `+summaryColumns+` FROM attendance_summaries s WHERE s.id = $1`, id), &found)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return summary.Summary{}, summary.ErrSummaryNotFound
		}
		return summary.Summary{}, fmt.Errorf("failed to get summary %s: %w", id, err)
	}
	return found, nil
}

// GetByEmployeeAndDate implements summary.SummaryRepository.
func (r *summaryRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*summary.Summary, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + summaryColumns + ` FROM attendance_summaries s WHERE s.employee_id = $1 AND s.date = $2`

	var found summary.Summary
	if err := scanSummary(q.QueryRow(ctx, query, employeeID, date), &found); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get summary for employee %s: %w", employeeID, err)
	}
	return &found, nil
}

// ListByDepartmentAndDate implements summary.SummaryRepository.
func (r *summaryRepositoryImpl) ListByDepartmentAndDate(ctx context.Context, departmentID string, date time.Time) ([]summary.Summary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + summaryColumns + `, e.first_name, e.last_name
		FROM attendance_summaries s
		LEFT JOIN employees e ON e.id = s.employee_id
		WHERE s.department_id = $1 AND s.date = $2
		ORDER BY s.employee_id
	`

	rows, err := q.Query(ctx, query, departmentID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list summaries: %w", err)
	}
	defer rows.Close()

	var summaries []summary.Summary
	for rows.Next() {
		var s summary.Summary
		if err := scanSummary(rows, &s, &s.EmployeeFirstName, &s.EmployeeLastName); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}

// Approve implements summary.SummaryRepository.
func (r *summaryRepositoryImpl) Approve(ctx context.Context, id string) (summary.Summary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_summaries AS s
		SET status = $1, updated_at = NOW()
		WHERE s.id = $2
		RETURNING ` + summaryColumns

	var updated summary.Summary
	if err := scanSummary(q.QueryRow(ctx, query, summary.StatusApproved, id), &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return summary.Summary{}, summary.ErrSummaryNotFound
		}
		return summary.Summary{}, fmt.Errorf("failed to approve summary %s: %w", id, err)
	}
	return updated, nil
}

// ApproveByDepartmentAndDate implements summary.SummaryRepository.
func (r *summaryRepositoryImpl) ApproveByDepartmentAndDate(ctx context.Context, departmentID string, date time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_summaries
		SET status = $1, updated_at = NOW()
		WHERE department_id = $2 AND date = $3
	`

	tag, err := q.Exec(ctx, query, summary.StatusApproved, departmentID, date)
	if err != nil {
		return 0, fmt.Errorf("failed to approve summaries: %w", err)
	}
	return tag.RowsAffected(), nil
}
