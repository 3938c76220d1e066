package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/schedule"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/database"
)

type shiftAssignmentRepositoryImpl struct {
	db *database.DB
}

func NewShiftAssignmentRepository(db *database.DB) schedule.ShiftAssignmentRepository {
	return &shiftAssignmentRepositoryImpl{db: db}
}

// ListActiveByDepartment implements schedule.ShiftAssignmentRepository.
func (s *shiftAssignmentRepositoryImpl) ListActiveByDepartment(ctx context.Context, departmentID string, date time.Time) ([]schedule.ShiftAssignment, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT sa.id, sa.employee_id, sa.shift_id, sa.effective_from, sa.effective_to, sa.created_at,
			   sh.id, sh.name,
			   to_char(sh.start_time, 'HH24:MI:SS'), to_char(sh.end_time, 'HH24:MI:SS')
		FROM shift_assignments sa
		JOIN employees e ON e.id = sa.employee_id
		JOIN shifts sh ON sh.id = sa.shift_id
		WHERE e.department_id = $1
		  AND sa.effective_from <= $2
		  AND (sa.effective_to IS NULL OR sa.effective_to >= $2)
		ORDER BY sa.employee_id, sa.effective_from DESC, sa.created_at DESC
	`

	rows, err := q.Query(ctx, query, departmentID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift assignments: %w", err)
	}
	defer rows.Close()

	var assignments []schedule.ShiftAssignment
	for rows.Next() {
		var a schedule.ShiftAssignment
		var start, end *string
		err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.ShiftID, &a.EffectiveFrom, &a.EffectiveTo, &a.CreatedAt,
			&a.Shift.ID, &a.Shift.Name, &start, &end,
		)
		if err != nil {
			return nil, err
		}
		if a.Shift.StartTime, err = parseTimeOfDay(start); err != nil {
			return nil, err
		}
		if a.Shift.EndTime, err = parseTimeOfDay(end); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

func parseTimeOfDay(value *string) (*schedule.TimeOfDay, error) {
	if value == nil {
		return nil, nil
	}
	t, err := schedule.ParseTimeOfDay(*value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
