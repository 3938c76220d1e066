package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

// ListApprovedCovering implements leave.LeaveRepository.
func (l *leaveRepositoryImpl) ListApprovedCovering(ctx context.Context, departmentID string, date time.Time) ([]leave.Leave, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT lv.id, lv.employee_id, lv.from_date, lv.to_date, lv.reason, lv.status, lv.created_at
		FROM leaves lv
		JOIN employees e ON e.id = lv.employee_id
		WHERE e.department_id = $1
		  AND lv.status = $2
		  AND lv.from_date <= $3
		  AND lv.to_date >= $3
		ORDER BY lv.employee_id, lv.from_date, lv.id
	`

	rows, err := q.Query(ctx, query, departmentID, leave.StatusApproved, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave: %w", err)
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		var lv leave.Leave
		err := rows.Scan(&lv.ID, &lv.EmployeeID, &lv.FromDate, &lv.ToDate, &lv.Reason, &lv.Status, &lv.CreatedAt)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, lv)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return leaves, nil
}
