package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/intern"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type complaintRepositoryImpl struct {
	db *database.DB
}

func NewComplaintRepository(db *database.DB) intern.ComplaintRepository {
	return &complaintRepositoryImpl{db: db}
}

// Create implements intern.ComplaintRepository.
func (c *complaintRepositoryImpl) Create(ctx context.Context, complaint intern.Complaint) (intern.Complaint, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO complaints (id, employee_id, subject, description, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, employee_id, subject, description, status, created_at
	`

	var created intern.Complaint
	err := q.QueryRow(ctx, query,
		uuid.New().String(), complaint.EmployeeID, complaint.Subject, complaint.Description, complaint.Status,
	).Scan(&created.ID, &created.EmployeeID, &created.Subject, &created.Description, &created.Status, &created.CreatedAt)
	if err != nil {
		return intern.Complaint{}, fmt.Errorf("failed to create complaint: %w", err)
	}
	return created, nil
}

type reviewRepositoryImpl struct {
	db *database.DB
}

func NewReviewRepository(db *database.DB) intern.ReviewRepository {
	return &reviewRepositoryImpl{db: db}
}

// ListByEmployee implements intern.ReviewRepository.
func (r *reviewRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]intern.PerformanceReview, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, reviewer_name, review_date, rating, comments, created_at
		FROM performance_reviews
		WHERE employee_id = $1
		ORDER BY review_date DESC, created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list performance reviews: %w", err)
	}
	defer rows.Close()

	var reviews []intern.PerformanceReview
	for rows.Next() {
		var rv intern.PerformanceReview
		err := rows.Scan(&rv.ID, &rv.EmployeeID, &rv.ReviewerName, &rv.ReviewDate, &rv.Rating, &rv.Comments, &rv.CreatedAt)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}

type profileRepositoryImpl struct {
	db *database.DB
}

func NewProfileRepository(db *database.DB) intern.ProfileRepository {
	return &profileRepositoryImpl{db: db}
}

// GetByEmployeeID implements intern.ProfileRepository.
func (p *profileRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (intern.Profile, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT e.id, e.first_name, e.last_name, COALESCE(u.email, ''), e.phone, e.address,
			   d.name, e.employment_date,
			   COALESCE(
				   ARRAY(
					   SELECT r.name
					   FROM user_roles ur
					   JOIN roles r ON r.id = ur.role_id
					   WHERE ur.user_id = e.user_id
					   ORDER BY ur.position, r.id
				   ),
				   '{}'
			   )
		FROM employees e
		LEFT JOIN users u ON u.id = e.user_id
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE e.id = $1
	`

	var profile intern.Profile
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&profile.EmployeeID, &profile.FirstName, &profile.LastName, &profile.Email,
		&profile.Phone, &profile.Address, &profile.DepartmentName, &profile.EmploymentDate,
		&profile.Roles,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return intern.Profile{}, intern.ErrInternNotFound
		}
		return intern.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}
