package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/user"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// Roles come back in position order so the first one is the primary role
const userSelect = `
	SELECT u.id, u.email, u.password_hash, u.created_at, u.updated_at,
		   e.id, e.department_id,
		   COALESCE(
			   ARRAY(
				   SELECT r.name
				   FROM user_roles ur
				   JOIN roles r ON r.id = ur.role_id
				   WHERE ur.user_id = u.id
				   ORDER BY ur.position, r.id
			   ),
			   '{}'
		   )
	FROM users u
	LEFT JOIN employees e ON e.user_id = u.id
`

func scanUser(row pgx.Row) (user.User, error) {
	var found user.User
	var roles []string
	err := row.Scan(
		&found.ID,
		&found.Email,
		&found.PasswordHash,
		&found.CreatedAt,
		&found.UpdatedAt,
		&found.EmployeeID,
		&found.DepartmentID,
		&roles,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}
	for _, r := range roles {
		found.Roles = append(found.Roles, user.Role(r))
	}
	return found, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)
	return scanUser(q.QueryRow(ctx, userSelect+` WHERE u.id = $1`, id))
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)
	return scanUser(q.QueryRow(ctx, userSelect+` WHERE LOWER(u.email) = LOWER($1)`, email))
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (id, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, email, password_hash, created_at, updated_at
	`

	if newUser.ID == "" {
		newUser.ID = uuid.New().String()
	}

	var created user.User
	err := q.QueryRow(ctx, query, newUser.ID, newUser.Email, newUser.PasswordHash).Scan(
		&created.ID,
		&created.Email,
		&created.PasswordHash,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return user.User{}, user.ErrUserEmailExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return created, nil
}

// AssignRoles implements user.UserRepository.
func (r *userRepositoryImpl) AssignRoles(ctx context.Context, userID string, roles []user.Role) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO user_roles (user_id, role_id, position)
		SELECT $1, r.id, $3
		FROM roles r
		WHERE r.name = $2
		ON CONFLICT (user_id, role_id) DO NOTHING
	`

	for i, role := range roles {
		tag, err := q.Exec(ctx, query, userID, string(role), i)
		if err != nil {
			return fmt.Errorf("failed to assign role %s: %w", role, err)
		}
		if tag.RowsAffected() == 0 {
			var exists bool
			if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM roles WHERE name = $1)`, string(role)).Scan(&exists); err != nil {
				return fmt.Errorf("failed to check role %s: %w", role, err)
			}
			if !exists {
				return fmt.Errorf("%w: %s", user.ErrUnknownRole, role)
			}
		}
	}

	return nil
}

// LinkEmployee implements user.UserRepository.
func (r *userRepositoryImpl) LinkEmployee(ctx context.Context, userID, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE employees SET user_id = $1, updated_at = NOW() WHERE id = $2`, userID, employeeID)
	if err != nil {
		return fmt.Errorf("failed to link employee %s: %w", employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// UpdatePassword implements user.UserRepository.
func (r *userRepositoryImpl) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`, passwordHash, userID)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
