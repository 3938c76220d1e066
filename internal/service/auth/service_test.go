package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/auth"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/user"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAccessExp = "1h"
	testSecret    = "test-secret-key-for-jwt"
)

type fakeUserRepository struct {
	users map[string]user.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]user.User{}}
}

func (f *fakeUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	if _, err := f.GetByEmail(ctx, newUser.Email); err == nil {
		return user.User{}, user.ErrUserEmailExists
	}
	newUser.ID = "user-" + newUser.Email
	f.users[newUser.ID] = newUser
	return newUser, nil
}

func (f *fakeUserRepository) AssignRoles(ctx context.Context, userID string, roles []user.Role) error {
	u := f.users[userID]
	u.Roles = append(u.Roles, roles...)
	f.users[userID] = u
	return nil
}

func (f *fakeUserRepository) LinkEmployee(ctx context.Context, userID, employeeID string) error {
	u := f.users[userID]
	u.EmployeeID = &employeeID
	f.users[userID] = u
	return nil
}

func (f *fakeUserRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	u, ok := f.users[userID]
	if !ok {
		return user.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	f.users[userID] = u
	return nil
}

func runInline(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

func newTestService(t *testing.T) (auth.AuthService, *fakeUserRepository, jwt.Service) {
	t.Helper()
	repo := newFakeUserRepository()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	repo.users["user-1"] = user.User{
		ID:           "user-1",
		Email:        "intern@example.com",
		PasswordHash: string(hash),
		Roles:        []user.Role{user.RoleIntern},
	}
	jwtService := jwt.NewJWTService(testSecret, testAccessExp)
	return NewAuthService(repo, jwtService, runInline), repo, jwtService
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, _ := newTestService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{Email: "intern@example.com", Password: "password123"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Greater(t, resp.AccessTokenExpiresIn, int64(0))
	assert.Equal(t, []string{"Intern"}, resp.User.Roles)
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "intern@example.com", Password: "wrong-password"})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "nobody@example.com", Password: "password123"})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	svc, _, jwtService := newTestService(t)
	ctx := context.Background()

	resp, err := svc.Login(ctx, auth.LoginRequest{Email: "intern@example.com", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, resp.AccessToken))
	assert.True(t, jwtService.IsTokenRevoked(resp.AccessToken))

	assert.ErrorIs(t, svc.Logout(ctx, "not-a-token"), auth.ErrInvalidToken)
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("mismatch is a validation error", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		err := svc.ChangePassword(ctx, "user-1", auth.ChangePasswordRequest{
			CurrentPassword:    "password123",
			NewPassword:        "new-password-1",
			ConfirmNewPassword: "new-password-2",
		})
		var verrs validator.ValidationErrors
		assert.True(t, errors.As(err, &verrs))
	})

	t.Run("wrong current password", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		err := svc.ChangePassword(ctx, "user-1", auth.ChangePasswordRequest{
			CurrentPassword:    "not-it",
			NewPassword:        "new-password-1",
			ConfirmNewPassword: "new-password-1",
		})
		assert.ErrorIs(t, err, auth.ErrIncorrectPassword)
	})

	t.Run("stores a new bcrypt hash", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		err := svc.ChangePassword(ctx, "user-1", auth.ChangePasswordRequest{
			CurrentPassword:    "password123",
			NewPassword:        "new-password-1",
			ConfirmNewPassword: "new-password-1",
		})
		require.NoError(t, err)
		hash := repo.users["user-1"].PasswordHash
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("new-password-1")))
	})
}

func TestAuthService_CreateUser(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()
	employeeID := "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b"

	resp, err := svc.CreateUser(ctx, auth.CreateUserRequest{
		Email:      "head@example.com",
		Password:   "password123",
		Roles:      []string{"DepartmentHead"},
		EmployeeID: &employeeID,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"DepartmentHead"}, resp.Roles)
	require.NotNil(t, resp.EmployeeID)
	assert.Equal(t, employeeID, *resp.EmployeeID)
	assert.NotEqual(t, "password123", repo.users[resp.ID].PasswordHash)

	_, err = svc.CreateUser(ctx, auth.CreateUserRequest{Email: "x@example.com", Password: "password123", Roles: []string{"Admin"}})
	var verrs validator.ValidationErrors
	assert.True(t, errors.As(err, &verrs))
}
