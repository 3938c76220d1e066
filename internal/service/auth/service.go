package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/auth"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/user"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// TxRunner runs fn in a transaction whose context repositories join
type TxRunner func(ctx context.Context, fn func(txCtx context.Context) error) error

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
	withTx TxRunner
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service, withTx TxRunner) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
		withTx:         withTx,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func newUserResponse(u user.User) auth.UserResponse {
	return auth.UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Roles:        user.RoleStrings(u.Roles),
		EmployeeID:   u.EmployeeID,
		DepartmentID: u.DepartmentID,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest) (auth.TokenResponse, error) {
	if err := loginReq.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, loginReq.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(loginReq.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(userData)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	slog.Info("user logged in", "user_id", userData.ID, "roles", user.RoleStrings(userData.Roles))

	return auth.TokenResponse{
		AccessToken:          token,
		AccessTokenExpiresIn: expiresAt,
		User:                 newUserResponse(userData),
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	parsed, err := a.Service.JWTAuth().Decode(token)
	if err != nil || parsed == nil {
		return auth.ErrInvalidToken
	}
	a.Service.RevokeToken(token, parsed.Expiration().Unix())
	return nil
}

// ChangePassword implements auth.AuthService.
func (a *AuthServiceImpl) ChangePassword(ctx context.Context, userID string, req auth.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return auth.ErrIncorrectPassword
	}

	hashed, err := a.hashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := a.UserRepository.UpdatePassword(ctx, userID, hashed); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	slog.Info("password changed", "user_id", userID)
	return nil
}

// CreateUser implements auth.AuthService.
func (a *AuthServiceImpl) CreateUser(ctx context.Context, req auth.CreateUserRequest) (auth.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.UserResponse{}, err
	}

	hashed, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	roles := make([]user.Role, 0, len(req.Roles))
	for _, r := range req.Roles {
		roles = append(roles, user.Role(r))
	}

	var created user.User
	err = a.withTx(ctx, func(txCtx context.Context) error {
		created, err = a.UserRepository.Create(txCtx, user.User{Email: req.Email, PasswordHash: hashed})
		if err != nil {
			return err
		}
		if err := a.UserRepository.AssignRoles(txCtx, created.ID, roles); err != nil {
			return err
		}
		if req.EmployeeID != nil {
			if err := a.UserRepository.LinkEmployee(txCtx, created.ID, *req.EmployeeID); err != nil {
				return err
			}
		}
		created, err = a.UserRepository.GetByID(txCtx, created.ID)
		return err
	})
	if err != nil {
		return auth.UserResponse{}, err
	}

	slog.Info("user created", "user_id", created.ID, "roles", req.Roles)
	return newUserResponse(created), nil
}
