package auth

import (
	"context"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	// Logout revokes the access token until it expires
	Logout(ctx context.Context, token string) error
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)
}
