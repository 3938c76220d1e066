package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken_Claims(t *testing.T) {
	svc := NewJWTService("test-secret", "1h")
	dept := "dept-1"
	u := user.User{
		ID:           "user-1",
		Email:        "head@example.com",
		Roles:        []user.Role{user.RoleDepartmentHead},
		DepartmentID: &dept,
	}

	token, expiresAt, err := svc.GenerateAccessToken(u)
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Unix())

	parsed, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	claims, err := parsed.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "dept-1", claims["department_id"])
	assert.Nil(t, claims["employee_id"])
	assert.Equal(t, TokenTypeAccess, claims["type"])
	assert.Equal(t, []interface{}{"DepartmentHead"}, claims["roles"])
}

func TestGenerateAccessToken_InvalidExpiration(t *testing.T) {
	svc := NewJWTService("test-secret", "eight hours")
	_, _, err := svc.GenerateAccessToken(user.User{ID: "user-1"})
	assert.Error(t, err)
}

func TestRevokeToken(t *testing.T) {
	svc := NewJWTService("test-secret", "1h").(*JWTService)
	now := time.Date(2024, 6, 4, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	svc.RevokeToken("stale", now.Add(-time.Minute).Unix())
	svc.RevokeToken("fresh", now.Add(time.Hour).Unix())

	assert.True(t, svc.IsTokenRevoked("fresh"))
	assert.False(t, svc.IsTokenRevoked("stale"))
	assert.False(t, svc.IsTokenRevoked("unknown"))
}
