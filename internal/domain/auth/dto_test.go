package auth

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangePasswordRequest_AcceptsCamelCase(t *testing.T) {
	var req ChangePasswordRequest
	err := json.Unmarshal([]byte(`{"currentPassword": "old-secret", "newPassword": "new-secret", "confirmNewPassword": "new-secret"}`), &req)
	require.NoError(t, err)

	assert.Equal(t, "old-secret", req.CurrentPassword)
	assert.Equal(t, "new-secret", req.NewPassword)
	assert.NoError(t, req.Validate())
}

func TestChangePasswordRequest_SnakeCase(t *testing.T) {
	var req ChangePasswordRequest
	err := json.Unmarshal([]byte(`{"current_password": "old-secret", "new_password": "new-secret", "confirm_new_password": "other-secret"}`), &req)
	require.NoError(t, err)

	assert.Equal(t, "old-secret", req.CurrentPassword)
	assert.Error(t, req.Validate())
}
