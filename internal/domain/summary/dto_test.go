package summary

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepartmentDayRequest_Unmarshal(t *testing.T) {
	const dept = "11111111-1111-4111-8111-111111111111"

	for _, body := range []string{
		`{"date": "2024-06-04", "departmentId": "` + dept + `"}`,
		`{"date": "2024-06-04", "department_id": "` + dept + `"}`,
	} {
		var req DepartmentDayRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req), body)
		require.NoError(t, req.Validate(), body)
		assert.Equal(t, dept, req.DepartmentID)
		assert.Equal(t, time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC), req.Day())
	}

	var missing DepartmentDayRequest
	require.NoError(t, json.Unmarshal([]byte(`{"date": "2024-06-04"}`), &missing))
	assert.Error(t, missing.Validate())
}
