package attendance

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLogRequest_AcceptsCamelCase(t *testing.T) {
	body := `{
		"employeeId": "33333333-3333-4333-8333-333333333333",
		"date": "2024-06-04",
		"sessionId": "44444444-4444-4444-8444-444444444444",
		"actualClockIn": "2024-06-04T09:25:00Z",
		"status": "present",
		"departmentId": "11111111-1111-4111-8111-111111111111"
	}`

	var req CreateLogRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	require.NoError(t, req.Validate())

	assert.Equal(t, "33333333-3333-4333-8333-333333333333", req.EmployeeID)
	assert.Equal(t, "44444444-4444-4444-8444-444444444444", req.SessionID)
	require.NotNil(t, req.ActualClockIn)
	assert.Equal(t, "2024-06-04T09:25:00Z", *req.ActualClockIn)
	assert.Nil(t, req.ActualClockOut)
	require.NotNil(t, req.DepartmentID)

	log := req.ToLog()
	require.NotNil(t, log.ActualClockIn)
	assert.Equal(t, 9, log.ActualClockIn.Hour())
}

func TestCreateLogRequest_SnakeCaseWins(t *testing.T) {
	body := `{"employee_id": "snake", "employeeId": "camel", "date": "2024-06-04", "session_id": "s-1"}`

	var req CreateLogRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	assert.Equal(t, "snake", req.EmployeeID)
	assert.Equal(t, "s-1", req.SessionID)
	assert.Nil(t, req.ActualClockIn)
}

func TestBulkCreateLogRequest_AcceptsCamelCaseEntries(t *testing.T) {
	body := `{"logs": [{"employeeId": "e-1", "date": "2024-06-04", "sessionId": "s-1"}, {"employee_id": "e-2", "date": "2024-06-04", "session_id": "s-2"}]}`

	var req BulkCreateLogRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	require.Len(t, req.Logs, 2)
	assert.Equal(t, "e-1", req.Logs[0].EmployeeID)
	assert.Equal(t, "s-2", req.Logs[1].SessionID)
}
