package intern

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewProfileResponse(t *testing.T) {
	phone := "0812"
	dept := "Engineering"
	p := Profile{
		EmployeeID:     "emp-1",
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Email:          "ada@example.com",
		Phone:          &phone,
		DepartmentName: &dept,
		EmploymentDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}

	got := NewProfileResponse(p)

	assert.Equal(t, "Ada Lovelace", got.FullName)
	assert.Equal(t, "0812", got.Phone)
	assert.Equal(t, "", got.Address)
	assert.Equal(t, "Engineering", got.Department)
	assert.Equal(t, "Intern", got.Role)
	assert.Equal(t, "2024-01-15", got.JoinedDate)

	p.Roles = []string{"Staff", "Intern"}
	assert.Equal(t, "Staff", NewProfileResponse(p).Role)
}

func TestCreateComplaintRequest_Validate(t *testing.T) {
	ok := CreateComplaintRequest{Subject: "Desk", Description: "Broken chair"}
	assert.NoError(t, ok.Validate())

	missing := CreateComplaintRequest{Subject: "  "}
	err := missing.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "subject")
	assert.Contains(t, err.Error(), "description")
}
