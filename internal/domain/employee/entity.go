package employee

import "time"

type Employee struct {
	ID             string
	UserID         *string
	FirstName      string
	LastName       string
	Phone          *string
	Address        *string
	DepartmentID   string
	PositionID     *string
	EmploymentDate time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Join
	DepartmentName *string
	PositionName   *string
}

// FullName joins first and last name
func (e Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

type Department struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
