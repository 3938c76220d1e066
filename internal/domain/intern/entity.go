package intern

import "time"

const ComplaintStatusOpen = "open"

type Complaint struct {
	ID          string
	EmployeeID  string
	Subject     string
	Description string
	Status      string
	CreatedAt   time.Time
}

type PerformanceReview struct {
	ID           string
	EmployeeID   string
	ReviewerName *string
	ReviewDate   time.Time
	Rating       int
	Comments     *string
	CreatedAt    time.Time
}

// Profile is the joined employee, user and department view of an intern
type Profile struct {
	EmployeeID     string
	FirstName      string
	LastName       string
	Email          string
	Phone          *string
	Address        *string
	DepartmentName *string
	Roles          []string
	EmploymentDate time.Time
}
