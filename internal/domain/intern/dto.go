package intern

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/validator"
)

const (
	NoRecordsStatus = "No records"
	DefaultRole     = "Intern"
)

type DashboardResponse struct {
	Message     string `json:"message"`
	PresentDays int    `json:"present_days"`
	AbsentDays  int    `json:"absent_days"`
	LastStatus  string `json:"last_status"`
}

func WelcomeMessage(firstName string) string {
	return fmt.Sprintf("Welcome %s", firstName)
}

type HistoryItem struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

type HistoryResponse struct {
	History []HistoryItem `json:"history"`
}

type ProfileResponse struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Department string `json:"department"`
	Role       string `json:"role"`
	JoinedDate string `json:"joined_date"`
	EmployeeID string `json:"employee_id"`
}

func NewProfileResponse(p Profile) ProfileResponse {
	resp := ProfileResponse{
		FullName:   p.FirstName + " " + p.LastName,
		Email:      p.Email,
		Role:       DefaultRole,
		JoinedDate: p.EmploymentDate.Format(validator.DateLayout),
		EmployeeID: p.EmployeeID,
	}
	if p.Phone != nil {
		resp.Phone = *p.Phone
	}
	if p.Address != nil {
		resp.Address = *p.Address
	}
	if p.DepartmentName != nil {
		resp.Department = *p.DepartmentName
	}
	if len(p.Roles) > 0 && p.Roles[0] != "" {
		resp.Role = p.Roles[0]
	}
	return resp
}

type CreateComplaintRequest struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
}

func (r *CreateComplaintRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Subject) {
		errs = append(errs, validator.ValidationError{
			Field:   "subject",
			Message: "subject is required",
		})
	}

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ComplaintResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

func NewComplaintResponse(c Complaint) ComplaintResponse {
	return ComplaintResponse{
		ID:          c.ID,
		EmployeeID:  c.EmployeeID,
		Subject:     c.Subject,
		Description: c.Description,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}
}

type ReviewResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	ReviewerName *string `json:"reviewer_name"`
	ReviewDate   string  `json:"review_date"`
	Rating       int     `json:"rating"`
	Comments     *string `json:"comments"`
}

func NewReviewResponse(r PerformanceReview) ReviewResponse {
	return ReviewResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		ReviewerName: r.ReviewerName,
		ReviewDate:   r.ReviewDate.Format(validator.DateLayout),
		Rating:       r.Rating,
		Comments:     r.Comments,
	}
}
