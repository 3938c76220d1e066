package auth

import (
	"encoding/json"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/user"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if len(r.Email) > 254 {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must not exceed 254 characters",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TokenResponse struct {
	AccessToken          string       `json:"access_token"`
	AccessTokenExpiresIn int64        `json:"access_token_expires_in"`
	User                 UserResponse `json:"user"`
}

type UserResponse struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	Roles        []string `json:"roles"`
	EmployeeID   *string  `json:"employee_id,omitempty"`
	DepartmentID *string  `json:"department_id,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword    string `json:"current_password"`
	NewPassword        string `json:"new_password"`
	ConfirmNewPassword string `json:"confirm_new_password"`
}

// UnmarshalJSON accepts camelCase keys as well as snake_case ones
func (r *ChangePasswordRequest) UnmarshalJSON(data []byte) error {
	type snakeCase ChangePasswordRequest
	var body struct {
		snakeCase
		CurrentPassword    string `json:"currentPassword"`
		NewPassword        string `json:"newPassword"`
		ConfirmNewPassword string `json:"confirmNewPassword"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}

	*r = ChangePasswordRequest(body.snakeCase)
	if r.CurrentPassword == "" {
		r.CurrentPassword = body.CurrentPassword
	}
	if r.NewPassword == "" {
		r.NewPassword = body.NewPassword
	}
	if r.ConfirmNewPassword == "" {
		r.ConfirmNewPassword = body.ConfirmNewPassword
	}
	return nil
}

func (r *ChangePasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CurrentPassword) {
		errs = append(errs, validator.ValidationError{
			Field:   "current_password",
			Message: "current_password is required",
		})
	}
	if validator.IsEmpty(r.NewPassword) {
		errs = append(errs, validator.ValidationError{
			Field:   "new_password",
			Message: "new_password is required",
		})
	} else if len(r.NewPassword) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "new_password",
			Message: "new_password must be at least 8 characters long",
		})
	}
	if validator.IsEmpty(r.ConfirmNewPassword) {
		errs = append(errs, validator.ValidationError{
			Field:   "confirm_new_password",
			Message: "confirm_new_password is required",
		})
	} else if r.NewPassword != r.ConfirmNewPassword {
		errs = append(errs, validator.ValidationError{
			Field:   "confirm_new_password",
			Message: "new passwords do not match",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CreateUserRequest provisions a login account; used by the operations CLI
type CreateUserRequest struct {
	Email      string   `json:"email"`
	Password   string   `json:"password"`
	Roles      []string `json:"roles"`
	EmployeeID *string  `json:"employee_id,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters long",
		})
	}

	if len(r.Roles) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "roles",
			Message: "at least one role is required",
		})
	}
	for _, role := range r.Roles {
		if !validator.IsInSlice(role, user.RoleStrings(user.AllRoles)) {
			errs = append(errs, validator.ValidationError{
				Field:   "roles",
				Message: "unknown role " + role,
			})
		}
	}

	if r.EmployeeID != nil && !validator.IsValidUUID(*r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
