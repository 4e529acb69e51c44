package session

import "github.com/gordonhealth/staff-portal/internal/roster"

// LoginDTO is the transport shape of the login form: employee id and
// password, nothing else.
type LoginDTO struct {
	EmployeeID string `json:"employee_id"`
	Password   string `json:"password"`
}

// ValidationError represents a simple validation error from DTO validation.
type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d LoginDTO) Validate() error {
	if d.EmployeeID == "" {
		return ValidationError{Msg: "employee_id is required"}
	}
	if d.Password == "" {
		return ValidationError{Msg: "password is required"}
	}
	return nil
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	AccessToken string            `json:"access_token"`
	User        roster.PublicUser `json:"user"`
}
