package roster

import (
	"github.com/gordonhealth/staff-portal/internal"
)

// CreateUserDTO is the transport shape for registering a staff member.
type CreateUserDTO struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Password   string `json:"password"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Role       Role   `json:"role"`
}

func (d CreateUserDTO) Validate() error {
	if d.EmployeeID == "" {
		return internal.NewValidationError("employee_id is required", internal.ErrCodeValidationFailed)
	}
	if d.Name == "" {
		return internal.NewValidationError("name is required", internal.ErrCodeValidationFailed)
	}
	if d.Password == "" {
		return internal.NewValidationError("password is required", internal.ErrCodeValidationFailed)
	}
	if !d.Role.Valid() {
		return internal.NewValidationError("role must be admin or staff", internal.ErrCodeInvalidRole)
	}
	return nil
}

func (d CreateUserDTO) toUser() User {
	return User{
		EmployeeID: d.EmployeeID,
		Name:       d.Name,
		Role:       d.Role,
		Department: d.Department,
		Position:   d.Position,
		Password:   d.Password,
	}
}

type UsersResponse struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
}
