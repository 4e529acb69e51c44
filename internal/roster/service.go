package roster

import (
	"log/slog"

	"github.com/gordonhealth/staff-portal/internal"
)

// Repository is the slice of the persistent store the roster owns. Users are
// read and written as a whole collection; there is no partial update path.
type Repository interface {
	LoadUsers() ([]User, error)
	SaveUsers([]User) error
}

// Service implements add/remove over the user collection. Whether a second
// registration under an existing employee id is rejected or appended is a
// deployment policy; the original system silently appended and resolved
// logins to the first match.
type Service struct {
	repo            Repository
	duplicatePolicy string
	logger          *slog.Logger
}

func NewService(repo Repository, duplicatePolicy string, logger *slog.Logger) *Service {
	if duplicatePolicy == "" {
		duplicatePolicy = internal.DuplicatePolicyReject
	}
	return &Service{
		repo:            repo,
		duplicatePolicy: duplicatePolicy,
		logger:          logger,
	}
}

// AddUser appends a roster entry and persists immediately.
func (s *Service) AddUser(dto CreateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("user validation failed", "error", err, "employee_id", dto.EmployeeID)
		return nil, err
	}

	users, err := s.repo.LoadUsers()
	if err != nil {
		s.logger.Error("failed to load users", "error", err)
		return nil, internal.NewInternalError("failed to load users", err)
	}

	if s.duplicatePolicy == internal.DuplicatePolicyReject {
		for _, u := range users {
			if u.EmployeeID == dto.EmployeeID {
				s.logger.Warn("duplicate employee id rejected", "employee_id", dto.EmployeeID)
				return nil, internal.ErrDuplicateEmployeeID
			}
		}
	}

	user := dto.toUser()
	users = append(users, user)

	if err := s.repo.SaveUsers(users); err != nil {
		s.logger.Error("failed to save users", "error", err, "employee_id", dto.EmployeeID)
		return nil, internal.NewInternalError("failed to save users", err)
	}

	s.logger.Info("user registered",
		"employee_id", user.EmployeeID,
		"role", user.Role,
		"department", user.Department)

	return &user, nil
}

// DeleteUser removes every entry with the given employee id and persists.
// Deleting an unknown id is a no-op. The protected admin account is not
// special-cased here; that restriction lives in the HTTP layer only.
func (s *Service) DeleteUser(employeeID string) error {
	users, err := s.repo.LoadUsers()
	if err != nil {
		s.logger.Error("failed to load users", "error", err)
		return internal.NewInternalError("failed to load users", err)
	}

	remaining := make([]User, 0, len(users))
	for _, u := range users {
		if u.EmployeeID != employeeID {
			remaining = append(remaining, u)
		}
	}

	if err := s.repo.SaveUsers(remaining); err != nil {
		s.logger.Error("failed to save users", "error", err, "employee_id", employeeID)
		return internal.NewInternalError("failed to save users", err)
	}

	s.logger.Info("user removed", "employee_id", employeeID, "removed", len(users)-len(remaining))
	return nil
}

// ListUsers returns the collection in insertion order.
func (s *Service) ListUsers() ([]User, error) {
	users, err := s.repo.LoadUsers()
	if err != nil {
		s.logger.Error("failed to load users", "error", err)
		return nil, internal.NewInternalError("failed to load users", err)
	}
	return users, nil
}

// FindByCredentials returns the first user matching both employee id and
// password. Duplicate ids resolve to the first entry in iteration order.
func (s *Service) FindByCredentials(employeeID, password string) (*User, error) {
	users, err := s.repo.LoadUsers()
	if err != nil {
		return nil, internal.NewInternalError("failed to load users", err)
	}

	for i := range users {
		if users[i].EmployeeID == employeeID && users[i].Password == password {
			return &users[i], nil
		}
	}
	return nil, internal.ErrInvalidCredentials
}

// FindByEmployeeID returns the first entry with the id, for token refresh
// of an already authenticated identity.
func (s *Service) FindByEmployeeID(employeeID string) (*User, error) {
	users, err := s.repo.LoadUsers()
	if err != nil {
		return nil, internal.NewInternalError("failed to load users", err)
	}

	for i := range users {
		if users[i].EmployeeID == employeeID {
			return &users[i], nil
		}
	}
	return nil, internal.ErrUserNotFound
}
