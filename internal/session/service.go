package session

import (
	"log/slog"
	"sync"

	"github.com/gordonhealth/staff-portal/internal"
	"github.com/gordonhealth/staff-portal/internal/roster"
)

// UserDirectory is the read-only view of the roster that login needs. Login
// never writes to the store.
type UserDirectory interface {
	FindByCredentials(employeeID, password string) (*roster.User, error)
}

// Service holds the active sessions in memory. A restart logs everyone out,
// which is acceptable for a single-tenant portal.
type Service struct {
	users  UserDirectory
	tokens *TokenGenerator
	logger *slog.Logger

	mu       sync.RWMutex
	sessions map[string]roster.User
}

func NewService(users UserDirectory, tokens *TokenGenerator, logger *slog.Logger) *Service {
	return &Service{
		users:    users,
		tokens:   tokens,
		logger:   logger,
		sessions: make(map[string]roster.User),
	}
}

// Login succeeds iff a stored user matches both employee id and password.
// There is no lockout or throttling; a failed attempt changes no state.
func (s *Service) Login(dto LoginDTO) (*LoginResult, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.FindByCredentials(dto.EmployeeID, dto.Password)
	if err != nil {
		s.logger.Warn("login rejected", "employee_id", dto.EmployeeID)
		return nil, internal.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.EmployeeID)
	if err != nil {
		s.logger.Error("failed to generate access token", "error", err)
		return nil, internal.NewInternalError("failed to generate access token", err)
	}

	s.mu.Lock()
	s.sessions[token] = *user
	s.mu.Unlock()

	s.logger.Info("login succeeded", "employee_id", user.EmployeeID, "role", user.Role)

	return &LoginResult{
		AccessToken: token,
		User:        user.Public(),
	}, nil
}

// Logout clears the session. The token remains well-formed but is no longer
// accepted.
func (s *Service) Logout(token string) {
	s.mu.Lock()
	_, found := s.sessions[token]
	delete(s.sessions, token)
	s.mu.Unlock()

	if found {
		s.logger.Info("session closed")
	}
}

// Authenticate resolves a bearer token to the identity it was issued for.
func (s *Service) Authenticate(token string) (*roster.User, error) {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	user, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok || user.EmployeeID != claims.EmployeeID {
		return nil, internal.ErrInvalidToken
	}
	return &user, nil
}

// ActiveSessions reports how many identities are currently logged in.
func (s *Service) ActiveSessions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
