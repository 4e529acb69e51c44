package roster

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/gordonhealth/staff-portal/internal"
	"github.com/gordonhealth/staff-portal/internal/transport"
	"github.com/gordonhealth/staff-portal/pkg/logger"
)

type ServiceAPI interface {
	AddUser(dto CreateUserDTO) (*User, error)
	DeleteUser(employeeID string) error
	ListUsers() ([]User, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var dto CreateUserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateUser: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.Service.AddUser(dto)
	if err != nil {
		h.Logger.Error("CreateUser: service error", "error", err, "employee_id", dto.EmployeeID)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CreateUser: user registered", "employee_id", user.EmployeeID, "role", user.Role)
	h.WriteJSON(w, http.StatusCreated, user)
}

// DeleteUser refuses the built-in admin account here, in the presentation
// layer. The service beneath performs the removal if called directly; the
// original UI enforced this the same way, by never rendering the control.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		h.WriteError(w, http.StatusBadRequest, "missing employee id")
		return
	}

	if employeeID == ProtectedEmployeeID {
		h.Logger.Warn("DeleteUser: refused removal of protected account")
		h.HandleServiceError(w, internal.ErrProtectedUser)
		return
	}

	if err := h.Service.DeleteUser(employeeID); err != nil {
		h.Logger.Error("DeleteUser: service error", "error", err, "employee_id", employeeID)
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.ListUsers()
	if err != nil {
		h.Logger.Error("ListUsers: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, UsersResponse{Users: users, Total: len(users)})
}
