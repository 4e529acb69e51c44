package dashboard

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gordonhealth/staff-portal/internal/roster"
	"github.com/gordonhealth/staff-portal/internal/session"
	"github.com/gordonhealth/staff-portal/internal/transport"
	"github.com/gordonhealth/staff-portal/pkg/logger"
)

type ServiceAPI interface {
	Summarize(ctx context.Context, user *roster.User) (*Summary, error)
}

// GuideFlagStore is the install-guide slice of the persistent store.
type GuideFlagStore interface {
	InstallGuideDismissed() (bool, error)
	DismissInstallGuide() error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
	Guide   GuideFlagStore
}

func NewHandler(service ServiceAPI, guide GuideFlagStore) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
		Guide:       guide,
	}
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := session.UserFromContext(r.Context())
	if !ok || user == nil {
		h.Logger.Error("GetDashboard: user not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	summary, err := h.Service.Summarize(r.Context(), user)
	if err != nil {
		h.Logger.Error("GetDashboard: service error", "error", err, "employee_id", user.EmployeeID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, summary)
}

func (h *Handler) GetInstallGuide(w http.ResponseWriter, r *http.Request) {
	dismissed, err := h.Guide.InstallGuideDismissed()
	if err != nil {
		h.Logger.Error("GetInstallGuide: store error", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]bool{"dismissed": dismissed})
}

func (h *Handler) DismissInstallGuide(w http.ResponseWriter, r *http.Request) {
	if err := h.Guide.DismissInstallGuide(); err != nil {
		h.Logger.Error("DismissInstallGuide: store error", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
