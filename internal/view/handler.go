package view

import (
	"log/slog"
	"net/http"

	"github.com/gordonhealth/staff-portal/internal/session"
	"github.com/gordonhealth/staff-portal/internal/transport"
	"github.com/gordonhealth/staff-portal/pkg/logger"
)

type Handler struct {
	*transport.BaseHandler
}

func NewHandler() *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{BaseHandler: transport.NewBaseHandler(lg)}
}

// Navigation returns the screens the caller's role is offered, plus the
// screen a requested selector would resolve to.
func (h *Handler) Navigation(w http.ResponseWriter, r *http.Request) {
	user, ok := session.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	resolved := Route(user, ViewType(r.URL.Query().Get("view")))

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"views":    NavigationFor(user),
		"resolved": resolved,
	})
}
