package push

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gordonhealth/staff-portal/internal/session"
	"github.com/gordonhealth/staff-portal/internal/transport"
	"github.com/gordonhealth/staff-portal/pkg/logger"
)

type ServiceAPI interface {
	Send(ctx context.Context, dto CreateBroadcastDTO, author string) (*Broadcast, error)
	Latest() *Broadcast
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

func (h *Handler) SendBroadcast(w http.ResponseWriter, r *http.Request) {
	user, ok := session.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateBroadcastDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("SendBroadcast: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	broadcast, err := h.Service.Send(r.Context(), dto, user.Name)
	if err != nil {
		h.Logger.Error("SendBroadcast: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusAccepted, broadcast)
}

func (h *Handler) LatestBroadcast(w http.ResponseWriter, r *http.Request) {
	broadcast := h.Service.Latest()
	if broadcast == nil {
		h.WriteJSON(w, http.StatusOK, map[string]interface{}{"broadcast": nil})
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"broadcast": broadcast})
}
