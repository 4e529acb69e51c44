package notice

import (
	"log/slog"
	"net/http"

	"github.com/gordonhealth/staff-portal/internal/transport"
	"github.com/gordonhealth/staff-portal/pkg/logger"
)

type NoticesResponse struct {
	Notices []Notice `json:"notices"`
	Total   int      `json:"total"`
}

type Handler struct {
	*transport.BaseHandler
	Service *Service
}

func NewHandler(service *Service) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) ListNotices(w http.ResponseWriter, r *http.Request) {
	notices := h.Service.List()
	h.WriteJSON(w, http.StatusOK, NoticesResponse{Notices: notices, Total: len(notices)})
}
