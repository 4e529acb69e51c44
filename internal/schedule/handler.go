package schedule

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"github.com/gordonhealth/staff-portal/internal/transport"
	"github.com/gordonhealth/staff-portal/pkg/logger"
)

type ServiceAPI interface {
	AddEvent(dto CreateEventDTO) (*Event, error)
	DeleteEvent(id string) error
	EventsOnDate(date string) ([]Event, error)
	EventsInMonth(year int, month time.Month) ([]Event, error)
	Grid(year int, month time.Month) ([]GridCell, error)
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

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var dto CreateEventDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateEvent: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	event, err := h.Service.AddEvent(dto)
	if err != nil {
		h.Logger.Error("CreateEvent: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CreateEvent: event added", "event_id", event.ID, "date", event.Date)
	h.WriteJSON(w, http.StatusCreated, event)
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.WriteError(w, http.StatusBadRequest, "missing event id")
		return
	}

	if err := h.Service.DeleteEvent(id); err != nil {
		h.Logger.Error("DeleteEvent: service error", "error", err, "event_id", id)
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListEvents serves both filters of the calendar screen: ?date= for a single
// day, ?year=&month= for the sorted month list.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	if date := r.URL.Query().Get("date"); date != "" {
		events, err := h.Service.EventsOnDate(date)
		if err != nil {
			h.Logger.Error("ListEvents: service error", "error", err, "date", date)
			h.HandleServiceError(w, err)
			return
		}
		h.WriteJSON(w, http.StatusOK, EventsResponse{Events: events, Total: len(events)})
		return
	}

	year, month, ok := h.yearMonthFromQuery(r)
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "provide either date or year and month")
		return
	}

	events, err := h.Service.EventsInMonth(year, month)
	if err != nil {
		h.Logger.Error("ListEvents: service error", "error", err, "year", year, "month", month)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, EventsResponse{Events: events, Total: len(events)})
}

func (h *Handler) MonthGrid(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid year")
		return
	}
	monthNum, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		h.WriteError(w, http.StatusBadRequest, "invalid month")
		return
	}

	cells, err := h.Service.Grid(year, time.Month(monthNum))
	if err != nil {
		h.Logger.Error("MonthGrid: service error", "error", err, "year", year, "month", monthNum)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"year":  year,
		"month": monthNum,
		"cells": cells,
	})
}

func (h *Handler) yearMonthFromQuery(r *http.Request) (int, time.Month, bool) {
	yearStr := r.URL.Query().Get("year")
	monthStr := r.URL.Query().Get("month")
	if yearStr == "" || monthStr == "" {
		return 0, 0, false
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return 0, 0, false
	}
	monthNum, err := strconv.Atoi(monthStr)
	if err != nil || monthNum < 1 || monthNum > 12 {
		return 0, 0, false
	}
	return year, time.Month(monthNum), true
}
