package schedule

import (
	"log/slog"
	"sort"
	"time"

	"github.com/gordonhealth/staff-portal/internal"
)

// Repository is the slice of the persistent store the calendar owns.
type Repository interface {
	LoadEvents() ([]Event, error)
	SaveEvents([]Event) error
}

// Service implements add/remove/filter/sort over the event collection.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock overrides the clock used for id generation and "today". Tests
// only.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// AddEvent appends a calendar entry with a generated id and persists
// immediately. An empty type defaults to "other", matching the original
// entry form.
func (s *Service) AddEvent(dto CreateEventDTO) (*Event, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("event validation failed", "error", err, "title", dto.Title)
		return nil, err
	}

	events, err := s.repo.LoadEvents()
	if err != nil {
		s.logger.Error("failed to load events", "error", err)
		return nil, internal.NewInternalError("failed to load events", err)
	}

	eventType := dto.Type
	if eventType == "" {
		eventType = TypeOther
	}

	event := Event{
		ID:          NewEventID(s.now()),
		Title:       dto.Title,
		Date:        dto.Date,
		Type:        eventType,
		Description: dto.Description,
	}
	events = append(events, event)

	if err := s.repo.SaveEvents(events); err != nil {
		s.logger.Error("failed to save events", "error", err, "event_id", event.ID)
		return nil, internal.NewInternalError("failed to save events", err)
	}

	s.logger.Info("event added", "event_id", event.ID, "date", event.Date, "type", event.Type)
	return &event, nil
}

// DeleteEvent removes every entry with the id into a freshly constructed
// slice and persists. An unknown id leaves the collection unchanged and is
// not an error.
func (s *Service) DeleteEvent(id string) error {
	events, err := s.repo.LoadEvents()
	if err != nil {
		s.logger.Error("failed to load events", "error", err)
		return internal.NewInternalError("failed to load events", err)
	}

	remaining := make([]Event, 0, len(events))
	for _, e := range events {
		if e.ID != id {
			remaining = append(remaining, e)
		}
	}

	if err := s.repo.SaveEvents(remaining); err != nil {
		s.logger.Error("failed to save events", "error", err, "event_id", id)
		return internal.NewInternalError("failed to save events", err)
	}

	s.logger.Info("event removed", "event_id", id, "removed", len(events)-len(remaining))
	return nil
}

// EventsOnDate matches the date field exactly, preserving insertion order.
func (s *Service) EventsOnDate(date string) ([]Event, error) {
	events, err := s.repo.LoadEvents()
	if err != nil {
		s.logger.Error("failed to load events", "error", err)
		return nil, internal.NewInternalError("failed to load events", err)
	}

	matched := make([]Event, 0)
	for _, e := range events {
		if e.Date == date {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// TodayEvents is EventsOnDate for the current calendar day.
func (s *Service) TodayEvents() ([]Event, error) {
	return s.EventsOnDate(s.now().Format(DateLayout))
}

// EventsInMonth filters by calendar year/month and sorts ascending by date.
// Entries sharing a date keep their relative insertion order. Entries whose
// date does not parse are skipped.
func (s *Service) EventsInMonth(year int, month time.Month) ([]Event, error) {
	events, err := s.repo.LoadEvents()
	if err != nil {
		s.logger.Error("failed to load events", "error", err)
		return nil, internal.NewInternalError("failed to load events", err)
	}

	matched := make([]Event, 0)
	for _, e := range events {
		d, err := time.Parse(DateLayout, e.Date)
		if err != nil {
			continue
		}
		if d.Year() == year && d.Month() == month {
			matched = append(matched, e)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date < matched[j].Date
	})
	return matched, nil
}

// Grid derives the month view: leading blanks for the weekday offset of day
// 1, then one cell per day carrying that day's events.
func (s *Service) Grid(year int, month time.Month) ([]GridCell, error) {
	events, err := s.repo.LoadEvents()
	if err != nil {
		s.logger.Error("failed to load events", "error", err)
		return nil, internal.NewInternalError("failed to load events", err)
	}
	return MonthGrid(year, month, events), nil
}
