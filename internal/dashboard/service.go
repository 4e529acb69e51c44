package dashboard

import (
	"context"
	"log/slog"

	"github.com/gordonhealth/staff-portal/internal/notice"
	"github.com/gordonhealth/staff-portal/internal/roster"
	"github.com/gordonhealth/staff-portal/internal/schedule"
)

// EventSource is the slice of the calendar the dashboard reads.
type EventSource interface {
	TodayEvents() ([]schedule.Event, error)
}

// NoticeSource supplies the must-read notices.
type NoticeSource interface {
	Important(limit int) []notice.Notice
}

// WelcomeSource produces the greeting sentence. Implementations absorb their
// own failures and always return text.
type WelcomeSource interface {
	Generate(ctx context.Context, name, department, position string) string
}

// Summary is everything the dashboard screen shows for one visit.
type Summary struct {
	Welcome          string            `json:"welcome"`
	TodayEvents      []schedule.Event  `json:"today_events"`
	ImportantNotices []notice.Notice   `json:"important_notices"`
	User             roster.PublicUser `json:"user"`
}

const importantNoticeLimit = 2

type Service struct {
	events  EventSource
	notices NoticeSource
	welcome WelcomeSource
	logger  *slog.Logger
}

func NewService(events EventSource, notices NoticeSource, welcome WelcomeSource, logger *slog.Logger) *Service {
	return &Service{
		events:  events,
		notices: notices,
		welcome: welcome,
		logger:  logger,
	}
}

// Summarize builds the dashboard for the given identity. The welcome call is
// scoped to ctx, so a visitor who leaves the screen cancels it.
func (s *Service) Summarize(ctx context.Context, user *roster.User) (*Summary, error) {
	todayEvents, err := s.events.TodayEvents()
	if err != nil {
		s.logger.Error("failed to load today's events", "error", err)
		return nil, err
	}

	return &Summary{
		Welcome:          s.welcome.Generate(ctx, user.Name, user.Department, user.Position),
		TodayEvents:      todayEvents,
		ImportantNotices: s.notices.Important(importantNoticeLimit),
		User:             user.Public(),
	}, nil
}
