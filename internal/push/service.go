package push

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gordonhealth/staff-portal/internal"
	"github.com/gordonhealth/staff-portal/internal/core/events"
)

// Service composes broadcasts and hands them to the event bus. A subscriber
// applies the simulated delivery delay before the broadcast becomes the
// latest banner, mirroring the lag staff saw in the original composer.
type Service struct {
	bus           *events.EventBus
	dispatchDelay time.Duration
	logger        *slog.Logger

	mu     sync.RWMutex
	latest *Broadcast
}

func NewService(bus *events.EventBus, dispatchDelay time.Duration, logger *slog.Logger) *Service {
	s := &Service{
		bus:           bus,
		dispatchDelay: dispatchDelay,
		logger:        logger,
	}
	bus.Subscribe(EventTypeBroadcast, s.handleBroadcast)
	return s
}

// Send validates the composer form and publishes the broadcast. It returns
// immediately; delivery completes asynchronously after the dispatch delay.
func (s *Service) Send(ctx context.Context, dto CreateBroadcastDTO, author string) (*Broadcast, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("broadcast validation failed", "error", err)
		return nil, err
	}

	broadcast := &Broadcast{
		ID:      uuid.NewString(),
		Title:   dto.Title,
		Message: dto.Message,
		Author:  author,
		SentAt:  time.Now(),
	}

	event := events.BaseEvent{
		ID:        broadcast.ID,
		Type:      EventTypeBroadcast,
		Timestamp: broadcast.SentAt,
		Data: map[string]interface{}{
			"title":   broadcast.Title,
			"message": broadcast.Message,
			"author":  broadcast.Author,
		},
	}

	if err := s.bus.Publish(context.WithoutCancel(ctx), event); err != nil {
		s.logger.Error("failed to publish broadcast", "error", err, "broadcast_id", broadcast.ID)
		return nil, internal.NewInternalError("failed to publish broadcast", err)
	}

	s.logger.Info("broadcast queued", "broadcast_id", broadcast.ID, "author", author)
	return broadcast, nil
}

func (s *Service) handleBroadcast(ctx context.Context, event events.Event) error {
	if s.dispatchDelay > 0 {
		select {
		case <-time.After(s.dispatchDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	data, ok := event.Payload().(map[string]interface{})
	if !ok {
		s.logger.Error("broadcast event carried unexpected payload", "event_id", event.EventID())
		return nil
	}

	broadcast := &Broadcast{
		ID:      event.EventID(),
		SentAt:  event.OccurredAt(),
		Title:   stringField(data, "title"),
		Message: stringField(data, "message"),
		Author:  stringField(data, "author"),
	}

	s.mu.Lock()
	s.latest = broadcast
	s.mu.Unlock()

	s.logger.Info("broadcast delivered", "broadcast_id", broadcast.ID, "title", broadcast.Title)
	return nil
}

// Latest returns the most recently delivered broadcast, or nil if none has
// been sent since startup.
func (s *Service) Latest() *Broadcast {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

func stringField(data map[string]interface{}, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}
