package push

import (
	"time"

	"github.com/gordonhealth/staff-portal/internal"
)

// EventTypeBroadcast is the bus event carrying a composed push message.
const EventTypeBroadcast = "push.broadcast"

// Broadcast is one all-staff push message. Delivery is presentational:
// every logged-in device polls the latest broadcast for the banner.
type Broadcast struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Author  string    `json:"author"`
	SentAt  time.Time `json:"sent_at"`
}

// CreateBroadcastDTO is the composer form: title and message.
type CreateBroadcastDTO struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

func (d CreateBroadcastDTO) Validate() error {
	if d.Title == "" {
		return internal.NewValidationError("title is required", internal.ErrCodeValidationFailed)
	}
	if d.Message == "" {
		return internal.NewValidationError("message is required", internal.ErrCodeValidationFailed)
	}
	return nil
}
