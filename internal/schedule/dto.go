package schedule

import (
	"time"

	"github.com/gordonhealth/staff-portal/internal"
)

// CreateEventDTO is the transport shape for adding a calendar entry. The
// identifier is generated server-side.
type CreateEventDTO struct {
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	Type        EventType `json:"type"`
	Description string    `json:"description,omitempty"`
}

func (d CreateEventDTO) Validate() error {
	if d.Title == "" {
		return internal.NewValidationError("title is required", internal.ErrCodeValidationFailed)
	}
	if _, err := time.Parse(DateLayout, d.Date); err != nil {
		return internal.NewValidationError("date must be formatted YYYY-MM-DD", internal.ErrCodeInvalidDate)
	}
	if d.Type != "" && !d.Type.Valid() {
		return internal.NewValidationError("type must be one of meeting, surgery, holiday, other", internal.ErrCodeInvalidEventType)
	}
	return nil
}

type EventsResponse struct {
	Events []Event `json:"events"`
	Total  int     `json:"total"`
}
