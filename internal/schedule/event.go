package schedule

import (
	"fmt"
	"math/rand"
	"time"
)

// DateLayout is the calendar-date wire format. Events carry no time
// component.
const DateLayout = "2006-01-02"

type EventType string

const (
	TypeMeeting EventType = "meeting"
	TypeSurgery EventType = "surgery"
	TypeHoliday EventType = "holiday"
	TypeOther   EventType = "other"
)

func (t EventType) Valid() bool {
	switch t {
	case TypeMeeting, TypeSurgery, TypeHoliday, TypeOther:
		return true
	}
	return false
}

// Event is one calendar entry. JSON field names match the original portal's
// storage blobs. Events are never updated in place; only added and deleted.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	Type        EventType `json:"type"`
	Description string    `json:"description,omitempty"`
}

const idSuffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewEventID composes an identifier from the timestamp plus a short random
// suffix. Uniqueness rests on entropy, not a check; collisions are
// theoretical at portal scale.
func NewEventID(now time.Time) string {
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = idSuffixAlphabet[rand.Intn(len(idSuffixAlphabet))]
	}
	return fmt.Sprintf("evt-%d-%s", now.UnixMilli(), suffix)
}
