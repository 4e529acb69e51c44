package schedule

import (
	"fmt"
	"time"
)

// GridCell is one slot of the month view. Leading cells before day 1 are
// blank placeholders (Day == 0) so the first week aligns on a Sunday-first
// grid.
type GridCell struct {
	Day    int     `json:"day"`
	Date   string  `json:"date,omitempty"`
	Events []Event `json:"events,omitempty"`
}

func (c GridCell) Blank() bool {
	return c.Day == 0
}

// DaysInMonth accounts for variable month lengths and leap years: day 0 of
// the following month is the last day of this one.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday is the day-of-week offset of day 1 (Sunday = 0).
func FirstWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// MonthGrid produces the cell sequence for a month: FirstWeekday blanks
// followed by one cell per day, each carrying the events matching its date.
func MonthGrid(year int, month time.Month, events []Event) []GridCell {
	offset := FirstWeekday(year, month)
	total := DaysInMonth(year, month)

	byDate := make(map[string][]Event)
	for _, e := range events {
		byDate[e.Date] = append(byDate[e.Date], e)
	}

	cells := make([]GridCell, 0, offset+total)
	for i := 0; i < offset; i++ {
		cells = append(cells, GridCell{})
	}
	for day := 1; day <= total; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
		cells = append(cells, GridCell{
			Day:    day,
			Date:   date,
			Events: byDate[date],
		})
	}
	return cells
}
