package schedule_test

import (
	"time"

	"github.com/gordonhealth/staff-portal/internal/schedule"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Month Grid", func() {
	Describe("DaysInMonth", func() {
		It("should know the long and short months", func() {
			Expect(schedule.DaysInMonth(2024, time.May)).To(Equal(31))
			Expect(schedule.DaysInMonth(2024, time.April)).To(Equal(30))
		})

		It("should handle February across leap years", func() {
			Expect(schedule.DaysInMonth(2024, time.February)).To(Equal(29))
			Expect(schedule.DaysInMonth(2023, time.February)).To(Equal(28))
			Expect(schedule.DaysInMonth(2100, time.February)).To(Equal(28))
		})
	})

	Describe("FirstWeekday", func() {
		It("should report the Sunday-first offset of day 1", func() {
			// May 1, 2024 is a Wednesday
			Expect(schedule.FirstWeekday(2024, time.May)).To(Equal(3))
			// September 1, 2024 is a Sunday
			Expect(schedule.FirstWeekday(2024, time.September)).To(Equal(0))
		})
	})

	Describe("MonthGrid", func() {
		It("should lead with blank cells up to the first weekday", func() {
			cells := schedule.MonthGrid(2024, time.May, nil)
			Expect(cells).To(HaveLen(3 + 31))

			for i := 0; i < 3; i++ {
				Expect(cells[i].Blank()).To(BeTrue())
			}
			Expect(cells[3].Day).To(Equal(1))
			Expect(cells[3].Date).To(Equal("2024-05-01"))
			Expect(cells[len(cells)-1].Day).To(Equal(31))
			Expect(cells[len(cells)-1].Date).To(Equal("2024-05-31"))
		})

		It("should need no blanks when the month opens on a Sunday", func() {
			cells := schedule.MonthGrid(2024, time.September, nil)
			Expect(cells).To(HaveLen(30))
			Expect(cells[0].Day).To(Equal(1))
		})

		It("should attach each event to its day cell", func() {
			events := []schedule.Event{
				{ID: "evt-3", Title: "Founding anniversary", Date: "2024-05-25", Type: schedule.TypeHoliday},
				{ID: "evt-4", Title: "Vendor demo", Date: "2024-05-25", Type: schedule.TypeMeeting},
				{ID: "evt-5", Title: "June planning", Date: "2024-06-01", Type: schedule.TypeMeeting},
			}

			cells := schedule.MonthGrid(2024, time.May, events)

			var day25 schedule.GridCell
			for _, c := range cells {
				if c.Day == 25 {
					day25 = c
				}
			}
			Expect(day25.Events).To(HaveLen(2))
			Expect(day25.Events[0].ID).To(Equal("evt-3"))

			for _, c := range cells {
				if c.Day != 25 {
					Expect(c.Events).To(BeEmpty())
				}
			}
		})
	})
})
