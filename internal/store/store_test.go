package store_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/gordonhealth/staff-portal/internal/roster"
	"github.com/gordonhealth/staff-portal/internal/schedule"
	"github.com/gordonhealth/staff-portal/internal/store"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestStore(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Store Suite")
}

var _ = Describe("Blob Store", func() {
	var (
		db      *gorm.DB
		blobs   *store.Store
		slogger *slog.Logger
		fixed   time.Time
	)

	BeforeEach(func() {
		var err error
		slogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = store.Migrate(db)
		Expect(err).NotTo(HaveOccurred())

		fixed = time.Date(2024, time.May, 20, 9, 0, 0, 0, time.UTC)
		blobs = store.New(db, slogger).WithClock(func() time.Time { return fixed })
	})

	Describe("LoadUsers", func() {
		Context("when no collection has been stored", func() {
			It("should return the seed roster", func() {
				users, err := blobs.LoadUsers()
				Expect(err).NotTo(HaveOccurred())
				Expect(users).To(HaveLen(2))
				Expect(users[0].EmployeeID).To(Equal("admin"))
				Expect(users[0].Name).To(Equal("Grace Park"))
				Expect(users[0].Role).To(Equal(roster.RoleAdmin))
				Expect(users[1].EmployeeID).To(Equal("2024001"))
				Expect(users[1].Password).To(Equal("1234"))
			})
		})

		Context("when a collection was saved", func() {
			BeforeEach(func() {
				err := blobs.SaveUsers([]roster.User{
					{EmployeeID: "9001", Name: "Ada Kim", Role: roster.RoleStaff, Password: "pw"},
				})
				Expect(err).NotTo(HaveOccurred())
			})

			It("should round-trip the saved collection", func() {
				users, err := blobs.LoadUsers()
				Expect(err).NotTo(HaveOccurred())
				Expect(users).To(HaveLen(1))
				Expect(users[0].EmployeeID).To(Equal("9001"))
				Expect(users[0].Name).To(Equal("Ada Kim"))
			})

			It("should overwrite on a second save", func() {
				err := blobs.SaveUsers([]roster.User{})
				Expect(err).NotTo(HaveOccurred())

				users, err := blobs.LoadUsers()
				Expect(err).NotTo(HaveOccurred())
				Expect(users).To(BeEmpty())
			})
		})

		Context("when the stored text is not valid JSON", func() {
			BeforeEach(func() {
				err := db.Exec(
					"INSERT INTO blobs (key, value, updated_at) VALUES (?, ?, ?)",
					store.UsersKey, "{not json", fixed,
				).Error
				Expect(err).NotTo(HaveOccurred())
			})

			It("should fall back to the seed roster without an error", func() {
				users, err := blobs.LoadUsers()
				Expect(err).NotTo(HaveOccurred())
				Expect(users).To(HaveLen(2))
				Expect(users[0].EmployeeID).To(Equal("admin"))
			})
		})
	})

	Describe("LoadEvents", func() {
		Context("when no collection has been stored", func() {
			It("should return the seed calendar dated against the clock", func() {
				events, err := blobs.LoadEvents()
				Expect(err).NotTo(HaveOccurred())
				Expect(events).To(HaveLen(3))
				Expect(events[0].ID).To(Equal("evt-1"))
				Expect(events[0].Date).To(Equal("2024-05-20"))
				Expect(events[1].Type).To(Equal(schedule.TypeSurgery))
				Expect(events[2].ID).To(Equal("evt-3"))
				Expect(events[2].Date).To(Equal("2024-05-25"))
			})
		})

		Context("when a collection was saved", func() {
			It("should round-trip the saved collection", func() {
				saved := []schedule.Event{
					{ID: "evt-x", Title: "Board review", Date: "2024-06-01", Type: schedule.TypeMeeting},
				}
				Expect(blobs.SaveEvents(saved)).To(Succeed())

				events, err := blobs.LoadEvents()
				Expect(err).NotTo(HaveOccurred())
				Expect(events).To(Equal(saved))
			})
		})

		Context("when the stored text is not valid JSON", func() {
			BeforeEach(func() {
				err := db.Exec(
					"INSERT INTO blobs (key, value, updated_at) VALUES (?, ?, ?)",
					store.EventsKey, "[[", fixed,
				).Error
				Expect(err).NotTo(HaveOccurred())
			})

			It("should fall back to the seed calendar without an error", func() {
				events, err := blobs.LoadEvents()
				Expect(err).NotTo(HaveOccurred())
				Expect(events).To(HaveLen(3))
			})
		})
	})

	Describe("Install guide flag", func() {
		It("should start undismissed", func() {
			dismissed, err := blobs.InstallGuideDismissed()
			Expect(err).NotTo(HaveOccurred())
			Expect(dismissed).To(BeFalse())
		})

		It("should stay dismissed once acknowledged", func() {
			Expect(blobs.DismissInstallGuide()).To(Succeed())

			dismissed, err := blobs.InstallGuideDismissed()
			Expect(err).NotTo(HaveOccurred())
			Expect(dismissed).To(BeTrue())

			Expect(blobs.DismissInstallGuide()).To(Succeed())
			dismissed, err = blobs.InstallGuideDismissed()
			Expect(err).NotTo(HaveOccurred())
			Expect(dismissed).To(BeTrue())
		})
	})
})
