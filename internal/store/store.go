package store

import (
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/gordonhealth/staff-portal/internal/roster"
	"github.com/gordonhealth/staff-portal/internal/schedule"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Storage keys match the original portal's local storage entries so exported
// blobs stay importable.
const (
	UsersKey        = "gordon_users"
	EventsKey       = "gordon_events"
	InstallGuideKey = "gordon_install_guide"
)

// Blob is one string-keyed collection serialized to JSON text. The whole
// portal persists through this single table.
type Blob struct {
	Key       string    `gorm:"primaryKey;column:key"`
	Value     string    `gorm:"column:value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Blob) TableName() string {
	return "blobs"
}

// Store is the sole durable owner of the user and event collections. Every
// mutation saves synchronously; there is no batching.
type Store struct {
	db     *gorm.DB
	logger *slog.Logger
	now    func() time.Time
}

func New(db *gorm.DB, logger *slog.Logger) *Store {
	return &Store{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock overrides the clock used for seed event dates. Tests only.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Migrate creates the blobs table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Blob{})
}

func (s *Store) loadBlob(key string) (string, error) {
	var blob Blob
	err := s.db.Where("key = ?", key).First(&blob).Error
	if err != nil {
		return "", err
	}
	return blob.Value, nil
}

func (s *Store) saveBlob(key, value string) error {
	blob := Blob{Key: key, Value: value, UpdatedAt: s.now()}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&blob).Error
}

// LoadUsers returns the stored user collection. A missing key means first
// run and yields the seed collection; corrupt stored text also falls back to
// the seed instead of faulting, with a warning for operators.
func (s *Store) LoadUsers() ([]roster.User, error) {
	raw, err := s.loadBlob(UsersKey)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return SeedUsers(), nil
	}
	if err != nil {
		return nil, err
	}

	var users []roster.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		s.logger.Warn("stored user collection is corrupt, falling back to seed",
			"key", UsersKey, "error", err)
		return SeedUsers(), nil
	}
	return users, nil
}

func (s *Store) SaveUsers(users []roster.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return s.saveBlob(UsersKey, string(raw))
}

// LoadEvents mirrors LoadUsers for the event collection.
func (s *Store) LoadEvents() ([]schedule.Event, error) {
	raw, err := s.loadBlob(EventsKey)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return SeedEvents(s.now()), nil
	}
	if err != nil {
		return nil, err
	}

	var events []schedule.Event
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		s.logger.Warn("stored event collection is corrupt, falling back to seed",
			"key", EventsKey, "error", err)
		return SeedEvents(s.now()), nil
	}
	return events, nil
}

func (s *Store) SaveEvents(events []schedule.Event) error {
	raw, err := json.Marshal(events)
	if err != nil {
		return err
	}
	return s.saveBlob(EventsKey, string(raw))
}

// InstallGuideDismissed reports whether the add-to-home-screen guide was
// already acknowledged. The key is flag-only; any stored value counts.
func (s *Store) InstallGuideDismissed() (bool, error) {
	_, err := s.loadBlob(InstallGuideKey)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) DismissInstallGuide() error {
	return s.saveBlob(InstallGuideKey, "true")
}

// SeedUsers is the first-run roster: the built-in administrator and one
// staff account.
func SeedUsers() []roster.User {
	return []roster.User{
		{
			EmployeeID: "admin",
			Name:       "Grace Park",
			Role:       roster.RoleAdmin,
			Department: "Hospital IT Team",
			Position:   "Team Lead",
			Password:   "admin",
		},
		{
			EmployeeID: "2024001",
			Name:       "John Hong",
			Role:       roster.RoleStaff,
			Department: "Director's Office",
			Position:   "Director",
			Password:   "1234",
		},
	}
}

// SeedEvents is the first-run calendar: two entries for today plus the
// founding anniversary.
func SeedEvents(now time.Time) []schedule.Event {
	today := now.Format(schedule.DateLayout)
	return []schedule.Event{
		{ID: "evt-1", Title: "All-staff conference", Date: today, Type: schedule.TypeMeeting},
		{ID: "evt-2", Title: "Director's surgery observation", Date: today, Type: schedule.TypeSurgery},
		{ID: "evt-3", Title: "Founding anniversary", Date: "2024-05-25", Type: schedule.TypeHoliday},
	}
}
