package roster_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/gordonhealth/staff-portal/internal"
	"github.com/gordonhealth/staff-portal/internal/roster"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestRosterService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Roster Service Suite")
}

// MockRepository implements roster.Repository for testing
type MockRepository struct {
	users      []roster.User
	shouldFail bool
	failError  error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{users: []roster.User{}}
}

func (m *MockRepository) LoadUsers() ([]roster.User, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	out := make([]roster.User, len(m.users))
	copy(out, m.users)
	return out, nil
}

func (m *MockRepository) SaveUsers(users []roster.User) error {
	if m.shouldFail {
		return m.failError
	}
	m.users = users
	return nil
}

func (m *MockRepository) SetShouldFail(shouldFail bool, err error) {
	m.shouldFail = shouldFail
	m.failError = err
}

var _ = Describe("Roster Service", func() {
	var (
		mockRepo *MockRepository
		service  *roster.Service
		slogger  *slog.Logger
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		slogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = roster.NewService(mockRepo, internal.DuplicatePolicyReject, slogger)

		mockRepo.users = []roster.User{
			{EmployeeID: "admin", Name: "Grace Park", Role: roster.RoleAdmin, Department: "Hospital IT Team", Position: "Team Lead", Password: "admin"},
			{EmployeeID: "2024001", Name: "John Hong", Role: roster.RoleStaff, Department: "Director's Office", Position: "Director", Password: "1234"},
		}
	})

	Describe("AddUser", func() {
		Context("with a valid new entry", func() {
			It("should append the entry and persist it", func() {
				user, err := service.AddUser(roster.CreateUserDTO{
					EmployeeID: "2024002",
					Name:       "Mina Seo",
					Password:   "secret",
					Department: "Radiology",
					Position:   "Technician",
					Role:       roster.RoleStaff,
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(user.EmployeeID).To(Equal("2024002"))
				Expect(mockRepo.users).To(HaveLen(3))
				Expect(mockRepo.users[2].Name).To(Equal("Mina Seo"))
			})
		})

		Context("when the employee id is already registered", func() {
			It("should reject under the reject policy", func() {
				_, err := service.AddUser(roster.CreateUserDTO{
					EmployeeID: "2024001",
					Name:       "Someone Else",
					Password:   "pw",
					Role:       roster.RoleStaff,
				})
				Expect(err).To(Equal(internal.ErrDuplicateEmployeeID))
				Expect(mockRepo.users).To(HaveLen(2))
			})

			It("should append under the allow policy", func() {
				service = roster.NewService(mockRepo, internal.DuplicatePolicyAllow, slogger)

				user, err := service.AddUser(roster.CreateUserDTO{
					EmployeeID: "2024001",
					Name:       "Someone Else",
					Password:   "pw",
					Role:       roster.RoleStaff,
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(user).NotTo(BeNil())
				Expect(mockRepo.users).To(HaveLen(3))
			})
		})

		Context("with an invalid form", func() {
			It("should reject a missing employee id", func() {
				_, err := service.AddUser(roster.CreateUserDTO{
					Name:     "No ID",
					Password: "pw",
					Role:     roster.RoleStaff,
				})
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("employee_id"))
			})

			It("should reject an unknown role", func() {
				_, err := service.AddUser(roster.CreateUserDTO{
					EmployeeID: "2024003",
					Name:       "Bad Role",
					Password:   "pw",
					Role:       roster.Role("superuser"),
				})
				Expect(err).To(HaveOccurred())
			})
		})

		Context("when the repository fails", func() {
			BeforeEach(func() {
				mockRepo.SetShouldFail(true, errors.New("disk gone"))
			})

			It("should return an internal error", func() {
				_, err := service.AddUser(roster.CreateUserDTO{
					EmployeeID: "2024003",
					Name:       "Any",
					Password:   "pw",
					Role:       roster.RoleStaff,
				})
				Expect(err).To(HaveOccurred())
				_, ok := internal.IsAppError(err)
				Expect(ok).To(BeTrue())
			})
		})
	})

	Describe("DeleteUser", func() {
		It("should remove every entry with the employee id", func() {
			service = roster.NewService(mockRepo, internal.DuplicatePolicyAllow, slogger)
			_, err := service.AddUser(roster.CreateUserDTO{
				EmployeeID: "2024001",
				Name:       "Second John",
				Password:   "pw",
				Role:       roster.RoleStaff,
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(service.DeleteUser("2024001")).To(Succeed())
			Expect(mockRepo.users).To(HaveLen(1))
			Expect(mockRepo.users[0].EmployeeID).To(Equal("admin"))
		})

		It("should treat an unknown employee id as a no-op", func() {
			Expect(service.DeleteUser("nobody")).To(Succeed())
			Expect(mockRepo.users).To(HaveLen(2))
		})

		It("should not special-case the built-in admin account", func() {
			Expect(service.DeleteUser("admin")).To(Succeed())
			Expect(mockRepo.users).To(HaveLen(1))
			Expect(mockRepo.users[0].EmployeeID).To(Equal("2024001"))
		})
	})

	Describe("ListUsers", func() {
		It("should return the collection in insertion order", func() {
			users, err := service.ListUsers()
			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(HaveLen(2))
			Expect(users[0].EmployeeID).To(Equal("admin"))
			Expect(users[1].EmployeeID).To(Equal("2024001"))
		})
	})

	Describe("FindByCredentials", func() {
		It("should match on employee id and password together", func() {
			user, err := service.FindByCredentials("2024001", "1234")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Name).To(Equal("John Hong"))
		})

		It("should reject a wrong password", func() {
			_, err := service.FindByCredentials("2024001", "wrong")
			Expect(err).To(Equal(internal.ErrInvalidCredentials))
		})

		It("should reject an unknown employee id", func() {
			_, err := service.FindByCredentials("9999", "1234")
			Expect(err).To(Equal(internal.ErrInvalidCredentials))
		})

		It("should resolve duplicate ids to the first entry", func() {
			mockRepo.users = append(mockRepo.users, roster.User{
				EmployeeID: "2024001", Name: "Second John", Role: roster.RoleStaff, Password: "1234",
			})

			user, err := service.FindByCredentials("2024001", "1234")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Name).To(Equal("John Hong"))
		})
	})

	Describe("FindByEmployeeID", func() {
		It("should return the first entry with the id", func() {
			user, err := service.FindByEmployeeID("admin")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Name).To(Equal("Grace Park"))
		})

		It("should return not found for an unknown id", func() {
			_, err := service.FindByEmployeeID("unknown")
			Expect(err).To(Equal(internal.ErrUserNotFound))
		})
	})
})
