package roster_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/go-chi/chi"
	"github.com/gordonhealth/staff-portal/internal"
	"github.com/gordonhealth/staff-portal/internal/roster"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Roster Handler", func() {
	var (
		mockRepo *MockRepository
		handler  *roster.Handler
		router   chi.Router
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service := roster.NewService(mockRepo, internal.DuplicatePolicyReject, slogger)
		handler = roster.NewHandler(service)

		router = chi.NewRouter()
		router.Get("/users", handler.ListUsers)
		router.Post("/users", handler.CreateUser)
		router.Delete("/users/{employeeId}", handler.DeleteUser)

		mockRepo.users = []roster.User{
			{EmployeeID: "admin", Name: "Grace Park", Role: roster.RoleAdmin, Password: "admin"},
			{EmployeeID: "2024001", Name: "John Hong", Role: roster.RoleStaff, Password: "1234"},
		}
	})

	Describe("GET /users", func() {
		It("should list the roster with a total", func() {
			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var response roster.UsersResponse
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response.Total).To(Equal(2))
			Expect(response.Users[0].EmployeeID).To(Equal("admin"))
		})
	})

	Describe("POST /users", func() {
		It("should register a valid staff member", func() {
			body, _ := json.Marshal(roster.CreateUserDTO{
				EmployeeID: "2024002",
				Name:       "Mina Seo",
				Password:   "secret",
				Role:       roster.RoleStaff,
			})
			req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(mockRepo.users).To(HaveLen(3))
		})

		It("should return conflict for a duplicate employee id", func() {
			body, _ := json.Marshal(roster.CreateUserDTO{
				EmployeeID: "2024001",
				Name:       "Someone Else",
				Password:   "pw",
				Role:       roster.RoleStaff,
			})
			req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusConflict))
		})

		It("should reject a malformed body", func() {
			req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader([]byte("{not json")))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("DELETE /users/{employeeId}", func() {
		It("should remove a staff member", func() {
			req := httptest.NewRequest(http.MethodDelete, "/users/2024001", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNoContent))
			Expect(mockRepo.users).To(HaveLen(1))
		})

		It("should refuse to remove the built-in admin account", func() {
			req := httptest.NewRequest(http.MethodDelete, "/users/admin", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(mockRepo.users).To(HaveLen(2))
		})
	})
})
