package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/gordonhealth/staff-portal/internal/dashboard"
	"github.com/gordonhealth/staff-portal/internal/notice"
	"github.com/gordonhealth/staff-portal/internal/push"
	"github.com/gordonhealth/staff-portal/internal/roster"
	"github.com/gordonhealth/staff-portal/internal/schedule"
	"github.com/gordonhealth/staff-portal/internal/session"
	"github.com/gordonhealth/staff-portal/internal/transport/middleware"
	"github.com/gordonhealth/staff-portal/internal/transport/swagger"
	"github.com/gordonhealth/staff-portal/internal/view"
)

// Handlers bundles every feature handler the router mounts.
type Handlers struct {
	Session   *session.Handler
	Roster    *roster.Handler
	Schedule  *schedule.Handler
	Notice    *notice.Handler
	Push      *push.Handler
	Dashboard *dashboard.Handler
	View      *view.Handler
}

// RegisterAllRoutes wires the portal API under /api/v1. Admin-only routes
// carry the role gate at the router, matching the original UI which simply
// never offered those screens to staff.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", h.Session.Login)
			sr.Post("/logout", h.Session.Logout)
		})

		// Everything else requires a session.
		r.Group(func(pr chi.Router) {
			pr.Use(h.Session.AuthMiddleware)

			pr.Get("/navigation", h.View.Navigation)
			pr.Get("/dashboard", h.Dashboard.GetDashboard)
			pr.Get("/notices", h.Notice.ListNotices)

			pr.Get("/events", h.Schedule.ListEvents)
			pr.Get("/calendar/{year}/{month}", h.Schedule.MonthGrid)

			pr.Get("/push/latest", h.Push.LatestBroadcast)

			pr.Get("/install-guide", h.Dashboard.GetInstallGuide)
			pr.Post("/install-guide/dismiss", h.Dashboard.DismissInstallGuide)

			// Admin-only surface.
			pr.Group(func(ar chi.Router) {
				ar.Use(h.Session.RequireAdmin)

				ar.Post("/events", h.Schedule.CreateEvent)
				ar.Delete("/events/{id}", h.Schedule.DeleteEvent)

				ar.Get("/users", h.Roster.ListUsers)
				ar.Post("/users", h.Roster.CreateUser)
				ar.Delete("/users/{employeeId}", h.Roster.DeleteUser)

				ar.Post("/push", h.Push.SendBroadcast)
			})
		})
	})
}
