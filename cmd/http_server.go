package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/gordonhealth/staff-portal/internal"
	"github.com/gordonhealth/staff-portal/internal/core/events"
	"github.com/gordonhealth/staff-portal/internal/dashboard"
	"github.com/gordonhealth/staff-portal/internal/notice"
	"github.com/gordonhealth/staff-portal/internal/push"
	"github.com/gordonhealth/staff-portal/internal/roster"
	"github.com/gordonhealth/staff-portal/internal/schedule"
	"github.com/gordonhealth/staff-portal/internal/session"
	"github.com/gordonhealth/staff-portal/internal/store"
	"github.com/gordonhealth/staff-portal/internal/transport/rest"
	"github.com/gordonhealth/staff-portal/internal/view"
	"github.com/gordonhealth/staff-portal/internal/welcome"
	"github.com/gordonhealth/staff-portal/pkg/logger"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle portal API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config   *internal.Config
	DB       *gorm.DB
	Router   *chi.Mux
	Handlers rest.Handlers
	Logger   *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(deps.Router, sqlDB(deps.DB), deps.Handlers, deps.Config.Server.AllowedOrigins, deps.Logger)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if db := sqlDB(deps.DB); db != nil {
			if err := db.Close(); err != nil {
				slog.Error("Database close error", "error", err)
			}
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"), config.Observability.Logging.Level)
	lg := logger.LoggerWrapper()

	db, err := store.OpenDB(config.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	if err := store.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate store: %w", err)
	}

	blobs := store.New(db, lg)

	rosterService := roster.NewService(blobs, config.Roster.DuplicatePolicy, lg)
	scheduleService := schedule.NewService(blobs, lg)
	noticeService := notice.NewService()

	tokens := session.NewTokenGenerator(config.Security.TokenSecret, config.Security.TokenDuration)
	sessionService := session.NewService(rosterService, tokens, lg)

	welcomeClient := welcome.NewClient(welcome.Config{
		APIURL:  config.Welcome.APIURL,
		APIKey:  config.Welcome.APIKey,
		Model:   config.Welcome.Model,
		Timeout: config.Welcome.Timeout,
	}, lg)

	bus := events.NewEventBus(lg)
	pushService := push.NewService(bus, config.Push.DispatchDelay, lg)

	dashboardService := dashboard.NewService(scheduleService, noticeService, welcomeClient, lg)

	handlers := rest.Handlers{
		Session:   session.NewHandler(sessionService),
		Roster:    roster.NewHandler(rosterService),
		Schedule:  schedule.NewHandler(scheduleService),
		Notice:    notice.NewHandler(noticeService),
		Push:      push.NewHandler(pushService),
		Dashboard: dashboard.NewHandler(dashboardService, blobs),
		View:      view.NewHandler(),
	}

	return &Dependencies{
		Config:   config,
		Logger:   lg,
		DB:       db,
		Router:   chi.NewRouter(),
		Handlers: handlers,
	}, nil
}

func sqlDB(db *gorm.DB) *sql.DB {
	sdb, err := db.DB()
	if err != nil {
		slog.Error("failed to access underlying sql.DB", "error", err)
		return nil
	}
	return sdb
}
