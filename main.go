package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jonboulle/clockwork"

	"github.com/blogem/access-monitor/alerts"
	"github.com/blogem/access-monitor/config"
	"github.com/blogem/access-monitor/controllers"
	"github.com/blogem/access-monitor/database"
	"github.com/blogem/access-monitor/logger"
	auditmiddleware "github.com/blogem/access-monitor/middleware"
	"github.com/blogem/access-monitor/repositories"
	"github.com/blogem/access-monitor/services"
)

func main() {
	// Load environment variables from .env file, if present
	if err := config.LoadEnvFile(); err != nil {
		log.Fatalf("Failed to load the env vars: %v", err)
	}

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger.Init(cfg.Log.Level)); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// app is the fully wired process state, built once at startup
type app struct {
	router   *chi.Mux
	db       *sql.DB
	auditWG  *sync.WaitGroup
	sinkName string
}

// newApp builds repositories, services and controllers for cfg
func newApp(ctx context.Context, cfg *config.Config, lg *slog.Logger, clock clockwork.Clock) (*app, error) {
	a := &app{auditWG: &sync.WaitGroup{}}

	// Initialize repositories
	var repos *repositories.Repositories
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		db, err := database.Open(cfg.Storage.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		a.db = db
		repos, err = repositories.NewRepositories(ctx, db, clock)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to initialize repositories: %w", err)
		}
		if !cfg.AuditEnabled() {
			repos.Audit = nil
		}
	default:
		repos = repositories.NewMemoryRepositories(clock)
	}

	// Alert sink; fall back to a no-op sink when Firebase is not configured
	var sink interface {
		alerts.Sink
		controllers.ConnectionReporter
	} = alerts.NopSink{}
	a.sinkName = "none"
	firebase := alerts.NewFirebaseSink(cfg.Alerts.Firebase, clock, lg)
	if firebase.Initialize(ctx) {
		sink = firebase
		a.sinkName = "firebase"
	}

	srvs := services.NewServices(repos, sink, clock, lg)
	ctrl := controllers.NewControllers(srvs, sink, cfg.Storage.Driver, lg)
	a.router = setupRouter(ctrl, repos.Audit, cfg.Server.RequestTimeout(), lg, a.auditWG)

	return a, nil
}

// close waits for pending audit writes and releases the database
func (a *app) close() error {
	a.auditWG.Wait()
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// run serves HTTP until ctx is cancelled, then shuts down gracefully
func run(ctx context.Context, cfg *config.Config, lg *slog.Logger) error {
	a, err := newApp(ctx, cfg, lg, clockwork.NewRealClock())
	if err != nil {
		return err
	}
	defer func() {
		if err := a.close(); err != nil {
			lg.Error("Failed to close resources", "error", err)
		}
	}()

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           a.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	fmt.Printf("🚀 Access Monitor starting on %s\n", cfg.Server.Addr())
	fmt.Printf("🗃️  Storage: %s\n", cfg.Storage.Driver)
	lg.Info("Server starting",
		"addr", cfg.Server.Addr(),
		"storage", cfg.Storage.Driver,
		"alert_sink", a.sinkName,
		"audit", a.db != nil && cfg.AuditEnabled(),
	)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	lg.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout())
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, auditRepo repositories.AuditRepository, requestTimeout time.Duration, lg *slog.Logger, auditWG *sync.WaitGroup) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)

	// Audit sits outside Recoverer so recovered panics are recorded as 500s
	if auditRepo != nil {
		r.Use(auditmiddleware.AuditLogger(auditRepo, lg, auditWG))
	}

	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))

	r.Get("/health", ctrl.Health.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/access-logs", func(r chi.Router) {
			r.Get("/", ctrl.AccessLogs.List)
			r.Post("/", ctrl.AccessLogs.Create)
			r.Delete("/", ctrl.AccessLogs.Clear)
		})

		r.Route("/monitoring-status", func(r chi.Router) {
			r.Get("/", ctrl.Monitoring.Get)
			r.Put("/", ctrl.Monitoring.Update)
		})

		r.Get("/alert-sink", ctrl.Health.AlertSink)

		if ctrl.Audit != nil {
			r.Get("/audit-log", ctrl.Audit.List)
		}
	})

	return r
}
