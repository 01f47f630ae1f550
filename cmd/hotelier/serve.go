package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/vangoframework/hotelier/internal/api"
	"github.com/vangoframework/hotelier/internal/auth"
	"github.com/vangoframework/hotelier/internal/config"
	"github.com/vangoframework/hotelier/internal/database"
	"github.com/vangoframework/hotelier/internal/handlers"
	"github.com/vangoframework/hotelier/internal/metrics"
	"github.com/vangoframework/hotelier/internal/middleware"
	"github.com/vangoframework/hotelier/internal/prefs"
	"github.com/vangoframework/hotelier/internal/templates"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	// Logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Hotel API
	client := api.New(cfg.APIURL, cfg.APITimeout,
		api.WithObserver(m),
		api.WithTracer(otel.Tracer("github.com/vangoframework/hotelier/internal/api")),
	)

	// Saved table views: Postgres when configured, memory otherwise
	var (
		views prefs.Store = prefs.NewMemoryStore()
		opts              = []handlers.Option{handlers.WithTableObserver(m)}
	)
	if cfg.HasDatabase() {
		db, err := database.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()

		store := prefs.NewPostgresStore(db.Pool)
		if err := store.EnsureSchema(ctx); err != nil {
			return err
		}
		views = store
		opts = append(opts, handlers.WithDatabase(db))
	} else {
		logger.Warn("DATABASE_URL not set, table views are kept in memory")
	}

	// Sessions
	sessions := auth.NewSessionStore(cfg.SessionSecret, cfg.SessionMaxAge, cfg.IsProduction())
	verifier := auth.NewTokenVerifier(cfg.JWTKey)
	if !verifier.Verifies() {
		logger.Warn("JWT_KEY not set, API token signatures are not verified")
	}

	// Handlers
	h := handlers.New(cfg, client, sessions, verifier, views, logger, opts...)

	// Router
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Session(sessions, verifier, logger))
	r.Use(middleware.Logger(logger))
	r.Use(m.Middleware)

	r.Handle("/metrics", m.Handler())

	// Form routes are CSRF protected
	r.Group(func(r chi.Router) {
		if !cfg.IsProduction() {
			r.Use(plaintextHTTP)
		}
		r.Use(csrf.Protect(
			[]byte(cfg.CSRFSecret),
			csrf.Secure(cfg.IsProduction()),
			csrf.Path("/"),
			csrf.FieldName(templates.CSRFFieldName),
		))
		h.Routes(r)
	})

	// Server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port, "environment", cfg.Environment, "api", cfg.APIURL)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-shutdown:
	}
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

// plaintextHTTP marks requests as plain HTTP so the CSRF origin checks
// accept a development server without TLS.
func plaintextHTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
	})
}
