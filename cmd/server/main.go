// Service server is the IoT telemetry backend: user accounts, server
// registration, sensor data ingestion, and filtered/aggregated queries.
//
//	@title			IoT Backend API
//	@version		0.0.1
//	@description	CRUD backend for IoT telemetry.
//	@host			localhost:8080
//	@BasePath		/
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/ualcz/exame-backend-dtlabs-2025/internal/auth"
	"github.com/ualcz/exame-backend-dtlabs-2025/internal/config"
	"github.com/ualcz/exame-backend-dtlabs-2025/internal/db"
	"github.com/ualcz/exame-backend-dtlabs-2025/internal/httpx"
	"github.com/ualcz/exame-backend-dtlabs-2025/internal/models"
	"github.com/ualcz/exame-backend-dtlabs-2025/internal/servers"
	"github.com/ualcz/exame-backend-dtlabs-2025/internal/telemetry"

	_ "github.com/ualcz/exame-backend-dtlabs-2025/docs/swagger" // swagger document
)

func main() {
	cfg := config.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	if cfg.MigrationsDir != "" {
		if err := db.Migrate(cfg.DatabaseURL, cfg.MigrationsDir); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
	}

	connCtx, connCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer connCancel()

	pool, err := db.Connect(connCtx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	userStore := auth.NewStore(pool)
	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.AccessTokenTTL)
	authHandler := auth.NewHandler(userStore, issuer)

	serverStore := servers.NewStore(pool)
	serverHandler := servers.NewHandler(serverStore, cfg.FreshnessWindow)

	telemetryStore := telemetry.NewStore(pool)
	telemetryHandler := telemetry.NewHandler(telemetryStore)

	requireUser := auth.RequireUser(userStore, issuer)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler)

	// Health probes.
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, models.HealthResponse{Status: "ok", Service: "iot-backend"})
	})
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Healthy(r.Context(), pool); err != nil {
			httpx.WriteJSON(w, http.StatusServiceUnavailable,
				models.HealthResponse{Status: "unavailable", Service: "iot-backend"})
			return
		}
		httpx.WriteJSON(w, http.StatusOK, models.HealthResponse{Status: "ready", Service: "iot-backend"})
	})

	// Public routes. Ingestion is deliberately tokenless: sensor agents
	// hold only a server id.
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)
	r.Post("/data", telemetryHandler.Ingest)

	// Authenticated routes.
	r.Group(func(r chi.Router) {
		r.Use(requireUser)
		r.Post("/servers", serverHandler.Create)
		r.Get("/health/all", serverHandler.HealthAll)
		r.Get("/health/{server_id}", serverHandler.HealthOne)
		r.Get("/data", telemetryHandler.Query)
	})

	// Swagger UI.
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	serve(cfg, r)
}

func serve(cfg config.Server, handler http.Handler) {
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutting down", "signal", sig)
	case err := <-errCh:
		slog.Error("server error", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
