package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/frazier-at-cpcc/tsugi-xapi/internal/api"
	"github.com/frazier-at-cpcc/tsugi-xapi/internal/infrastructure/config"
	"github.com/frazier-at-cpcc/tsugi-xapi/internal/lrs"
	"github.com/frazier-at-cpcc/tsugi-xapi/internal/metrics"
	"github.com/frazier-at-cpcc/tsugi-xapi/internal/service"
	"github.com/frazier-at-cpcc/tsugi-xapi/internal/store"

	_ "github.com/frazier-at-cpcc/tsugi-xapi/docs" // generated swagger docs
)

// @title           xAPI Grade Viewer API
// @version         1.0
// @description     Shows LTI learners their xAPI lab progress, matched against the activities an instructor configured for the course.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey  LaunchToken
// @in                          header
// @name                        Authorization
// @description                 "Bearer <launch token>"

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DatabasePath)
	if err != nil {
		logger.Error("failed to open database", "error", err, "path", cfg.DatabasePath)
		os.Exit(1)
	}
	defer db.Close()

	lrsClient := lrs.NewClient(cfg.LRSEndpoint, cfg.LRSAPIKey, cfg.LRSAPISecret, cfg.LRSTimeout)
	progressSvc := service.NewProgressService(db, lrsClient, logger, cfg.LRSStatementLimit)
	handler := api.NewHandler(db, progressSvc, logger, cfg.Timezone)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := db.Ping(r.Context()); err != nil {
			logger.Error("health check failed", "error", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status": "unavailable"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})
	mux.Handle("GET /metrics", metrics.Handler())

	api.RegisterRoutes(mux, handler, cfg.LaunchSecret)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(cfg.CORSOrigin)(mux))

	// ── Server ──────────────────────────────────────────────────────
	// WriteTimeout leaves room for one LRS fetch per request.
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.LRSTimeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server",
		"address", cfg.ServerAddress,
		"lrs_endpoint", cfg.LRSEndpoint,
		"timezone", cfg.Timezone.String(),
	)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
