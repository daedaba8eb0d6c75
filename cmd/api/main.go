// @title           Speaker API
// @version         1.0
// @description     Conference speakers with accepted talks, hypermedia links and conditional GET.
// @BasePath        /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer token minted with cmd/token. Format: "Bearer {token}"
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"speakerservice/config"
	_ "speakerservice/docs"
	"speakerservice/internal/adapters/auth"
	"speakerservice/internal/adapters/sessionize"
	deliveryhttp "speakerservice/internal/delivery/http"
	"speakerservice/internal/delivery/http/controllers"
	"speakerservice/internal/delivery/http/middleware"
	"speakerservice/internal/domain"
	"speakerservice/internal/repository/memory"
	"speakerservice/internal/repository/postgres"
	"speakerservice/internal/services"
	"speakerservice/migrations"

	_ "github.com/lib/pq"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := config.NewLogger(os.Stdout, cfg.Environment, cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := newRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	fetcher := sessionize.NewHTTPFetcher(&http.Client{Timeout: 30 * time.Second}, cfg.SessionizeURL)
	svc := services.NewSpeakerService(repo, fetcher, cfg.RequestTimeout)
	speakerController := controllers.NewSpeakerController(logger, svc, cfg.TalksBasePath)

	requireAuth := middleware.NoAuth
	if cfg.AuthEnabled() {
		requireAuth = middleware.RequireAuth(auth.NewJWTVerifier(cfg.JWTSecret), logger)
	} else {
		logger.Warn("JWT_SECRET not set, mutating routes are unauthenticated")
	}

	router := deliveryhttp.NewRouter(speakerController, requireAuth)
	handler := middleware.RequestID(middleware.LoggingMiddleware(logger, middleware.CORS(cfg.AllowedOrigins, router)))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr, "storage", cfg.Storage, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// newRepository opens the configured storage backend. The returned func releases it.
func newRepository(ctx context.Context, cfg *config.Config, logger *slog.Logger) (domain.SpeakerRepository, func(), error) {
	if cfg.Storage == config.StorageMemory {
		logger.Info("using in-memory storage")
		return memory.NewSpeakerRepository(cfg.PageSize), func() {}, nil
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}
	if err := migrations.Migrate(db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	logger.Info("database ready")
	return postgres.NewSpeakerRepository(db, cfg.PageSize), func() { _ = db.Close() }, nil
}
