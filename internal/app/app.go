package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/postcraft-backend/internal/adapter/dispatch"
	"github.com/heartmarshall/postcraft-backend/internal/adapter/postgres"
	"github.com/heartmarshall/postcraft-backend/internal/adapter/postgres/posting"
	"github.com/heartmarshall/postcraft-backend/internal/adapter/postgres/profile"
	"github.com/heartmarshall/postcraft-backend/internal/adapter/postgres/run"
	"github.com/heartmarshall/postcraft-backend/internal/adapter/postgres/suggestion"
	"github.com/heartmarshall/postcraft-backend/internal/adapter/postgres/swipe"
	"github.com/heartmarshall/postcraft-backend/internal/auth"
	"github.com/heartmarshall/postcraft-backend/internal/config"
	activitysvc "github.com/heartmarshall/postcraft-backend/internal/service/activity"
	feedbacksvc "github.com/heartmarshall/postcraft-backend/internal/service/feedback"
	generationsvc "github.com/heartmarshall/postcraft-backend/internal/service/generation"
	profilesvc "github.com/heartmarshall/postcraft-backend/internal/service/profile"
	suggestionsvc "github.com/heartmarshall/postcraft-backend/internal/service/suggestion"
	"github.com/heartmarshall/postcraft-backend/internal/transport/middleware"
	"github.com/heartmarshall/postcraft-backend/internal/transport/rest"
)

// Run is the API server entry point. It loads configuration, connects to the
// database, wires repositories, services and handlers, and serves HTTP until
// ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	clock := clockwork.NewRealClock()

	runRepo := run.New(pool)
	suggestionRepo := suggestion.New(pool)
	swipeRepo := swipe.New(pool)
	postingRepo := posting.New(pool)
	profileRepo := profile.New(pool)

	worker := dispatch.New(cfg.Generation.WorkerURL, cfg.Generation.WorkerTimeout, logger)

	generation := generationsvc.NewService(logger, runRepo, suggestionRepo, profileRepo, worker, clock, generationsvc.Config{
		MaxActive: cfg.Generation.MaxActive,
		BatchSize: cfg.Generation.BatchSize,
		PostTypes: cfg.Generation.PostTypes,
	})
	suggestions := suggestionsvc.NewService(logger, suggestionRepo, clock, cfg.Generation.MaxActive)
	feedback := feedbacksvc.NewService(logger, swipeRepo, clock)
	activity := activitysvc.NewService(logger, postingRepo, profileRepo, clock)
	profiles := profilesvc.NewService(logger, profileRepo, clock)

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL, clock)

	limiter := middleware.NewRateLimiter(clock, cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	routerCfg := rest.RouterConfig{
		Logger:       logger,
		CORS:         cfg.CORS,
		Authenticate: middleware.Auth(jwt),
	}
	if n := cfg.RateLimit.GeneratePerMinute; n > 0 {
		routerCfg.LimitGenerate = limiter.LimitBy(n, middleware.ByUser)
	}

	handler := rest.NewRouter(routerCfg, rest.Handlers{
		Health: rest.NewHealthHandler(BuildVersion(), clock,
			rest.Check{Name: "database", Critical: true, Probe: pool.Ping},
			rest.Check{Name: "generator", Probe: worker.Ping},
		),
		Generation: rest.NewGenerationHandler(generation, logger),
		Suggestion: rest.NewSuggestionHandler(suggestions, logger),
		Feedback:   rest.NewFeedbackHandler(feedback, logger),
		Profile:    rest.NewProfileHandler(profiles, activity, logger),
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	return serve(ctx, logger, srv, cfg.Server.ShutdownTimeout, nil)
}

// serve runs srv until ctx is done, then shuts it down within timeout.
// drain, when set, runs after the listener has stopped accepting requests.
func serve(ctx context.Context, logger *slog.Logger, srv *http.Server, timeout time.Duration, drain func(context.Context) error) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", slog.String("error", err.Error()))
	}
	if drain != nil {
		if err := drain(shutdownCtx); err != nil {
			logger.Error("drain", slog.String("error", err.Error()))
		}
	}

	logger.Info("server stopped")
	return nil
}
