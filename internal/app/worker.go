package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/postcraft-backend/internal/adapter/llm"
	"github.com/heartmarshall/postcraft-backend/internal/adapter/llm/anthropic"
	"github.com/heartmarshall/postcraft-backend/internal/adapter/llm/openai"
	"github.com/heartmarshall/postcraft-backend/internal/adapter/postgres"
	"github.com/heartmarshall/postcraft-backend/internal/adapter/postgres/run"
	"github.com/heartmarshall/postcraft-backend/internal/adapter/postgres/suggestion"
	"github.com/heartmarshall/postcraft-backend/internal/config"
	"github.com/heartmarshall/postcraft-backend/internal/transport/middleware"
	"github.com/heartmarshall/postcraft-backend/internal/transport/rest"
	"github.com/heartmarshall/postcraft-backend/internal/worker"
)

// Completer is the text generation backend used by the worker.
type Completer interface {
	Complete(ctx context.Context, p llm.Prompt) (string, error)
}

// RunWorker is the generation worker entry point. It serves the dispatch
// endpoints, claims orphaned runs in the background and drains in-flight
// runs on shutdown.
func RunWorker(ctx context.Context) error {
	cfg, err := config.LoadWorker()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting generation worker",
		slog.String("version", BuildVersion()),
		slog.String("llm_provider", cfg.LLM.Provider),
		slog.Int("concurrency", cfg.Worker.Concurrency),
	)

	model, err := NewCompleter(cfg.LLM)
	if err != nil {
		return err
	}

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	clock := clockwork.NewRealClock()

	runner := worker.NewRunner(
		logger,
		run.New(pool),
		suggestion.New(pool),
		postgres.NewTxManager(pool),
		model,
		clock,
		worker.Config{
			Concurrency:   cfg.Worker.Concurrency,
			ClaimInterval: cfg.Worker.ClaimInterval,
			ClaimAfter:    cfg.Worker.ClaimAfter,
			ClaimBatch:    cfg.Worker.ClaimBatch,
			ItemTimeout:   cfg.Worker.ItemTimeout,
		},
	)

	go runner.ClaimLoop(ctx)

	r := chi.NewRouter()
	r.Use(middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
	))
	rest.NewHealthHandler(BuildVersion(), clock,
		rest.Check{Name: "database", Critical: true, Probe: pool.Ping},
	).Routes(r)
	worker.NewHandler(runner, logger).Routes(r)

	srv := &http.Server{
		Addr:              cfg.Worker.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: cfg.Worker.ItemTimeout,
	}

	return serve(ctx, logger, srv, cfg.Worker.ShutdownTimeout, runner.Shutdown)
}

// NewCompleter builds the backend named by cfg.Provider.
func NewCompleter(cfg config.LLMConfig) (Completer, error) {
	switch cfg.Provider {
	case "anthropic":
		c, err := anthropic.New(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.MaxTokens)
		if err != nil {
			return nil, err
		}
		return c, nil
	case "openai":
		c, err := openai.New(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.MaxTokens)
		if err != nil {
			return nil, err
		}
		return c, nil
	case "echo", "":
		return llm.Echo{}, nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
