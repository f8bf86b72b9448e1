package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/postcraft-backend/internal/config"
	"github.com/heartmarshall/postcraft-backend/internal/transport/middleware"
)

// Handlers groups the HTTP handlers served by the API.
type Handlers struct {
	Health     *HealthHandler
	Generation *GenerationHandler
	Suggestion *SuggestionHandler
	Feedback   *FeedbackHandler
	Profile    *ProfileHandler
}

// RouterConfig holds the cross-cutting pieces of the router.
type RouterConfig struct {
	Logger *slog.Logger
	CORS   config.CORSConfig
	// Authenticate resolves the caller; anonymous requests are rejected
	// under /api/v1 by RequireAuth.
	Authenticate func(http.Handler) http.Handler
	// LimitGenerate throttles POST /api/v1/generation. Optional.
	LimitGenerate func(http.Handler) http.Handler
}

// NewRouter builds the API router.
func NewRouter(cfg RouterConfig, h Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.Recovery(cfg.Logger),
		middleware.Logger(cfg.Logger),
		middleware.CORS(cfg.CORS),
	)

	h.Health.Routes(r)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(cfg.Authenticate, middleware.RequireAuth)

		h.Generation.Routes(r, cfg.LimitGenerate)
		h.Suggestion.Routes(r)
		h.Feedback.Routes(r)
		h.Profile.Routes(r)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, CodeNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})

	return r
}
