package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
	"github.com/heartmarshall/postcraft-backend/internal/service/generation"
	"github.com/heartmarshall/postcraft-backend/internal/transport/middleware"
)

type generationService interface {
	RequestGeneration(ctx context.Context) (*generation.RequestResult, error)
	CancelGeneration(ctx context.Context) error
	GetStatus(ctx context.Context, runID *uuid.UUID) (*domain.GenerationRun, error)
	GetActiveRun(ctx context.Context) (*domain.GenerationRun, error)
	ListRuns(ctx context.Context, limit int) ([]*domain.GenerationRun, error)
}

// GenerationHandler serves the generation controller endpoints.
type GenerationHandler struct {
	svc generationService
	log *slog.Logger
}

// NewGenerationHandler creates a GenerationHandler.
func NewGenerationHandler(svc generationService, logger *slog.Logger) *GenerationHandler {
	return &GenerationHandler{svc: svc, log: logger.With("handler", "generation")}
}

// Routes mounts the generation endpoints. limitStart wraps only the start
// endpoint; pass nil to disable it.
func (h *GenerationHandler) Routes(r chi.Router, limitStart func(http.Handler) http.Handler) {
	r.Route("/generation", func(r chi.Router) {
		r.With(middleware.Chain(limitStart)).Post("/", h.Request)
		r.Delete("/", h.Cancel)
		r.Get("/status", h.Status)
		r.Get("/active", h.Active)
		r.Get("/runs", h.Runs)
	})
}

type requestGenerationResponse struct {
	RunID     uuid.UUID `json:"runId"`
	Requested int       `json:"requested"`
	Status    string    `json:"status"`
}

// Request handles POST /generation.
func (h *GenerationHandler) Request(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.RequestGeneration(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusAccepted, requestGenerationResponse{
		RunID:     res.RunID,
		Requested: res.Requested,
		Status:    res.Status.String(),
	})
}

// Cancel handles DELETE /generation.
func (h *GenerationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.CancelGeneration(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, noRunResponse{Status: domain.RunStatusCancelled.String()})
}

// Status handles GET /generation/status?runId=.
func (h *GenerationHandler) Status(w http.ResponseWriter, r *http.Request) {
	runID, err := queryUUID(r, "runId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	run, err := h.svc.GetStatus(r.Context(), runID)
	h.writeRun(w, r, run, err)
}

// Active handles GET /generation/active.
func (h *GenerationHandler) Active(w http.ResponseWriter, r *http.Request) {
	run, err := h.svc.GetActiveRun(r.Context())
	h.writeRun(w, r, run, err)
}

// Runs handles GET /generation/runs?limit=.
func (h *GenerationHandler) Runs(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	runs, err := h.svc.ListRuns(r.Context(), limit)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	out := make([]runResponse, 0, len(runs))
	for _, run := range runs {
		out = append(out, toRunResponse(run))
	}
	writeJSON(w, http.StatusOK, map[string]any{"runs": out})
}

func (h *GenerationHandler) writeRun(w http.ResponseWriter, r *http.Request, run *domain.GenerationRun, err error) {
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if run == nil {
		writeJSON(w, http.StatusOK, noRun)
		return
	}
	writeJSON(w, http.StatusOK, toRunResponse(run))
}
