package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
	"github.com/heartmarshall/postcraft-backend/internal/service/suggestion"
)

type suggestionService interface {
	ListActive(ctx context.Context) (*suggestion.ActiveSet, error)
	List(ctx context.Context, input suggestion.ListInput) ([]*domain.Suggestion, error)
	SetStatus(ctx context.Context, input suggestion.SetStatusInput) (*domain.Suggestion, error)
}

// SuggestionHandler serves the suggestion lifecycle endpoints.
type SuggestionHandler struct {
	svc suggestionService
	log *slog.Logger
}

// NewSuggestionHandler creates a SuggestionHandler.
func NewSuggestionHandler(svc suggestionService, logger *slog.Logger) *SuggestionHandler {
	return &SuggestionHandler{svc: svc, log: logger.With("handler", "suggestion")}
}

// Routes mounts the suggestion endpoints.
func (h *SuggestionHandler) Routes(r chi.Router) {
	r.Get("/suggestions", h.List)
	r.Patch("/suggestions/{id}", h.SetStatus)
}

type activeSetResponse struct {
	Suggestions []suggestionResponse `json:"suggestions"`
	ActiveCount int                  `json:"activeCount"`
	MaxActive   int                  `json:"maxActive"`
	CanGenerate bool                 `json:"canGenerate"`
}

// List handles GET /suggestions. Without filters it returns the active set
// with capacity bookkeeping; with status, runId or limit it returns a plain list.
func (h *SuggestionHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("status") && !q.Has("runId") && !q.Has("limit") {
		set, err := h.svc.ListActive(r.Context())
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, activeSetResponse{
			Suggestions: toSuggestionResponses(set.Suggestions),
			ActiveCount: set.ActiveCount,
			MaxActive:   set.MaxActive,
			CanGenerate: set.CanGenerate,
		})
		return
	}

	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	runID, err := queryUUID(r, "runId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	list, err := h.svc.List(r.Context(), suggestion.ListInput{
		Status: domain.SuggestionStatus(q.Get("status")),
		RunID:  runID,
		Limit:  limit,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"suggestions": toSuggestionResponses(list)})
}

type setStatusRequest struct {
	Status string `json:"status"`
}

// SetStatus handles PATCH /suggestions/{id}.
func (h *SuggestionHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := urlUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req setStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	s, err := h.svc.SetStatus(r.Context(), suggestion.SetStatusInput{
		SuggestionID: id,
		Status:       domain.SuggestionStatus(req.Status),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSuggestionResponse(s))
}
