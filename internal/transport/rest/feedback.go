package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
	"github.com/heartmarshall/postcraft-backend/internal/service/feedback"
)

type feedbackService interface {
	RecordSwipe(ctx context.Context, input feedback.RecordSwipeInput) (*domain.SwipeRecord, error)
	History(ctx context.Context, limit int) ([]*domain.SwipeRecord, error)
	Stats(ctx context.Context, limit int) (domain.SwipeStats, error)
	Swiped(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error)
}

// FeedbackHandler serves the swipe ledger endpoints.
type FeedbackHandler struct {
	svc feedbackService
	log *slog.Logger
}

// NewFeedbackHandler creates a FeedbackHandler.
func NewFeedbackHandler(svc feedbackService, logger *slog.Logger) *FeedbackHandler {
	return &FeedbackHandler{svc: svc, log: logger.With("handler", "feedback")}
}

// Routes mounts the swipe endpoints.
func (h *FeedbackHandler) Routes(r chi.Router) {
	r.Route("/swipes", func(r chi.Router) {
		r.Post("/", h.Record)
		r.Get("/", h.History)
		r.Get("/stats", h.Stats)
		r.Get("/swiped", h.Swiped)
	})
}

type recordSwipeRequest struct {
	SuggestionID    uuid.UUID `json:"suggestionId"`
	Action          string    `json:"action"`
	ContentSnapshot *string   `json:"contentSnapshot"`
}

// Record handles POST /swipes.
func (h *FeedbackHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req recordSwipeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	rec, err := h.svc.RecordSwipe(r.Context(), feedback.RecordSwipeInput{
		SuggestionID:    req.SuggestionID,
		Action:          domain.SwipeAction(req.Action),
		ContentSnapshot: req.ContentSnapshot,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSwipeResponse(rec))
}

// History handles GET /swipes?limit=.
func (h *FeedbackHandler) History(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	records, err := h.svc.History(r.Context(), limit)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	out := make([]swipeResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, toSwipeResponse(rec))
	}
	writeJSON(w, http.StatusOK, map[string]any{"swipes": out})
}

// Stats handles GET /swipes/stats?limit=.
func (h *FeedbackHandler) Stats(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	stats, err := h.svc.Stats(r.Context(), limit)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Swiped handles GET /swipes/swiped?ids=a,b,c.
func (h *FeedbackHandler) Swiped(w http.ResponseWriter, r *http.Request) {
	ids, err := queryUUIDList(r, "ids")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	swiped, err := h.svc.Swiped(r.Context(), ids)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	out := make(map[string]bool, len(swiped))
	for id, ok := range swiped {
		out[id.String()] = ok
	}
	writeJSON(w, http.StatusOK, map[string]any{"swiped": out})
}
