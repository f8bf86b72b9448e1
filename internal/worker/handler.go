package worker

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
)

type runController interface {
	Start(ctx context.Context, runID uuid.UUID) (StartResult, error)
	Cancel(runID uuid.UUID) bool
}

// Handler exposes the runner to the API server.
type Handler struct {
	runner runController
	log    *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(runner runController, logger *slog.Logger) *Handler {
	return &Handler{runner: runner, log: logger.With("handler", "worker")}
}

type runResponse struct {
	RunID  string `json:"runId"`
	Status string `json:"status"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Routes mounts the run endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/runs/{id}/start", h.Start)
	r.Post("/runs/{id}/cancel", h.Cancel)
}

// Start handles POST /runs/{id}/start.
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	runID, ok := parseRunID(w, r)
	if !ok {
		return
	}

	result, err := h.runner.Start(r.Context(), runID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusConflict, errorResponse{Error: "run is not pending"})
			return
		}
		h.log.ErrorContext(r.Context(), "start run",
			slog.String("run_id", runID.String()),
			slog.String("error", err.Error()),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	writeJSON(w, http.StatusAccepted, runResponse{RunID: runID.String(), Status: string(result)})
}

// Cancel handles POST /runs/{id}/cancel.
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	runID, ok := parseRunID(w, r)
	if !ok {
		return
	}

	if !h.runner.Cancel(runID) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "run is not running on this worker"})
		return
	}
	writeJSON(w, http.StatusOK, runResponse{RunID: runID.String(), Status: "cancelling"})
}

func parseRunID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid run id"})
		return uuid.Nil, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
