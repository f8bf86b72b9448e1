package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/heartmarshall/postcraft-backend/internal/domain"
)

// Error codes returned in errorResponse.Code.
const (
	CodeValidation   = "validation_error"
	CodePrecondition = "precondition_failed"
	CodeCapacity     = "capacity_exceeded"
	CodeUnauthorized = "unauthorized"
	CodeNotFound     = "not_found"
	CodeConflict     = "conflict"
	CodeWorker       = "worker_failure"
	CodeUnavailable  = "unavailable"
	CodeInternal     = "internal"
)

// Human-readable guidance for errors the owner can act on.
const (
	msgCapacity     = "You have reached the limit of active suggestions. Review your active suggestions first."
	msgConflict     = "A generation is already running."
	msgUnavailable  = "Service temporarily unavailable. Please try again."
	msgWorkerFailed = "Generation could not be started. Please try again."
)

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error   string               `json:"error"`
	Code    string               `json:"code"`
	Fields  []fieldErrorResponse `json:"fields,omitempty"`
	Current *int                 `json:"current,omitempty"`
	Max     *int                 `json:"max,omitempty"`
	RunID   string               `json:"runId,omitempty"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: message, Code: code})
}

// handleError maps a service error onto an HTTP response.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		capErr      *domain.CapacityError
		conflictErr *domain.ConflictError
		precondErr  *domain.PreconditionError
		validErr    *domain.ValidationError
		workerErr   *domain.WorkerError
	)

	switch {
	case errors.As(err, &validErr):
		resp := errorResponse{Error: validErr.Error(), Code: CodeValidation}
		for _, fe := range validErr.Errors {
			resp.Fields = append(resp.Fields, fieldErrorResponse{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.As(err, &precondErr):
		writeError(w, http.StatusBadRequest, CodePrecondition, capitalize(precondErr.Reason))
	case errors.As(err, &capErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   msgCapacity,
			Code:    CodeCapacity,
			Current: &capErr.Current,
			Max:     &capErr.Max,
		})
	case errors.As(err, &conflictErr):
		resp := errorResponse{Error: msgConflict, Code: CodeConflict}
		if conflictErr.RunID != uuid.Nil {
			resp.RunID = conflictErr.RunID.String()
		}
		writeJSON(w, http.StatusConflict, resp)
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, CodeUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, CodeNotFound, "not found")
	case errors.As(err, &workerErr):
		log.WarnContext(r.Context(), "worker failure", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, CodeWorker, msgWorkerFailed)
	case errors.Is(err, domain.ErrTransientIO):
		log.WarnContext(r.Context(), "transient failure", slog.String("error", err.Error()))
		writeError(w, http.StatusServiceUnavailable, CodeUnavailable, msgUnavailable)
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, CodeInternal, "internal server error")
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if c := s[0]; c >= 'a' && c <= 'z' {
		return string(c-'a'+'A') + s[1:]
	}
	return s
}
