package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
)

const maxBodyBytes = 64 << 10

type runResponse struct {
	ID            uuid.UUID  `json:"id"`
	Status        string     `json:"status"`
	Progress      int        `json:"progress"`
	Requested     int        `json:"requested"`
	Generated     int        `json:"generated"`
	PostTypesUsed []string   `json:"postTypesUsed"`
	Error         *string    `json:"error,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	StartedAt     *time.Time `json:"startedAt,omitempty"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}

func toRunResponse(run *domain.GenerationRun) runResponse {
	types := run.PostTypes
	if types == nil {
		types = []string{}
	}
	return runResponse{
		ID:            run.ID,
		Status:        run.Status.String(),
		Progress:      run.Progress,
		Requested:     run.Requested,
		Generated:     run.Generated,
		PostTypesUsed: types,
		Error:         run.ErrorMessage,
		CreatedAt:     run.CreatedAt,
		StartedAt:     run.StartedAt,
		CompletedAt:   run.CompletedAt,
	}
}

// noRunResponse is returned when the owner has no run to report.
type noRunResponse struct {
	Status string `json:"status"`
}

var noRun = noRunResponse{Status: "none"}

type suggestionResponse struct {
	ID        uuid.UUID `json:"id"`
	RunID     uuid.UUID `json:"runId"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	PostType  *string   `json:"postType,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toSuggestionResponse(s *domain.Suggestion) suggestionResponse {
	return suggestionResponse{
		ID:        s.ID,
		RunID:     s.RunID,
		Content:   s.Content,
		Status:    s.Status.String(),
		PostType:  s.PostType,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toSuggestionResponses(list []*domain.Suggestion) []suggestionResponse {
	out := make([]suggestionResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSuggestionResponse(s))
	}
	return out
}

type swipeResponse struct {
	ID              uuid.UUID  `json:"id"`
	SuggestionID    *uuid.UUID `json:"suggestionId,omitempty"`
	PostID          *uuid.UUID `json:"postId,omitempty"`
	Action          string     `json:"action"`
	ContentSnapshot *string    `json:"contentSnapshot,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

func toSwipeResponse(rec *domain.SwipeRecord) swipeResponse {
	return swipeResponse{
		ID:              rec.ID,
		SuggestionID:    rec.SuggestionID,
		PostID:          rec.PostID,
		Action:          rec.Action.String(),
		ContentSnapshot: rec.ContentSnapshot,
		CreatedAt:       rec.CreatedAt,
	}
}

type profileResponse struct {
	Timezone              string     `json:"timezone"`
	OnboardingCompleted   bool       `json:"onboardingCompleted"`
	OnboardingCompletedAt *time.Time `json:"onboardingCompletedAt,omitempty"`
}

func toProfileResponse(p *domain.UserProfile) profileResponse {
	return profileResponse{
		Timezone:              p.Timezone,
		OnboardingCompleted:   p.HasCompletedOnboarding(),
		OnboardingCompletedAt: p.OnboardingCompletedAt,
	}
}

// decodeJSON reads a size-limited JSON body into v. Unknown fields are rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.NewValidationError("body", "required")
		}
		return domain.NewValidationError("body", "invalid JSON")
	}
	return nil
}

// queryInt parses an optional integer query parameter; missing means 0.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return n, nil
}

// queryUUID parses an optional uuid query parameter.
func queryUUID(r *http.Request, name string) (*uuid.UUID, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domain.NewValidationError(name, "invalid id")
	}
	return &id, nil
}

// queryUUIDList parses a comma separated list of ids.
func queryUUIDList(r *http.Request, name string) ([]uuid.UUID, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := uuid.Parse(p)
		if err != nil {
			return nil, domain.NewValidationError(name, fmt.Sprintf("invalid id at position %d", i))
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func urlUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "invalid id")
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
