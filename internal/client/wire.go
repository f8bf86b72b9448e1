package client

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
)

type apiFieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type apiError struct {
	Error   string          `json:"error"`
	Code    string          `json:"code"`
	Fields  []apiFieldError `json:"fields"`
	Current int             `json:"current"`
	Max     int             `json:"max"`
	RunID   string          `json:"runId"`
}

type runJSON struct {
	ID            uuid.UUID  `json:"id"`
	Status        string     `json:"status"`
	Progress      int        `json:"progress"`
	Requested     int        `json:"requested"`
	Generated     int        `json:"generated"`
	PostTypesUsed []string   `json:"postTypesUsed"`
	Error         *string    `json:"error"`
	CreatedAt     time.Time  `json:"createdAt"`
	StartedAt     *time.Time `json:"startedAt"`
	CompletedAt   *time.Time `json:"completedAt"`
}

func (r runJSON) toDomain() *domain.GenerationRun {
	return &domain.GenerationRun{
		ID:           r.ID,
		Status:       domain.RunStatus(r.Status),
		Progress:     r.Progress,
		Requested:    r.Requested,
		Generated:    r.Generated,
		PostTypes:    r.PostTypesUsed,
		ErrorMessage: r.Error,
		CreatedAt:    r.CreatedAt,
		StartedAt:    r.StartedAt,
		CompletedAt:  r.CompletedAt,
	}
}

type suggestionJSON struct {
	ID        uuid.UUID `json:"id"`
	RunID     uuid.UUID `json:"runId"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	PostType  *string   `json:"postType"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s suggestionJSON) toDomain() *domain.Suggestion {
	return &domain.Suggestion{
		ID:        s.ID,
		RunID:     s.RunID,
		Content:   s.Content,
		Status:    domain.SuggestionStatus(s.Status),
		PostType:  s.PostType,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

type swipeJSON struct {
	ID              uuid.UUID  `json:"id"`
	SuggestionID    *uuid.UUID `json:"suggestionId,omitempty"`
	PostID          *uuid.UUID `json:"postId,omitempty"`
	Action          string     `json:"action"`
	ContentSnapshot *string    `json:"contentSnapshot,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

func (s swipeJSON) toDomain() *domain.SwipeRecord {
	return &domain.SwipeRecord{
		ID:              s.ID,
		SuggestionID:    s.SuggestionID,
		PostID:          s.PostID,
		Action:          domain.SwipeAction(s.Action),
		ContentSnapshot: s.ContentSnapshot,
		CreatedAt:       s.CreatedAt,
	}
}
