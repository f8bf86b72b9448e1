// Package client is a Go client for the postcraft API: the HTTP client plus
// the status poller, suggestion lifecycle projection and feedback recorder
// built on top of it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
)

// GenerationAccepted is returned when the server accepted a new run.
type GenerationAccepted struct {
	RunID     uuid.UUID
	Requested int
	Status    domain.RunStatus
}

// ActiveSet mirrors the server's active suggestions response.
type ActiveSet struct {
	Suggestions []*domain.Suggestion
	ActiveCount int
	MaxActive   int
	CanGenerate bool
}

// API is a thin HTTP client for /api/v1. Server errors are mapped back onto
// the domain error types; network failures and 5xx answers wrap
// domain.ErrTransientIO.
type API struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewAPI creates an API client. token is sent as a bearer token.
func NewAPI(baseURL, token string, timeout time.Duration, logger *slog.Logger) *API {
	return &API{
		baseURL:    strings.TrimRight(baseURL, "/") + "/api/v1",
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("client", "api"),
	}
}

// Authenticated reports whether the client carries an owner identity.
func (a *API) Authenticated() bool {
	return a.token != ""
}

// RequestGeneration asks the server to start a new run.
func (a *API) RequestGeneration(ctx context.Context) (*GenerationAccepted, error) {
	var resp struct {
		RunID     uuid.UUID `json:"runId"`
		Requested int       `json:"requested"`
		Status    string    `json:"status"`
	}
	if err := a.call(ctx, http.MethodPost, "/generation", nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("request generation: %w", err)
	}
	return &GenerationAccepted{RunID: resp.RunID, Requested: resp.Requested, Status: domain.RunStatus(resp.Status)}, nil
}

// CancelGeneration cancels the owner's in-flight run.
func (a *API) CancelGeneration(ctx context.Context) error {
	if err := a.call(ctx, http.MethodDelete, "/generation", nil, nil, nil); err != nil {
		return fmt.Errorf("cancel generation: %w", err)
	}
	return nil
}

// GetStatus returns runID, or the latest run when runID is nil. A nil run
// with a nil error means the owner has never generated.
func (a *API) GetStatus(ctx context.Context, runID *uuid.UUID) (*domain.GenerationRun, error) {
	q := url.Values{}
	if runID != nil {
		q.Set("runId", runID.String())
	}
	run, err := a.getRun(ctx, "/generation/status", q)
	if err != nil {
		return nil, fmt.Errorf("get status: %w", err)
	}
	return run, nil
}

// GetActiveRun returns the owner's pending or generating run, or nil.
func (a *API) GetActiveRun(ctx context.Context) (*domain.GenerationRun, error) {
	run, err := a.getRun(ctx, "/generation/active", nil)
	if err != nil {
		return nil, fmt.Errorf("get active run: %w", err)
	}
	return run, nil
}

func (a *API) getRun(ctx context.Context, path string, q url.Values) (*domain.GenerationRun, error) {
	var raw json.RawMessage
	if err := a.call(ctx, http.MethodGet, path, q, nil, &raw); err != nil {
		return nil, err
	}
	var run runJSON
	if err := json.Unmarshal(raw, &run); err != nil {
		return nil, fmt.Errorf("decode run: %w", err)
	}
	if run.ID == uuid.Nil && run.Status == "none" {
		return nil, nil
	}
	return run.toDomain(), nil
}

// ListActive returns the active set with capacity bookkeeping.
func (a *API) ListActive(ctx context.Context) (*ActiveSet, error) {
	var resp struct {
		Suggestions []suggestionJSON `json:"suggestions"`
		ActiveCount int              `json:"activeCount"`
		MaxActive   int              `json:"maxActive"`
		CanGenerate bool             `json:"canGenerate"`
	}
	if err := a.call(ctx, http.MethodGet, "/suggestions", nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("list active: %w", err)
	}
	set := &ActiveSet{
		Suggestions: make([]*domain.Suggestion, 0, len(resp.Suggestions)),
		ActiveCount: resp.ActiveCount,
		MaxActive:   resp.MaxActive,
		CanGenerate: resp.CanGenerate,
	}
	for _, s := range resp.Suggestions {
		set.Suggestions = append(set.Suggestions, s.toDomain())
	}
	return set, nil
}

// SetSuggestionStatus moves a suggestion to used or dismissed.
func (a *API) SetSuggestionStatus(ctx context.Context, id uuid.UUID, status domain.SuggestionStatus) (*domain.Suggestion, error) {
	var resp suggestionJSON
	body := map[string]string{"status": status.String()}
	if err := a.call(ctx, http.MethodPatch, "/suggestions/"+id.String(), nil, body, &resp); err != nil {
		return nil, fmt.Errorf("set suggestion status: %w", err)
	}
	return resp.toDomain(), nil
}

// RecordSwipe appends one swipe record.
func (a *API) RecordSwipe(ctx context.Context, suggestionID uuid.UUID, action domain.SwipeAction, snapshot *string) (*domain.SwipeRecord, error) {
	body := struct {
		SuggestionID    uuid.UUID `json:"suggestionId"`
		Action          string    `json:"action"`
		ContentSnapshot *string   `json:"contentSnapshot,omitempty"`
	}{suggestionID, action.String(), snapshot}

	var resp swipeJSON
	if err := a.call(ctx, http.MethodPost, "/swipes", nil, body, &resp); err != nil {
		return nil, fmt.Errorf("record swipe: %w", err)
	}
	return resp.toDomain(), nil
}

// SwipeHistory returns the owner's most recent swipes, newest first.
func (a *API) SwipeHistory(ctx context.Context, limit int) ([]*domain.SwipeRecord, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var resp struct {
		Swipes []swipeJSON `json:"swipes"`
	}
	if err := a.call(ctx, http.MethodGet, "/swipes", q, nil, &resp); err != nil {
		return nil, fmt.Errorf("swipe history: %w", err)
	}
	out := make([]*domain.SwipeRecord, 0, len(resp.Swipes))
	for _, s := range resp.Swipes {
		out = append(out, s.toDomain())
	}
	return out, nil
}

// Streaks returns the owner's posting streaks.
func (a *API) Streaks(ctx context.Context) (domain.Streaks, error) {
	var st domain.Streaks
	if err := a.call(ctx, http.MethodGet, "/activity/streaks", nil, nil, &st); err != nil {
		return domain.Streaks{}, fmt.Errorf("streaks: %w", err)
	}
	return st, nil
}

func (a *API) call(ctx context.Context, method, path string, q url.Values, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode body: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	target := a.baseURL + path
	if len(q) > 0 {
		target += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, rd)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", domain.ErrTransientIO, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %v", domain.ErrTransientIO, err)
	}

	a.log.DebugContext(ctx, "api response",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
	)

	if resp.StatusCode >= 400 {
		return decodeError(resp.StatusCode, data)
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError maps an error response back onto the domain error types.
func decodeError(status int, data []byte) error {
	var e apiError
	_ = json.Unmarshal(data, &e)

	switch e.Code {
	case "validation_error":
		fields := make([]domain.FieldError, 0, len(e.Fields))
		for _, f := range e.Fields {
			fields = append(fields, domain.FieldError{Field: f.Field, Message: f.Message})
		}
		if len(fields) == 0 {
			fields = append(fields, domain.FieldError{Field: "request", Message: e.Error})
		}
		return domain.NewValidationErrors(fields)
	case "precondition_failed":
		return &domain.PreconditionError{Reason: e.Error}
	case "capacity_exceeded":
		return &domain.CapacityError{Current: e.Current, Max: e.Max}
	case "conflict":
		id, _ := uuid.Parse(e.RunID)
		return &domain.ConflictError{RunID: id}
	case "unauthorized":
		return domain.ErrUnauthorized
	case "not_found":
		return domain.ErrNotFound
	case "worker_failure":
		return &domain.WorkerError{Message: e.Error}
	}

	switch {
	case status == http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case status == http.StatusNotFound:
		return domain.ErrNotFound
	case status == http.StatusTooManyRequests || status >= 500:
		return fmt.Errorf("%w: status %d", domain.ErrTransientIO, status)
	}

	msg := e.Error
	if msg == "" {
		msg = http.StatusText(status)
	}
	return errors.New("api: " + msg)
}
