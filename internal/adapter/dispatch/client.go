// Package dispatch hands generation runs to the generation worker over HTTP.
package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
)

const defaultRetryDelay = 500 * time.Millisecond

// StartRequest is the body sent to the worker when a run is created.
type StartRequest struct {
	UserID    uuid.UUID `json:"userId"`
	Requested int       `json:"requested"`
}

// Client talks to the worker's /runs endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retryDelay time.Duration
	log        *slog.Logger
}

// New creates a Client for the worker at baseURL.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		retryDelay: defaultRetryDelay,
		log:        logger.With("adapter", "dispatch"),
	}
}

// Start asks the worker to begin processing run. The worker answers as soon as
// it has accepted the run; generation continues asynchronously.
func (c *Client) Start(ctx context.Context, run *domain.GenerationRun) error {
	body, err := json.Marshal(StartRequest{UserID: run.UserID, Requested: run.Requested})
	if err != nil {
		return fmt.Errorf("dispatch: encode start: %w", err)
	}

	status, err := c.post(ctx, "/runs/"+run.ID.String()+"/start", body)
	if err != nil {
		return fmt.Errorf("dispatch: start run %s: %w", run.ID, err)
	}

	switch status {
	case http.StatusOK, http.StatusAccepted:
		return nil
	default:
		return fmt.Errorf("dispatch: start run %s: unexpected status %d", run.ID, status)
	}
}

// Cancel tells the worker to stop generating runID. A worker that does not
// know the run answers 404, which is not an error.
func (c *Client) Cancel(ctx context.Context, runID uuid.UUID) error {
	status, err := c.post(ctx, "/runs/"+runID.String()+"/cancel", nil)
	if err != nil {
		return fmt.Errorf("dispatch: cancel run %s: %w", runID, err)
	}

	switch status {
	case http.StatusOK, http.StatusAccepted, http.StatusNoContent, http.StatusNotFound:
		return nil
	default:
		return fmt.Errorf("dispatch: cancel run %s: unexpected status %d", runID, status)
	}
}

func (c *Client) post(ctx context.Context, path string, body []byte) (int, error) {
	resp, err := c.doWithRetry(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	c.log.DebugContext(ctx, "dispatch response",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
	)
	return resp.StatusCode, nil
}

// doWithRetry executes the request with a single retry on 5xx or network
// errors. Worker start and cancel are idempotent per run.
func (c *Client) doWithRetry(ctx context.Context, method, url string, body []byte) (*http.Response, error) {
	resp, err := c.do(ctx, method, url, body)

	shouldRetry := err != nil || resp.StatusCode >= 500
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
		resp.Body.Close()
	}
	c.log.WarnContext(ctx, "dispatch retry", slog.String("url", url), slog.String("reason", reason))

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(c.retryDelay):
	}

	return c.do(ctx, method, url, body)
}

func (c *Client) do(ctx context.Context, method, url string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.httpClient.Do(req)
}

// Ping checks that the worker answers its liveness probe. Not retried.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, c.baseURL+"/live", nil)
	if err != nil {
		return fmt.Errorf("dispatch: ping: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("dispatch: ping: status %d", resp.StatusCode)
	}
	return nil
}
