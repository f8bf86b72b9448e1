package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"
)

const probeTimeout = 3 * time.Second

// Check is a dependency probed by /ready and /health. A failing critical
// check takes the process out of rotation; any other failure only degrades it.
type Check struct {
	Name     string
	Critical bool
	Probe    func(ctx context.Context) error
}

// HealthHandler serves liveness, readiness and component health.
type HealthHandler struct {
	checks  []Check
	version string
	clock   clockwork.Clock
}

func NewHealthHandler(version string, clock clockwork.Clock, checks ...Check) *HealthHandler {
	return &HealthHandler{checks: checks, version: version, clock: clock}
}

// Routes mounts /live, /ready and /health.
func (h *HealthHandler) Routes(r chi.Router) {
	r.Get("/live", h.Live)
	r.Get("/ready", h.Ready)
	r.Get("/health", h.Health)
}

type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

type CompStatus struct {
	Status   string `json:"status"`
	Critical bool   `json:"critical,omitempty"`
	Latency  string `json:"latency,omitempty"`
	Error    string `json:"error,omitempty"`
}

const (
	statusOK       = "ok"
	statusDegraded = "degraded"
	statusDown     = "down"
)

func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeHealth(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: h.clock.Now()})
}

// Ready probes critical checks only.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status, _ := h.probe(r.Context(), true)
	code := http.StatusOK
	if status == statusDown {
		code = http.StatusServiceUnavailable
	}
	writeHealth(w, code, HealthResponse{Status: status, Timestamp: h.clock.Now()})
}

// Health probes every check concurrently and reports per-component latency.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status, components := h.probe(r.Context(), false)
	code := http.StatusOK
	if status == statusDown {
		code = http.StatusServiceUnavailable
	}
	writeHealth(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  h.clock.Now(),
	})
}

func (h *HealthHandler) probe(ctx context.Context, criticalOnly bool) (string, map[string]CompStatus) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	var (
		mu         sync.Mutex
		wg         sync.WaitGroup
		components = make(map[string]CompStatus, len(h.checks))
	)
	for _, c := range h.checks {
		if criticalOnly && !c.Critical {
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			start := h.clock.Now()
			err := c.Probe(ctx)
			cs := CompStatus{Status: statusOK, Critical: c.Critical}
			if err != nil {
				cs.Status = statusDown
				cs.Error = err.Error()
			} else {
				cs.Latency = h.clock.Since(start).String()
			}
			mu.Lock()
			components[c.Name] = cs
			mu.Unlock()
		}()
	}
	wg.Wait()

	overall := statusOK
	for _, cs := range components {
		if cs.Status == statusOK {
			continue
		}
		if cs.Critical {
			return statusDown, components
		}
		overall = statusDegraded
	}
	return overall, components
}

func writeHealth(w http.ResponseWriter, status int, v HealthResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
