package domain

import (
	"time"

	"github.com/google/uuid"
)

// RunStatus is the state of a generation run.
type RunStatus string

const (
	RunStatusPending    RunStatus = "pending"
	RunStatusGenerating RunStatus = "generating"
	RunStatusCompleted  RunStatus = "completed"
	RunStatusFailed     RunStatus = "failed"
	RunStatusCancelled  RunStatus = "cancelled"
)

func (s RunStatus) String() string { return string(s) }

func (s RunStatus) IsValid() bool {
	switch s {
	case RunStatusPending, RunStatusGenerating, RunStatusCompleted, RunStatusFailed, RunStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the run can no longer transition.
func (s RunStatus) IsTerminal() bool {
	switch s {
	case RunStatusCompleted, RunStatusFailed, RunStatusCancelled:
		return true
	}
	return false
}

// InFlightRunStatuses are the statuses of a run that still occupies the
// owner's single generation slot.
var InFlightRunStatuses = []RunStatus{RunStatusPending, RunStatusGenerating}

// GenerationRun is one asynchronous batch of suggestion generation.
type GenerationRun struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Status       RunStatus
	Progress     int
	Requested    int
	Generated    int
	PostTypes    []string
	ErrorMessage *string
	CreatedAt    time.Time
	StartedAt    *time.Time
	CompletedAt  *time.Time
	UpdatedAt    time.Time
}

// IsInFlight reports whether the run is pending or generating.
func (r *GenerationRun) IsInFlight() bool {
	return !r.Status.IsTerminal()
}

// ProgressFor returns the completion percentage for generated out of requested,
// clamped to [0,100].
func ProgressFor(generated, requested int) int {
	if requested <= 0 {
		return 0
	}
	p := generated * 100 / requested
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
