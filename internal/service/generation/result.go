package generation

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
)

// RequestResult is returned when a new run has been accepted.
type RequestResult struct {
	RunID     uuid.UUID
	Requested int
	Status    domain.RunStatus
}
