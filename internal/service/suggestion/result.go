package suggestion

import "github.com/heartmarshall/postcraft-backend/internal/domain"

// ActiveSet is the owner's active suggestions together with the capacity
// bookkeeping the generate button depends on.
type ActiveSet struct {
	Suggestions []*domain.Suggestion
	ActiveCount int
	MaxActive   int
	CanGenerate bool
}
