package worker

import (
	"context"
	"sync"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
)

var _ suggestionRepo = &suggestionRepoMock{}

type suggestionRepoMock struct {
	CreateFunc func(ctx context.Context, s *domain.Suggestion) (*domain.Suggestion, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			S   *domain.Suggestion
		}
	}
	lockCreate sync.RWMutex
}

func (mock *suggestionRepoMock) Create(ctx context.Context, s *domain.Suggestion) (*domain.Suggestion, error) {
	if mock.CreateFunc == nil {
		panic("suggestionRepoMock.CreateFunc: method is nil but suggestionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Suggestion
	}{Ctx: ctx, S: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *suggestionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   *domain.Suggestion
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
