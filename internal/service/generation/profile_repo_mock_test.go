package generation

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	GetFunc func(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)

	calls struct {
		Get []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockGet sync.RWMutex
}

func (mock *profileRepoMock) Get(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	if mock.GetFunc == nil {
		panic("profileRepoMock.GetFunc: method is nil but profileRepo.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userID)
}

func (mock *profileRepoMock) GetCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}
