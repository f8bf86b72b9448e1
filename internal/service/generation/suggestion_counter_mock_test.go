package generation

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ suggestionCounter = &suggestionCounterMock{}

type suggestionCounterMock struct {
	CountActiveFunc func(ctx context.Context, userID uuid.UUID) (int, error)

	calls struct {
		CountActive []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockCountActive sync.RWMutex
}

func (mock *suggestionCounterMock) CountActive(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountActiveFunc == nil {
		panic("suggestionCounterMock.CountActiveFunc: method is nil but suggestionCounter.CountActive was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockCountActive.Lock()
	mock.calls.CountActive = append(mock.calls.CountActive, callInfo)
	mock.lockCountActive.Unlock()
	return mock.CountActiveFunc(ctx, userID)
}

func (mock *suggestionCounterMock) CountActiveCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockCountActive.RLock()
	calls := mock.calls.CountActive
	mock.lockCountActive.RUnlock()
	return calls
}
