package client

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
)

var _ suggestionSource = &suggestionSourceMock{}

type suggestionSourceMock struct {
	ListActiveFunc          func(ctx context.Context) (*ActiveSet, error)
	SetSuggestionStatusFunc func(ctx context.Context, id uuid.UUID, status domain.SuggestionStatus) (*domain.Suggestion, error)

	calls struct {
		ListActive []struct {
			Ctx context.Context
		}
		SetSuggestionStatus []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Status domain.SuggestionStatus
		}
	}
	lockListActive          sync.RWMutex
	lockSetSuggestionStatus sync.RWMutex
}

func (mock *suggestionSourceMock) ListActive(ctx context.Context) (*ActiveSet, error) {
	if mock.ListActiveFunc == nil {
		panic("suggestionSourceMock.ListActiveFunc: method is nil but suggestionSource.ListActive was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListActive.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, callInfo)
	mock.lockListActive.Unlock()
	return mock.ListActiveFunc(ctx)
}

func (mock *suggestionSourceMock) ListActiveCalls() []struct {
	Ctx context.Context
} {
	mock.lockListActive.RLock()
	calls := mock.calls.ListActive
	mock.lockListActive.RUnlock()
	return calls
}

func (mock *suggestionSourceMock) SetSuggestionStatus(ctx context.Context, id uuid.UUID, status domain.SuggestionStatus) (*domain.Suggestion, error) {
	if mock.SetSuggestionStatusFunc == nil {
		panic("suggestionSourceMock.SetSuggestionStatusFunc: method is nil but suggestionSource.SetSuggestionStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Status domain.SuggestionStatus
	}{Ctx: ctx, ID: id, Status: status}
	mock.lockSetSuggestionStatus.Lock()
	mock.calls.SetSuggestionStatus = append(mock.calls.SetSuggestionStatus, callInfo)
	mock.lockSetSuggestionStatus.Unlock()
	return mock.SetSuggestionStatusFunc(ctx, id, status)
}

func (mock *suggestionSourceMock) SetSuggestionStatusCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Status domain.SuggestionStatus
} {
	mock.lockSetSuggestionStatus.RLock()
	calls := mock.calls.SetSuggestionStatus
	mock.lockSetSuggestionStatus.RUnlock()
	return calls
}
