package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
	"github.com/heartmarshall/postcraft-backend/internal/service/suggestion"
)

var _ suggestionService = &suggestionServiceMock{}

type suggestionServiceMock struct {
	ListActiveFunc func(ctx context.Context) (*suggestion.ActiveSet, error)
	ListFunc       func(ctx context.Context, input suggestion.ListInput) ([]*domain.Suggestion, error)
	SetStatusFunc  func(ctx context.Context, input suggestion.SetStatusInput) (*domain.Suggestion, error)

	calls struct {
		ListActive []struct {
			Ctx context.Context
		}
		List []struct {
			Ctx   context.Context
			Input suggestion.ListInput
		}
		SetStatus []struct {
			Ctx   context.Context
			Input suggestion.SetStatusInput
		}
	}
	lockListActive sync.RWMutex
	lockList       sync.RWMutex
	lockSetStatus  sync.RWMutex
}

func (mock *suggestionServiceMock) ListActive(ctx context.Context) (*suggestion.ActiveSet, error) {
	if mock.ListActiveFunc == nil {
		panic("suggestionServiceMock.ListActiveFunc: method is nil but suggestionService.ListActive was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListActive.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, callInfo)
	mock.lockListActive.Unlock()
	return mock.ListActiveFunc(ctx)
}

func (mock *suggestionServiceMock) ListActiveCalls() []struct {
	Ctx context.Context
} {
	mock.lockListActive.RLock()
	calls := mock.calls.ListActive
	mock.lockListActive.RUnlock()
	return calls
}

func (mock *suggestionServiceMock) List(ctx context.Context, input suggestion.ListInput) ([]*domain.Suggestion, error) {
	if mock.ListFunc == nil {
		panic("suggestionServiceMock.ListFunc: method is nil but suggestionService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input suggestion.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *suggestionServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input suggestion.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *suggestionServiceMock) SetStatus(ctx context.Context, input suggestion.SetStatusInput) (*domain.Suggestion, error) {
	if mock.SetStatusFunc == nil {
		panic("suggestionServiceMock.SetStatusFunc: method is nil but suggestionService.SetStatus was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input suggestion.SetStatusInput
	}{Ctx: ctx, Input: input}
	mock.lockSetStatus.Lock()
	mock.calls.SetStatus = append(mock.calls.SetStatus, callInfo)
	mock.lockSetStatus.Unlock()
	return mock.SetStatusFunc(ctx, input)
}

func (mock *suggestionServiceMock) SetStatusCalls() []struct {
	Ctx   context.Context
	Input suggestion.SetStatusInput
} {
	mock.lockSetStatus.RLock()
	calls := mock.calls.SetStatus
	mock.lockSetStatus.RUnlock()
	return calls
}
