package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
	"github.com/heartmarshall/postcraft-backend/internal/service/generation"
)

var _ generationService = &generationServiceMock{}

type generationServiceMock struct {
	RequestGenerationFunc func(ctx context.Context) (*generation.RequestResult, error)
	CancelGenerationFunc  func(ctx context.Context) error
	GetStatusFunc         func(ctx context.Context, runID *uuid.UUID) (*domain.GenerationRun, error)
	GetActiveRunFunc      func(ctx context.Context) (*domain.GenerationRun, error)
	ListRunsFunc          func(ctx context.Context, limit int) ([]*domain.GenerationRun, error)

	calls struct {
		RequestGeneration []struct {
			Ctx context.Context
		}
		CancelGeneration []struct {
			Ctx context.Context
		}
		GetStatus []struct {
			Ctx   context.Context
			RunID *uuid.UUID
		}
		GetActiveRun []struct {
			Ctx context.Context
		}
		ListRuns []struct {
			Ctx   context.Context
			Limit int
		}
	}
	lockRequestGeneration sync.RWMutex
	lockCancelGeneration  sync.RWMutex
	lockGetStatus         sync.RWMutex
	lockGetActiveRun      sync.RWMutex
	lockListRuns          sync.RWMutex
}

func (mock *generationServiceMock) RequestGeneration(ctx context.Context) (*generation.RequestResult, error) {
	if mock.RequestGenerationFunc == nil {
		panic("generationServiceMock.RequestGenerationFunc: method is nil but generationService.RequestGeneration was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockRequestGeneration.Lock()
	mock.calls.RequestGeneration = append(mock.calls.RequestGeneration, callInfo)
	mock.lockRequestGeneration.Unlock()
	return mock.RequestGenerationFunc(ctx)
}

func (mock *generationServiceMock) RequestGenerationCalls() []struct {
	Ctx context.Context
} {
	mock.lockRequestGeneration.RLock()
	calls := mock.calls.RequestGeneration
	mock.lockRequestGeneration.RUnlock()
	return calls
}

func (mock *generationServiceMock) CancelGeneration(ctx context.Context) error {
	if mock.CancelGenerationFunc == nil {
		panic("generationServiceMock.CancelGenerationFunc: method is nil but generationService.CancelGeneration was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCancelGeneration.Lock()
	mock.calls.CancelGeneration = append(mock.calls.CancelGeneration, callInfo)
	mock.lockCancelGeneration.Unlock()
	return mock.CancelGenerationFunc(ctx)
}

func (mock *generationServiceMock) CancelGenerationCalls() []struct {
	Ctx context.Context
} {
	mock.lockCancelGeneration.RLock()
	calls := mock.calls.CancelGeneration
	mock.lockCancelGeneration.RUnlock()
	return calls
}

func (mock *generationServiceMock) GetStatus(ctx context.Context, runID *uuid.UUID) (*domain.GenerationRun, error) {
	if mock.GetStatusFunc == nil {
		panic("generationServiceMock.GetStatusFunc: method is nil but generationService.GetStatus was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		RunID *uuid.UUID
	}{Ctx: ctx, RunID: runID}
	mock.lockGetStatus.Lock()
	mock.calls.GetStatus = append(mock.calls.GetStatus, callInfo)
	mock.lockGetStatus.Unlock()
	return mock.GetStatusFunc(ctx, runID)
}

func (mock *generationServiceMock) GetStatusCalls() []struct {
	Ctx   context.Context
	RunID *uuid.UUID
} {
	mock.lockGetStatus.RLock()
	calls := mock.calls.GetStatus
	mock.lockGetStatus.RUnlock()
	return calls
}

func (mock *generationServiceMock) GetActiveRun(ctx context.Context) (*domain.GenerationRun, error) {
	if mock.GetActiveRunFunc == nil {
		panic("generationServiceMock.GetActiveRunFunc: method is nil but generationService.GetActiveRun was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetActiveRun.Lock()
	mock.calls.GetActiveRun = append(mock.calls.GetActiveRun, callInfo)
	mock.lockGetActiveRun.Unlock()
	return mock.GetActiveRunFunc(ctx)
}

func (mock *generationServiceMock) GetActiveRunCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetActiveRun.RLock()
	calls := mock.calls.GetActiveRun
	mock.lockGetActiveRun.RUnlock()
	return calls
}

func (mock *generationServiceMock) ListRuns(ctx context.Context, limit int) ([]*domain.GenerationRun, error) {
	if mock.ListRunsFunc == nil {
		panic("generationServiceMock.ListRunsFunc: method is nil but generationService.ListRuns was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockListRuns.Lock()
	mock.calls.ListRuns = append(mock.calls.ListRuns, callInfo)
	mock.lockListRuns.Unlock()
	return mock.ListRunsFunc(ctx, limit)
}

func (mock *generationServiceMock) ListRunsCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockListRuns.RLock()
	calls := mock.calls.ListRuns
	mock.lockListRuns.RUnlock()
	return calls
}
