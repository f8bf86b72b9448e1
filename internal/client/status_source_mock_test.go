package client

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
)

var _ statusSource = &statusSourceMock{}

type statusSourceMock struct {
	GetStatusFunc    func(ctx context.Context, runID *uuid.UUID) (*domain.GenerationRun, error)
	GetActiveRunFunc func(ctx context.Context) (*domain.GenerationRun, error)

	calls struct {
		GetStatus []struct {
			Ctx   context.Context
			RunID *uuid.UUID
		}
		GetActiveRun []struct {
			Ctx context.Context
		}
	}
	lockGetStatus    sync.RWMutex
	lockGetActiveRun sync.RWMutex
}

func (mock *statusSourceMock) GetStatus(ctx context.Context, runID *uuid.UUID) (*domain.GenerationRun, error) {
	if mock.GetStatusFunc == nil {
		panic("statusSourceMock.GetStatusFunc: method is nil but statusSource.GetStatus was just called")
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

func (mock *statusSourceMock) GetStatusCalls() []struct {
	Ctx   context.Context
	RunID *uuid.UUID
} {
	mock.lockGetStatus.RLock()
	calls := mock.calls.GetStatus
	mock.lockGetStatus.RUnlock()
	return calls
}

func (mock *statusSourceMock) GetActiveRun(ctx context.Context) (*domain.GenerationRun, error) {
	if mock.GetActiveRunFunc == nil {
		panic("statusSourceMock.GetActiveRunFunc: method is nil but statusSource.GetActiveRun was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetActiveRun.Lock()
	mock.calls.GetActiveRun = append(mock.calls.GetActiveRun, callInfo)
	mock.lockGetActiveRun.Unlock()
	return mock.GetActiveRunFunc(ctx)
}

func (mock *statusSourceMock) GetActiveRunCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetActiveRun.RLock()
	calls := mock.calls.GetActiveRun
	mock.lockGetActiveRun.RUnlock()
	return calls
}
