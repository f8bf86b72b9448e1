package generation

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
)

var _ dispatcher = &dispatcherMock{}

type dispatcherMock struct {
	StartFunc  func(ctx context.Context, run *domain.GenerationRun) error
	CancelFunc func(ctx context.Context, runID uuid.UUID) error

	calls struct {
		Start []struct {
			Ctx context.Context
			Run *domain.GenerationRun
		}
		Cancel []struct {
			Ctx   context.Context
			RunID uuid.UUID
		}
	}
	lockStart  sync.RWMutex
	lockCancel sync.RWMutex
}

func (mock *dispatcherMock) Start(ctx context.Context, run *domain.GenerationRun) error {
	if mock.StartFunc == nil {
		panic("dispatcherMock.StartFunc: method is nil but dispatcher.Start was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Run *domain.GenerationRun
	}{Ctx: ctx, Run: run}
	mock.lockStart.Lock()
	mock.calls.Start = append(mock.calls.Start, callInfo)
	mock.lockStart.Unlock()
	return mock.StartFunc(ctx, run)
}

func (mock *dispatcherMock) StartCalls() []struct {
	Ctx context.Context
	Run *domain.GenerationRun
} {
	mock.lockStart.RLock()
	calls := mock.calls.Start
	mock.lockStart.RUnlock()
	return calls
}

func (mock *dispatcherMock) Cancel(ctx context.Context, runID uuid.UUID) error {
	if mock.CancelFunc == nil {
		panic("dispatcherMock.CancelFunc: method is nil but dispatcher.Cancel was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		RunID uuid.UUID
	}{Ctx: ctx, RunID: runID}
	mock.lockCancel.Lock()
	mock.calls.Cancel = append(mock.calls.Cancel, callInfo)
	mock.lockCancel.Unlock()
	return mock.CancelFunc(ctx, runID)
}

func (mock *dispatcherMock) CancelCalls() []struct {
	Ctx   context.Context
	RunID uuid.UUID
} {
	mock.lockCancel.RLock()
	calls := mock.calls.Cancel
	mock.lockCancel.RUnlock()
	return calls
}
