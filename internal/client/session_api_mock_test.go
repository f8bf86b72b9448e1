package client

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
)

var _ sessionAPI = &sessionAPIMock{}

type sessionAPIMock struct {
	GetStatusFunc           func(ctx context.Context, runID *uuid.UUID) (*domain.GenerationRun, error)
	GetActiveRunFunc        func(ctx context.Context) (*domain.GenerationRun, error)
	ListActiveFunc          func(ctx context.Context) (*ActiveSet, error)
	SetSuggestionStatusFunc func(ctx context.Context, id uuid.UUID, status domain.SuggestionStatus) (*domain.Suggestion, error)
	AuthenticatedFunc       func() bool
	RecordSwipeFunc         func(ctx context.Context, suggestionID uuid.UUID, action domain.SwipeAction, snapshot *string) (*domain.SwipeRecord, error)
	SwipeHistoryFunc        func(ctx context.Context, limit int) ([]*domain.SwipeRecord, error)
	RequestGenerationFunc   func(ctx context.Context) (*GenerationAccepted, error)
	CancelGenerationFunc    func(ctx context.Context) error

	calls struct {
		GetStatus []struct {
			Ctx   context.Context
			RunID *uuid.UUID
		}
		GetActiveRun []struct {
			Ctx context.Context
		}
		ListActive []struct {
			Ctx context.Context
		}
		SetSuggestionStatus []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Status domain.SuggestionStatus
		}
		Authenticated []struct{}
		RecordSwipe []struct {
			Ctx          context.Context
			SuggestionID uuid.UUID
			Action       domain.SwipeAction
			Snapshot     *string
		}
		SwipeHistory []struct {
			Ctx   context.Context
			Limit int
		}
		RequestGeneration []struct {
			Ctx context.Context
		}
		CancelGeneration []struct {
			Ctx context.Context
		}
	}
	lockGetStatus           sync.RWMutex
	lockGetActiveRun        sync.RWMutex
	lockListActive          sync.RWMutex
	lockSetSuggestionStatus sync.RWMutex
	lockAuthenticated       sync.RWMutex
	lockRecordSwipe         sync.RWMutex
	lockSwipeHistory        sync.RWMutex
	lockRequestGeneration   sync.RWMutex
	lockCancelGeneration    sync.RWMutex
}

func (mock *sessionAPIMock) GetStatus(ctx context.Context, runID *uuid.UUID) (*domain.GenerationRun, error) {
	if mock.GetStatusFunc == nil {
		panic("sessionAPIMock.GetStatusFunc: method is nil but sessionAPI.GetStatus was just called")
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

func (mock *sessionAPIMock) GetStatusCalls() []struct {
	Ctx   context.Context
	RunID *uuid.UUID
} {
	mock.lockGetStatus.RLock()
	calls := mock.calls.GetStatus
	mock.lockGetStatus.RUnlock()
	return calls
}

func (mock *sessionAPIMock) GetActiveRun(ctx context.Context) (*domain.GenerationRun, error) {
	if mock.GetActiveRunFunc == nil {
		panic("sessionAPIMock.GetActiveRunFunc: method is nil but sessionAPI.GetActiveRun was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetActiveRun.Lock()
	mock.calls.GetActiveRun = append(mock.calls.GetActiveRun, callInfo)
	mock.lockGetActiveRun.Unlock()
	return mock.GetActiveRunFunc(ctx)
}

func (mock *sessionAPIMock) GetActiveRunCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetActiveRun.RLock()
	calls := mock.calls.GetActiveRun
	mock.lockGetActiveRun.RUnlock()
	return calls
}

func (mock *sessionAPIMock) ListActive(ctx context.Context) (*ActiveSet, error) {
	if mock.ListActiveFunc == nil {
		panic("sessionAPIMock.ListActiveFunc: method is nil but sessionAPI.ListActive was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListActive.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, callInfo)
	mock.lockListActive.Unlock()
	return mock.ListActiveFunc(ctx)
}

func (mock *sessionAPIMock) ListActiveCalls() []struct {
	Ctx context.Context
} {
	mock.lockListActive.RLock()
	calls := mock.calls.ListActive
	mock.lockListActive.RUnlock()
	return calls
}

func (mock *sessionAPIMock) SetSuggestionStatus(ctx context.Context, id uuid.UUID, status domain.SuggestionStatus) (*domain.Suggestion, error) {
	if mock.SetSuggestionStatusFunc == nil {
		panic("sessionAPIMock.SetSuggestionStatusFunc: method is nil but sessionAPI.SetSuggestionStatus was just called")
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

func (mock *sessionAPIMock) SetSuggestionStatusCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Status domain.SuggestionStatus
} {
	mock.lockSetSuggestionStatus.RLock()
	calls := mock.calls.SetSuggestionStatus
	mock.lockSetSuggestionStatus.RUnlock()
	return calls
}

func (mock *sessionAPIMock) Authenticated() bool {
	if mock.AuthenticatedFunc == nil {
		panic("sessionAPIMock.AuthenticatedFunc: method is nil but sessionAPI.Authenticated was just called")
	}
	callInfo := struct{}{}
	mock.lockAuthenticated.Lock()
	mock.calls.Authenticated = append(mock.calls.Authenticated, callInfo)
	mock.lockAuthenticated.Unlock()
	return mock.AuthenticatedFunc()
}

func (mock *sessionAPIMock) AuthenticatedCalls() []struct{} {
	mock.lockAuthenticated.RLock()
	calls := mock.calls.Authenticated
	mock.lockAuthenticated.RUnlock()
	return calls
}

func (mock *sessionAPIMock) RecordSwipe(ctx context.Context, suggestionID uuid.UUID, action domain.SwipeAction, snapshot *string) (*domain.SwipeRecord, error) {
	if mock.RecordSwipeFunc == nil {
		panic("sessionAPIMock.RecordSwipeFunc: method is nil but sessionAPI.RecordSwipe was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		SuggestionID uuid.UUID
		Action       domain.SwipeAction
		Snapshot     *string
	}{Ctx: ctx, SuggestionID: suggestionID, Action: action, Snapshot: snapshot}
	mock.lockRecordSwipe.Lock()
	mock.calls.RecordSwipe = append(mock.calls.RecordSwipe, callInfo)
	mock.lockRecordSwipe.Unlock()
	return mock.RecordSwipeFunc(ctx, suggestionID, action, snapshot)
}

func (mock *sessionAPIMock) RecordSwipeCalls() []struct {
	Ctx          context.Context
	SuggestionID uuid.UUID
	Action       domain.SwipeAction
	Snapshot     *string
} {
	mock.lockRecordSwipe.RLock()
	calls := mock.calls.RecordSwipe
	mock.lockRecordSwipe.RUnlock()
	return calls
}

func (mock *sessionAPIMock) SwipeHistory(ctx context.Context, limit int) ([]*domain.SwipeRecord, error) {
	if mock.SwipeHistoryFunc == nil {
		panic("sessionAPIMock.SwipeHistoryFunc: method is nil but sessionAPI.SwipeHistory was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockSwipeHistory.Lock()
	mock.calls.SwipeHistory = append(mock.calls.SwipeHistory, callInfo)
	mock.lockSwipeHistory.Unlock()
	return mock.SwipeHistoryFunc(ctx, limit)
}

func (mock *sessionAPIMock) SwipeHistoryCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockSwipeHistory.RLock()
	calls := mock.calls.SwipeHistory
	mock.lockSwipeHistory.RUnlock()
	return calls
}

func (mock *sessionAPIMock) RequestGeneration(ctx context.Context) (*GenerationAccepted, error) {
	if mock.RequestGenerationFunc == nil {
		panic("sessionAPIMock.RequestGenerationFunc: method is nil but sessionAPI.RequestGeneration was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockRequestGeneration.Lock()
	mock.calls.RequestGeneration = append(mock.calls.RequestGeneration, callInfo)
	mock.lockRequestGeneration.Unlock()
	return mock.RequestGenerationFunc(ctx)
}

func (mock *sessionAPIMock) RequestGenerationCalls() []struct {
	Ctx context.Context
} {
	mock.lockRequestGeneration.RLock()
	calls := mock.calls.RequestGeneration
	mock.lockRequestGeneration.RUnlock()
	return calls
}

func (mock *sessionAPIMock) CancelGeneration(ctx context.Context) error {
	if mock.CancelGenerationFunc == nil {
		panic("sessionAPIMock.CancelGenerationFunc: method is nil but sessionAPI.CancelGeneration was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCancelGeneration.Lock()
	mock.calls.CancelGeneration = append(mock.calls.CancelGeneration, callInfo)
	mock.lockCancelGeneration.Unlock()
	return mock.CancelGenerationFunc(ctx)
}

func (mock *sessionAPIMock) CancelGenerationCalls() []struct {
	Ctx context.Context
} {
	mock.lockCancelGeneration.RLock()
	calls := mock.calls.CancelGeneration
	mock.lockCancelGeneration.RUnlock()
	return calls
}
