package client

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
)

var _ swipeStore = &swipeStoreMock{}

type swipeStoreMock struct {
	AuthenticatedFunc func() bool
	RecordSwipeFunc   func(ctx context.Context, suggestionID uuid.UUID, action domain.SwipeAction, snapshot *string) (*domain.SwipeRecord, error)
	SwipeHistoryFunc  func(ctx context.Context, limit int) ([]*domain.SwipeRecord, error)

	calls struct {
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
	}
	lockAuthenticated sync.RWMutex
	lockRecordSwipe   sync.RWMutex
	lockSwipeHistory  sync.RWMutex
}

func (mock *swipeStoreMock) Authenticated() bool {
	if mock.AuthenticatedFunc == nil {
		panic("swipeStoreMock.AuthenticatedFunc: method is nil but swipeStore.Authenticated was just called")
	}
	callInfo := struct{}{}
	mock.lockAuthenticated.Lock()
	mock.calls.Authenticated = append(mock.calls.Authenticated, callInfo)
	mock.lockAuthenticated.Unlock()
	return mock.AuthenticatedFunc()
}

func (mock *swipeStoreMock) AuthenticatedCalls() []struct{} {
	mock.lockAuthenticated.RLock()
	calls := mock.calls.Authenticated
	mock.lockAuthenticated.RUnlock()
	return calls
}

func (mock *swipeStoreMock) RecordSwipe(ctx context.Context, suggestionID uuid.UUID, action domain.SwipeAction, snapshot *string) (*domain.SwipeRecord, error) {
	if mock.RecordSwipeFunc == nil {
		panic("swipeStoreMock.RecordSwipeFunc: method is nil but swipeStore.RecordSwipe was just called")
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

func (mock *swipeStoreMock) RecordSwipeCalls() []struct {
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

func (mock *swipeStoreMock) SwipeHistory(ctx context.Context, limit int) ([]*domain.SwipeRecord, error) {
	if mock.SwipeHistoryFunc == nil {
		panic("swipeStoreMock.SwipeHistoryFunc: method is nil but swipeStore.SwipeHistory was just called")
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

func (mock *swipeStoreMock) SwipeHistoryCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockSwipeHistory.RLock()
	calls := mock.calls.SwipeHistory
	mock.lockSwipeHistory.RUnlock()
	return calls
}
