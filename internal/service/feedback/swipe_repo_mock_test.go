package feedback

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
)

var _ swipeRepo = &swipeRepoMock{}

type swipeRepoMock struct {
	CreateFunc              func(ctx context.Context, rec *domain.SwipeRecord) (*domain.SwipeRecord, error)
	ListRecentFunc          func(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.SwipeRecord, error)
	SwipedSuggestionIDsFunc func(ctx context.Context, userID uuid.UUID, suggestionIDs []uuid.UUID) ([]uuid.UUID, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Rec *domain.SwipeRecord
		}
		ListRecent []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
		}
		SwipedSuggestionIDs []struct {
			Ctx           context.Context
			UserID        uuid.UUID
			SuggestionIDs []uuid.UUID
		}
	}
	lockCreate              sync.RWMutex
	lockListRecent          sync.RWMutex
	lockSwipedSuggestionIDs sync.RWMutex
}

func (mock *swipeRepoMock) Create(ctx context.Context, rec *domain.SwipeRecord) (*domain.SwipeRecord, error) {
	if mock.CreateFunc == nil {
		panic("swipeRepoMock.CreateFunc: method is nil but swipeRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec *domain.SwipeRecord
	}{Ctx: ctx, Rec: rec}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *swipeRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rec *domain.SwipeRecord
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *swipeRepoMock) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.SwipeRecord, error) {
	if mock.ListRecentFunc == nil {
		panic("swipeRepoMock.ListRecentFunc: method is nil but swipeRepo.ListRecent was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}{Ctx: ctx, UserID: userID, Limit: limit}
	mock.lockListRecent.Lock()
	mock.calls.ListRecent = append(mock.calls.ListRecent, callInfo)
	mock.lockListRecent.Unlock()
	return mock.ListRecentFunc(ctx, userID, limit)
}

func (mock *swipeRepoMock) ListRecentCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
} {
	mock.lockListRecent.RLock()
	calls := mock.calls.ListRecent
	mock.lockListRecent.RUnlock()
	return calls
}

func (mock *swipeRepoMock) SwipedSuggestionIDs(ctx context.Context, userID uuid.UUID, suggestionIDs []uuid.UUID) ([]uuid.UUID, error) {
	if mock.SwipedSuggestionIDsFunc == nil {
		panic("swipeRepoMock.SwipedSuggestionIDsFunc: method is nil but swipeRepo.SwipedSuggestionIDs was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		UserID        uuid.UUID
		SuggestionIDs []uuid.UUID
	}{Ctx: ctx, UserID: userID, SuggestionIDs: suggestionIDs}
	mock.lockSwipedSuggestionIDs.Lock()
	mock.calls.SwipedSuggestionIDs = append(mock.calls.SwipedSuggestionIDs, callInfo)
	mock.lockSwipedSuggestionIDs.Unlock()
	return mock.SwipedSuggestionIDsFunc(ctx, userID, suggestionIDs)
}

func (mock *swipeRepoMock) SwipedSuggestionIDsCalls() []struct {
	Ctx           context.Context
	UserID        uuid.UUID
	SuggestionIDs []uuid.UUID
} {
	mock.lockSwipedSuggestionIDs.RLock()
	calls := mock.calls.SwipedSuggestionIDs
	mock.lockSwipedSuggestionIDs.RUnlock()
	return calls
}
