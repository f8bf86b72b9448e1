package suggestion

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
)

var _ suggestionRepo = &suggestionRepoMock{}

type suggestionRepoMock struct {
	ListFunc                 func(ctx context.Context, userID uuid.UUID, f domain.SuggestionFilter) ([]*domain.Suggestion, error)
	GetByIDFunc              func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Suggestion, error)
	CountActiveFunc          func(ctx context.Context, userID uuid.UUID) (int, error)
	TransitionFromActiveFunc func(ctx context.Context, userID uuid.UUID, id uuid.UUID, status domain.SuggestionStatus, now time.Time) (*domain.Suggestion, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			F      domain.SuggestionFilter
		}
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
		CountActive []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		TransitionFromActive []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
			Status domain.SuggestionStatus
			Now    time.Time
		}
	}
	lockList                 sync.RWMutex
	lockGetByID              sync.RWMutex
	lockCountActive          sync.RWMutex
	lockTransitionFromActive sync.RWMutex
}

func (mock *suggestionRepoMock) List(ctx context.Context, userID uuid.UUID, f domain.SuggestionFilter) ([]*domain.Suggestion, error) {
	if mock.ListFunc == nil {
		panic("suggestionRepoMock.ListFunc: method is nil but suggestionRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		F      domain.SuggestionFilter
	}{Ctx: ctx, UserID: userID, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, f)
}

func (mock *suggestionRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	F      domain.SuggestionFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *suggestionRepoMock) GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Suggestion, error) {
	if mock.GetByIDFunc == nil {
		panic("suggestionRepoMock.GetByIDFunc: method is nil but suggestionRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{Ctx: ctx, UserID: userID, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, id)
}

func (mock *suggestionRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *suggestionRepoMock) CountActive(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountActiveFunc == nil {
		panic("suggestionRepoMock.CountActiveFunc: method is nil but suggestionRepo.CountActive was just called")
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

func (mock *suggestionRepoMock) CountActiveCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockCountActive.RLock()
	calls := mock.calls.CountActive
	mock.lockCountActive.RUnlock()
	return calls
}

func (mock *suggestionRepoMock) TransitionFromActive(ctx context.Context, userID uuid.UUID, id uuid.UUID, status domain.SuggestionStatus, now time.Time) (*domain.Suggestion, error) {
	if mock.TransitionFromActiveFunc == nil {
		panic("suggestionRepoMock.TransitionFromActiveFunc: method is nil but suggestionRepo.TransitionFromActive was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
		Status domain.SuggestionStatus
		Now    time.Time
	}{Ctx: ctx, UserID: userID, ID: id, Status: status, Now: now}
	mock.lockTransitionFromActive.Lock()
	mock.calls.TransitionFromActive = append(mock.calls.TransitionFromActive, callInfo)
	mock.lockTransitionFromActive.Unlock()
	return mock.TransitionFromActiveFunc(ctx, userID, id, status, now)
}

func (mock *suggestionRepoMock) TransitionFromActiveCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
	Status domain.SuggestionStatus
	Now    time.Time
} {
	mock.lockTransitionFromActive.RLock()
	calls := mock.calls.TransitionFromActive
	mock.lockTransitionFromActive.RUnlock()
	return calls
}
