package activity

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
)

var _ postingRepo = &postingRepoMock{}

type postingRepoMock struct {
	ListEventsFunc func(ctx context.Context, userID uuid.UUID, since time.Time) ([]*domain.PostingEvent, error)

	calls struct {
		ListEvents []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Since  time.Time
		}
	}
	lockListEvents sync.RWMutex
}

func (mock *postingRepoMock) ListEvents(ctx context.Context, userID uuid.UUID, since time.Time) ([]*domain.PostingEvent, error) {
	if mock.ListEventsFunc == nil {
		panic("postingRepoMock.ListEventsFunc: method is nil but postingRepo.ListEvents was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Since  time.Time
	}{Ctx: ctx, UserID: userID, Since: since}
	mock.lockListEvents.Lock()
	mock.calls.ListEvents = append(mock.calls.ListEvents, callInfo)
	mock.lockListEvents.Unlock()
	return mock.ListEventsFunc(ctx, userID, since)
}

func (mock *postingRepoMock) ListEventsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Since  time.Time
} {
	mock.lockListEvents.RLock()
	calls := mock.calls.ListEvents
	mock.lockListEvents.RUnlock()
	return calls
}
