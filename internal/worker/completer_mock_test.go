package worker

import (
	"context"
	"sync"

	"github.com/heartmarshall/postcraft-backend/internal/adapter/llm"
)

var _ completer = &completerMock{}

type completerMock struct {
	CompleteFunc func(ctx context.Context, p llm.Prompt) (string, error)

	calls struct {
		Complete []struct {
			Ctx context.Context
			P   llm.Prompt
		}
	}
	lockComplete sync.RWMutex
}

func (mock *completerMock) Complete(ctx context.Context, p llm.Prompt) (string, error) {
	if mock.CompleteFunc == nil {
		panic("completerMock.CompleteFunc: method is nil but completer.Complete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   llm.Prompt
	}{Ctx: ctx, P: p}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, p)
}

func (mock *completerMock) CompleteCalls() []struct {
	Ctx context.Context
	P   llm.Prompt
} {
	mock.lockComplete.RLock()
	calls := mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}
