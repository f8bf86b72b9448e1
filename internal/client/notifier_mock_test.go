package client

import (
	"sync"
)

var _ Notifier = &NotifierMock{}

type NotifierMock struct {
	InfoFunc    func(msg string)
	SuccessFunc func(msg string)
	ErrorFunc   func(msg string)

	calls struct {
		Info []struct {
			Msg string
		}
		Success []struct {
			Msg string
		}
		Error []struct {
			Msg string
		}
	}
	lockInfo    sync.RWMutex
	lockSuccess sync.RWMutex
	lockError   sync.RWMutex
}

func (mock *NotifierMock) Info(msg string) {
	if mock.InfoFunc == nil {
		panic("NotifierMock.InfoFunc: method is nil but Notifier.Info was just called")
	}
	callInfo := struct {
		Msg string
	}{Msg: msg}
	mock.lockInfo.Lock()
	mock.calls.Info = append(mock.calls.Info, callInfo)
	mock.lockInfo.Unlock()
	mock.InfoFunc(msg)
}

func (mock *NotifierMock) InfoCalls() []struct {
	Msg string
} {
	mock.lockInfo.RLock()
	calls := mock.calls.Info
	mock.lockInfo.RUnlock()
	return calls
}

func (mock *NotifierMock) Success(msg string) {
	if mock.SuccessFunc == nil {
		panic("NotifierMock.SuccessFunc: method is nil but Notifier.Success was just called")
	}
	callInfo := struct {
		Msg string
	}{Msg: msg}
	mock.lockSuccess.Lock()
	mock.calls.Success = append(mock.calls.Success, callInfo)
	mock.lockSuccess.Unlock()
	mock.SuccessFunc(msg)
}

func (mock *NotifierMock) SuccessCalls() []struct {
	Msg string
} {
	mock.lockSuccess.RLock()
	calls := mock.calls.Success
	mock.lockSuccess.RUnlock()
	return calls
}

func (mock *NotifierMock) Error(msg string) {
	if mock.ErrorFunc == nil {
		panic("NotifierMock.ErrorFunc: method is nil but Notifier.Error was just called")
	}
	callInfo := struct {
		Msg string
	}{Msg: msg}
	mock.lockError.Lock()
	mock.calls.Error = append(mock.calls.Error, callInfo)
	mock.lockError.Unlock()
	mock.ErrorFunc(msg)
}

func (mock *NotifierMock) ErrorCalls() []struct {
	Msg string
} {
	mock.lockError.RLock()
	calls := mock.calls.Error
	mock.lockError.RUnlock()
	return calls
}
