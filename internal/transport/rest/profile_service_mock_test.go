package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
	"github.com/heartmarshall/postcraft-backend/internal/service/profile"
)

var _ profileService = &profileServiceMock{}

type profileServiceMock struct {
	GetProfileFunc         func(ctx context.Context) (*domain.UserProfile, error)
	CompleteOnboardingFunc func(ctx context.Context, input profile.OnboardingInput) (*domain.UserProfile, error)

	calls struct {
		GetProfile []struct {
			Ctx context.Context
		}
		CompleteOnboarding []struct {
			Ctx   context.Context
			Input profile.OnboardingInput
		}
	}
	lockGetProfile         sync.RWMutex
	lockCompleteOnboarding sync.RWMutex
}

func (mock *profileServiceMock) GetProfile(ctx context.Context) (*domain.UserProfile, error) {
	if mock.GetProfileFunc == nil {
		panic("profileServiceMock.GetProfileFunc: method is nil but profileService.GetProfile was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetProfile.Lock()
	mock.calls.GetProfile = append(mock.calls.GetProfile, callInfo)
	mock.lockGetProfile.Unlock()
	return mock.GetProfileFunc(ctx)
}

func (mock *profileServiceMock) GetProfileCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetProfile.RLock()
	calls := mock.calls.GetProfile
	mock.lockGetProfile.RUnlock()
	return calls
}

func (mock *profileServiceMock) CompleteOnboarding(ctx context.Context, input profile.OnboardingInput) (*domain.UserProfile, error) {
	if mock.CompleteOnboardingFunc == nil {
		panic("profileServiceMock.CompleteOnboardingFunc: method is nil but profileService.CompleteOnboarding was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input profile.OnboardingInput
	}{Ctx: ctx, Input: input}
	mock.lockCompleteOnboarding.Lock()
	mock.calls.CompleteOnboarding = append(mock.calls.CompleteOnboarding, callInfo)
	mock.lockCompleteOnboarding.Unlock()
	return mock.CompleteOnboardingFunc(ctx, input)
}

func (mock *profileServiceMock) CompleteOnboardingCalls() []struct {
	Ctx   context.Context
	Input profile.OnboardingInput
} {
	mock.lockCompleteOnboarding.RLock()
	calls := mock.calls.CompleteOnboarding
	mock.lockCompleteOnboarding.RUnlock()
	return calls
}

var _ streakService = &streakServiceMock{}

type streakServiceMock struct {
	GetStreaksFunc func(ctx context.Context) (domain.Streaks, error)

	calls struct {
		GetStreaks []struct {
			Ctx context.Context
		}
	}
	lockGetStreaks sync.RWMutex
}

func (mock *streakServiceMock) GetStreaks(ctx context.Context) (domain.Streaks, error) {
	if mock.GetStreaksFunc == nil {
		panic("streakServiceMock.GetStreaksFunc: method is nil but streakService.GetStreaks was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetStreaks.Lock()
	mock.calls.GetStreaks = append(mock.calls.GetStreaks, callInfo)
	mock.lockGetStreaks.Unlock()
	return mock.GetStreaksFunc(ctx)
}

func (mock *streakServiceMock) GetStreaksCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetStreaks.RLock()
	calls := mock.calls.GetStreaks
	mock.lockGetStreaks.RUnlock()
	return calls
}
