package profile

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
	"github.com/heartmarshall/postcraft-backend/pkg/ctxutil"
)

type profileRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
	Upsert(ctx context.Context, p *domain.UserProfile) (*domain.UserProfile, error)
}

// Service manages the owner's profile: timezone and onboarding state.
type Service struct {
	profiles profileRepo
	clock    clockwork.Clock
	log      *slog.Logger
}

// NewService creates a new profile Service.
func NewService(log *slog.Logger, profiles profileRepo, clock clockwork.Clock) *Service {
	return &Service{
		profiles: profiles,
		clock:    clock,
		log:      log.With("service", "profile"),
	}
}

// OnboardingInput completes the onboarding wizard.
type OnboardingInput struct {
	Timezone string
}

// Validate checks all fields and collects all errors.
func (i OnboardingInput) Validate() error {
	var errs []domain.FieldError
	switch {
	case i.Timezone == "":
		errs = append(errs, domain.FieldError{Field: "timezone", Message: "required"})
	case len(i.Timezone) > 64:
		errs = append(errs, domain.FieldError{Field: "timezone", Message: "too long"})
	default:
		if _, err := time.LoadLocation(i.Timezone); err != nil {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "invalid IANA timezone"})
		}
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GetProfile returns the owner's profile.
func (s *Service) GetProfile(ctx context.Context) (*domain.UserProfile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// CompleteOnboarding stores the owner's timezone and marks onboarding done.
// Completing it again only updates the timezone.
func (s *Service) CompleteOnboarding(ctx context.Context, input OnboardingInput) (*domain.UserProfile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	p, err := s.profiles.Upsert(ctx, &domain.UserProfile{
		UserID:                userID,
		Timezone:              input.Timezone,
		OnboardingCompletedAt: &now,
		UpdatedAt:             now,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	s.log.InfoContext(ctx, "onboarding completed",
		slog.String("user_id", userID.String()),
		slog.String("timezone", p.Timezone),
	)

	return p, nil
}
