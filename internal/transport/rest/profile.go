package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/postcraft-backend/internal/domain"
	"github.com/heartmarshall/postcraft-backend/internal/service/profile"
)

type profileService interface {
	GetProfile(ctx context.Context) (*domain.UserProfile, error)
	CompleteOnboarding(ctx context.Context, input profile.OnboardingInput) (*domain.UserProfile, error)
}

type streakService interface {
	GetStreaks(ctx context.Context) (domain.Streaks, error)
}

// ProfileHandler serves the profile and activity endpoints.
type ProfileHandler struct {
	profiles profileService
	streaks  streakService
	log      *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(profiles profileService, streaks streakService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, streaks: streaks, log: logger.With("handler", "profile")}
}

// Routes mounts the profile endpoints.
func (h *ProfileHandler) Routes(r chi.Router) {
	r.Get("/profile", h.Get)
	r.Put("/profile/onboarding", h.CompleteOnboarding)
	r.Get("/activity/streaks", h.Streaks)
}

// Get handles GET /profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.profiles.GetProfile(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

type onboardingRequest struct {
	Timezone string `json:"timezone"`
}

// CompleteOnboarding handles PUT /profile/onboarding.
func (h *ProfileHandler) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	var req onboardingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	p, err := h.profiles.CompleteOnboarding(r.Context(), profile.OnboardingInput{Timezone: req.Timezone})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// Streaks handles GET /activity/streaks.
func (h *ProfileHandler) Streaks(w http.ResponseWriter, r *http.Request) {
	st, err := h.streaks.GetStreaks(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}
