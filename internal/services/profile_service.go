package services

import (
	"context"
	"errors"
	"strings"
	"time"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/storage"
)

type profileService struct {
	gw storage.Gateway
}

// NewProfileService creates a new ProfileServicer.
func NewProfileService(gw storage.Gateway) ProfileServicer {
	return &profileService{gw: gw}
}

// GetProfile returns the onboarding profile, or ErrProfileNotFound for a
// new user.
func (s *profileService) GetProfile(ctx context.Context) (*models.Profile, error) {
	profile, err := s.gw.LoadProfile(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperrors.ErrProfileNotFound
	}
	if err != nil {
		return nil, storageError(err)
	}
	return profile, nil
}

// CompleteOnboarding records the user's name and marks onboarding done.
func (s *profileService) CompleteOnboarding(ctx context.Context, name string) (*models.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}

	profile := models.Profile{
		Name:                   name,
		HasCompletedOnboarding: true,
		JoinedAt:               time.Now(),
	}
	if err := s.gw.SaveProfile(ctx, profile); err != nil {
		return nil, storageError(err)
	}
	return &profile, nil
}

// ClearProfile forgets the user so onboarding starts again.
func (s *profileService) ClearProfile(ctx context.Context) error {
	if err := s.gw.ClearProfile(ctx); err != nil {
		return storageError(err)
	}
	return nil
}
