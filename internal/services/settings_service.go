package services

import (
	"context"
	"strings"
	"sync"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/storage"
	"fintrack/internal/validator"
)

type settingsService struct {
	gw storage.Gateway
	mu *sync.Mutex
}

// NewSettingsService creates a new SettingsServicer.
func NewSettingsService(gw storage.Gateway, mu *sync.Mutex) SettingsServicer {
	return &settingsService{gw: gw, mu: lockOrNew(mu)}
}

// GetSettings returns the stored settings merged over the defaults.
func (s *settingsService) GetSettings(ctx context.Context) (*models.Settings, error) {
	stored, err := s.gw.LoadSettings(ctx)
	if err != nil {
		return nil, storageError(err)
	}

	settings := models.DefaultSettings()
	if stored != nil {
		settings = stored.MergeOver(settings)
	}
	return &settings, nil
}

// UpdateSettings changes the set fields and stores the result.
func (s *settingsService) UpdateSettings(ctx context.Context, upd SettingsUpdate) (*models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if upd.WelcomeMessage != nil {
		settings.WelcomeMessage = strings.TrimSpace(*upd.WelcomeMessage)
	}
	if upd.Currency != nil {
		code := strings.ToUpper(strings.TrimSpace(*upd.Currency))
		if !validator.IsCurrency(code) {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "currency must be an ISO 4217 code")
		}
		settings.Currency = code
	}
	if upd.DateFormat != nil {
		format := strings.TrimSpace(*upd.DateFormat)
		if format == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date format is required")
		}
		settings.DateFormat = format
	}
	if upd.Theme != nil {
		switch *upd.Theme {
		case models.ThemeLight, models.ThemeDark:
			settings.Theme = *upd.Theme
		default:
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "theme must be light or dark")
		}
	}

	if err := s.gw.SaveSettings(ctx, *settings); err != nil {
		return nil, storageError(err)
	}
	return settings, nil
}

// ResetSettings stores and returns the default settings.
func (s *settingsService) ResetSettings(ctx context.Context) (*models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := models.DefaultSettings()
	if err := s.gw.SaveSettings(ctx, settings); err != nil {
		return nil, storageError(err)
	}
	return &settings, nil
}
