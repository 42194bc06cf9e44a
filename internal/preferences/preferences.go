// Package preferences manages per-user display preferences.
package preferences

import (
	"context"
	"countries/pkg/domain"
	"countries/pkg/logger"
	"countries/pkg/storage"
	"fmt"

	"go.uber.org/zap"
)

//go:generate mockgen -package mockpreferences -source=preferences.go -destination=mock/mockpreferences.go *
type Service interface {
	// DarkMode returns the stored dark mode setting, false when none is stored.
	DarkMode(ctx context.Context, user domain.UserID) (bool, error)
	SetDarkMode(ctx context.Context, user domain.UserID, enabled bool) (*domain.Preference, error)
	// ToggleDarkMode flips and persists the setting.
	ToggleDarkMode(ctx context.Context, user domain.UserID) (*domain.Preference, error)
	// Preference returns the stored preference or the default one.
	Preference(ctx context.Context, user domain.UserID) (*domain.Preference, error)
}

type service struct {
	storage storage.PreferenceStorage
}

func (s *service) Preference(ctx context.Context, user domain.UserID) (*domain.Preference, error) {
	pref, err := s.storage.Preference(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("could not get preference: %w", err)
	}
	if pref == nil {
		return &domain.Preference{UserID: user}, nil
	}

	return pref, nil
}

func (s *service) DarkMode(ctx context.Context, user domain.UserID) (bool, error) {
	pref, err := s.Preference(ctx, user)
	if err != nil {
		return false, err
	}

	return pref.DarkMode, nil
}

func (s *service) SetDarkMode(ctx context.Context, user domain.UserID, enabled bool) (*domain.Preference, error) {
	pref, err := s.storage.StorePreference(ctx, domain.Preference{UserID: user, DarkMode: enabled})
	if err != nil {
		return nil, fmt.Errorf("could not store preference: %w", err)
	}
	logger.Debug(ctx, "dark mode preference stored",
		zap.Stringer("user_id", user), zap.Bool("dark_mode", pref.DarkMode))

	return pref, nil
}

func (s *service) ToggleDarkMode(ctx context.Context, user domain.UserID) (*domain.Preference, error) {
	pref, err := s.storage.TogglePreference(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("could not toggle preference: %w", err)
	}
	logger.Debug(ctx, "dark mode preference toggled",
		zap.Stringer("user_id", user), zap.Bool("dark_mode", pref.DarkMode))

	return pref, nil
}

// New creates a Service persisting to store.
func New(store storage.PreferenceStorage) Service {
	return &service{storage: store}
}
