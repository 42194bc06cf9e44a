package storage

import (
	"context"
	"countries/pkg/domain"
)

type PreferenceStorage interface {
	// Preference returns the stored preference of user, or nil when the user
	// never stored one.
	Preference(ctx context.Context, user domain.UserID) (*domain.Preference, error)
	// StorePreference inserts or replaces the preference of pref.UserID and
	// returns the stored row.
	StorePreference(ctx context.Context, pref domain.Preference) (*domain.Preference, error)
	// TogglePreference flips the dark mode of user in a single step and returns
	// the stored row. A user without a row ends up with dark mode enabled.
	TogglePreference(ctx context.Context, user domain.UserID) (*domain.Preference, error)
}
