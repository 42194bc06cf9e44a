package v1handler

import (
	"context"
	"countries/internal/api/specs/v1specs"
)

func (h *Handler) GetPreferences(ctx context.Context) (*v1specs.Preference, error) {
	userID, _ := UserIDFromContext(ctx)

	pref, err := h.preferences.Preference(ctx, userID)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainPreferenceToV1Specs(pref), nil
}

func (h *Handler) PutPreferences(ctx context.Context, req *v1specs.PutPreferencesReq) (*v1specs.Preference, error) {
	userID, _ := UserIDFromContext(ctx)

	pref, err := h.preferences.SetDarkMode(ctx, userID, req.DarkMode)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainPreferenceToV1Specs(pref), nil
}

// ToggleDarkMode flips the stored setting of the caller in one storage call.
func (h *Handler) ToggleDarkMode(ctx context.Context) (*v1specs.Preference, error) {
	userID, _ := UserIDFromContext(ctx)

	pref, err := h.preferences.ToggleDarkMode(ctx, userID)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainPreferenceToV1Specs(pref), nil
}
