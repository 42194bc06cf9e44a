package postgres_test

import (
	"context"
	"countries/pkg/domain"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Preference(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	t.Run("missing preference", func(t *testing.T) {
		t.Parallel()

		pref, err := pgSQL.Preference(ctx, domain.UserID(uuid.New()))
		require.NoError(t, err)
		require.Nil(t, pref)
	})

	t.Run("store then read", func(t *testing.T) {
		t.Parallel()

		user := domain.UserID(uuid.New())
		stored, err := pgSQL.StorePreference(ctx, domain.Preference{UserID: user, DarkMode: true})
		require.NoError(t, err)
		require.Equal(t, user, stored.UserID)
		require.True(t, stored.DarkMode)
		require.WithinDuration(t, time.Now(), stored.UpdatedAt, time.Minute)

		pref, err := pgSQL.Preference(ctx, user)
		require.NoError(t, err)
		require.NotNil(t, pref)
		require.True(t, pref.DarkMode)
	})

	t.Run("upsert replaces existing row", func(t *testing.T) {
		t.Parallel()

		user := domain.UserID(uuid.New())
		_, err := pgSQL.StorePreference(ctx, domain.Preference{UserID: user, DarkMode: true})
		require.NoError(t, err)
		stored, err := pgSQL.StorePreference(ctx, domain.Preference{UserID: user, DarkMode: false})
		require.NoError(t, err)
		require.False(t, stored.DarkMode)

		pref, err := pgSQL.Preference(ctx, user)
		require.NoError(t, err)
		require.False(t, pref.DarkMode)
	})

	t.Run("local user", func(t *testing.T) {
		t.Parallel()

		_, err := pgSQL.StorePreference(ctx, domain.Preference{UserID: domain.LocalUser, DarkMode: true})
		require.NoError(t, err)

		pref, err := pgSQL.Preference(ctx, domain.LocalUser)
		require.NoError(t, err)
		require.Equal(t, domain.LocalUser, pref.UserID)
	})
}

func TestPgSQL_TogglePreference(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	t.Run("missing row starts dark", func(t *testing.T) {
		t.Parallel()

		user := domain.UserID(uuid.New())
		pref, err := pgSQL.TogglePreference(ctx, user)
		require.NoError(t, err)
		require.Equal(t, user, pref.UserID)
		require.True(t, pref.DarkMode)

		pref, err = pgSQL.TogglePreference(ctx, user)
		require.NoError(t, err)
		require.False(t, pref.DarkMode)
	})

	t.Run("concurrent toggles", func(t *testing.T) {
		t.Parallel()

		user := domain.UserID(uuid.New())
		_, err := pgSQL.StorePreference(ctx, domain.Preference{UserID: user, DarkMode: false})
		require.NoError(t, err)

		const toggles = 9
		var wg sync.WaitGroup
		for range toggles {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := pgSQL.TogglePreference(ctx, user)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		pref, err := pgSQL.Preference(ctx, user)
		require.NoError(t, err)
		require.True(t, pref.DarkMode)
	})
}
