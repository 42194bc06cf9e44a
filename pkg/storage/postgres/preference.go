package postgres

import (
	"context"
	"countries/pkg/domain"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	preferencesTable = "preferences"
)

// Preference returns the preference row of user, or nil when there is none.
func (p *PgSQL) Preference(ctx context.Context, user domain.UserID) (*domain.Preference, error) {
	var row PgPreference
	found, err := p.Builder.From(preferencesTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(user))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch preference from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// StorePreference upserts pref and bumps updated_at.
func (p *PgSQL) StorePreference(ctx context.Context, pref domain.Preference) (*domain.Preference, error) {
	var row PgPreference
	row.FromDomain(pref)

	var result PgPreference
	found, err := p.Builder.Insert(preferencesTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("user_id", goqu.Record{
			"dark_mode":  goqu.I("excluded.dark_mode"),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning(&PgPreference{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not store preference into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store preference into pg: no row returned")
	}

	return result.ToDomain(), nil
}

// TogglePreference negates dark_mode inside the upsert so concurrent toggles
// serialize on the row lock.
func (p *PgSQL) TogglePreference(ctx context.Context, user domain.UserID) (*domain.Preference, error) {
	var row PgPreference
	row.FromDomain(domain.Preference{UserID: user, DarkMode: true})

	var result PgPreference
	found, err := p.Builder.Insert(preferencesTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("user_id", goqu.Record{
			"dark_mode":  goqu.L("NOT " + preferencesTable + ".dark_mode"),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning(&PgPreference{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not toggle preference in pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not toggle preference in pg: no row returned")
	}

	return result.ToDomain(), nil
}
