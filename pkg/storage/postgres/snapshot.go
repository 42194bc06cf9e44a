package postgres

import (
	"context"
	"countries/pkg/domain"
	"fmt"

	"github.com/doug-martin/goqu/v9"
)

const (
	snapshotsTable = "country_snapshots"
)

// LatestSnapshot returns the stored snapshot ordered by position, or nil when
// the table is empty. CreatedAt is the oldest row timestamp.
func (p *PgSQL) LatestSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	var rows []PgSnapshotRow
	if err := p.Builder.From(snapshotsTable).
		Order(goqu.I("position").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch snapshot from pg: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	snapshot := &domain.Snapshot{
		Countries: make(domain.CountryList, 0, len(rows)),
		CreatedAt: rows[0].CreatedAt,
	}
	for i := range rows {
		c, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		if rows[i].CreatedAt.Before(snapshot.CreatedAt) {
			snapshot.CreatedAt = rows[i].CreatedAt
		}
		snapshot.Countries = append(snapshot.Countries, *c)
	}

	return snapshot, nil
}

// DeleteSnapshots removes all snapshot rows.
func (p *PgSQL) DeleteSnapshots(ctx context.Context) error {
	if _, err := p.Builder.Delete(snapshotsTable).Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete snapshots in pg: %w", err)
	}

	return nil
}

// StoreSnapshot inserts one row per country. Callers replace an existing
// snapshot by calling DeleteSnapshots first within the same transaction.
func (p *PgSQL) StoreSnapshot(ctx context.Context, list domain.CountryList) error {
	if len(list) == 0 {
		return nil
	}

	rows, err := domainCountriesToPg(list)
	if err != nil {
		return err
	}

	if _, err := p.Builder.Insert(snapshotsTable).
		Rows(rows).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store snapshot into pg: %w", err)
	}

	return nil
}
