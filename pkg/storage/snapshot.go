package storage

import (
	"context"
	"countries/pkg/domain"
)

// SnapshotStorage persists the last successfully aggregated country list so
// that it can be served without contacting the country source.
type SnapshotStorage interface {
	// LatestSnapshot returns the stored snapshot, or nil when there is none.
	LatestSnapshot(ctx context.Context) (*domain.Snapshot, error)
	// DeleteSnapshots removes every stored snapshot row.
	DeleteSnapshots(ctx context.Context) error
	// StoreSnapshot stores list, keeping its order.
	StoreSnapshot(ctx context.Context, list domain.CountryList) error
}
