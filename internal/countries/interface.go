package countries

import (
	"context"
	"countries/pkg/domain"
)

//go:generate mockgen -package mockcountries -source=interface.go -destination=mock/mockcountries.go *
type Service interface {
	// Aggregate looks up every name concurrently and returns the first record
	// of each lookup in request order. Any failed lookup fails the batch.
	Aggregate(ctx context.Context, names []string) (domain.CountryList, error)
	// Countries returns the default country list.
	Countries(ctx context.Context) (domain.CountryList, error)
	// Search aggregates a single free-text query.
	Search(ctx context.Context, query string) (domain.CountryList, error)
	Detail(ctx context.Context, name string) (*domain.CountryDetail, error)
	// Borders resolves alpha-3 codes to common names. It never fails.
	Borders(ctx context.Context, codes []string) []string
	RefreshSnapshot(ctx context.Context) error
	// RequestRefresh enqueues a snapshot refresh. It fails with ErrUnavailable
	// when snapshots are disabled.
	RequestRefresh(ctx context.Context) (bool, error)
}
