// Package countrysource defines the abstraction over the remote service that
// country records are looked up from.
package countrysource

import (
	"context"
	"countries/pkg/domain"
)

// Client looks up country records on a remote source. Implementations return
// serrors kinds: ErrNotFound when nothing matches, ErrRateLimited,
// ErrTimeout, ErrUnavailable for transport or status failures and
// ErrInternal for malformed bodies.
//
//go:generate mockgen -package mockcountrysource -source=interface.go -destination=mock/mockcountrysource.go *
type Client interface {
	// ByName returns every record matching name. When fullText is set only
	// records whose full name equals name are returned.
	ByName(ctx context.Context, name string, fullText bool) (domain.CountryList, error)
	// ByCodes returns the records for the given ISO alpha-3 codes in the order
	// chosen by the source.
	ByCodes(ctx context.Context, codes []string) (domain.CountryList, error)
}
