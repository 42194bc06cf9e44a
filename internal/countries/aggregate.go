package countries

import (
	"context"
	"countries/pkg/domain"
	"countries/pkg/logger"
	"countries/pkg/serrors"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Aggregate issues one ByName lookup per name concurrently and waits for all
// of them. Element i of the result is the first record of lookup i, so
// duplicates in names produce duplicate records. The first failure cancels
// the remaining lookups and fails the whole batch; partial lists are never
// returned.
func (s *service) Aggregate(ctx context.Context, names []string) (domain.CountryList, error) {
	if len(names) == 0 {
		return domain.CountryList{}, nil
	}
	for i, name := range names {
		if name == "" {
			return nil, serrors.With(serrors.ErrBadRequest, "country name #%d is empty", i)
		}
	}

	ctx, span := s.tracer.Start(ctx, "countries.Aggregate")
	defer span.End()
	span.SetAttributes(attribute.StringSlice("country.names", names))

	start := time.Now()
	out := make(domain.CountryList, len(names))
	g, gctx := errgroup.WithContext(ctx)
	if s.options.MaxConcurrentLookups > 0 {
		g.SetLimit(s.options.MaxConcurrentLookups)
	}
	for i, name := range names {
		g.Go(func() error {
			list, err := s.source.ByName(gctx, name, false)
			if err != nil {
				return err //nolint: wrapcheck
			}
			if len(list) == 0 {
				return serrors.With(serrors.ErrNotFound, "no country matches %q", name)
			}
			out[i] = list[0]

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Debug(ctx, "country aggregation failed",
			zap.Strings("names", names), zap.Duration("took", time.Since(start)), zap.Error(err))

		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not aggregate countries")
	}

	logger.Debug(ctx, "countries aggregated",
		zap.Int("count", len(out)), zap.Duration("took", time.Since(start)))

	return out, nil
}

// Countries returns the default list. When snapshots are enabled a stored
// snapshot younger than the TTL is served instead of contacting the source.
func (s *service) Countries(ctx context.Context) (domain.CountryList, error) {
	if list := s.freshSnapshot(ctx); list != nil {
		return list, nil
	}

	return s.Aggregate(ctx, s.options.DefaultCountries)
}

func (s *service) freshSnapshot(ctx context.Context) domain.CountryList {
	if !s.options.SnapshotEnabled || s.storage == nil {
		return nil
	}

	snapshot, err := s.storage.LatestSnapshot(ctx)
	if err != nil {
		logger.Warn(ctx, "could not read country snapshot", zap.Error(err))

		return nil
	}
	if snapshot == nil || len(snapshot.Countries) == 0 {
		return nil
	}
	if age := s.now().Sub(snapshot.CreatedAt); s.options.SnapshotTTL > 0 && age > s.options.SnapshotTTL {
		logger.Debug(ctx, "country snapshot expired", zap.Duration("age", age))

		return nil
	}

	return snapshot.Countries
}

// Search runs search mode: an aggregation of the single query. A query no
// country matches surfaces as ErrNotFound.
func (s *service) Search(ctx context.Context, query string) (domain.CountryList, error) {
	if query == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "search query is empty")
	}

	list, err := s.Aggregate(ctx, []string{query})
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			return nil, serrors.Wrap(serrors.ErrNotFound, err, "no country matches %q", query)
		}

		return nil, err
	}

	return list, nil
}
