package countries

import (
	"context"
	"countries/pkg/domain"
	"countries/pkg/logger"
	"countries/pkg/serrors"
	"errors"

	"go.uber.org/zap"
)

// Detail fetches the exact-name record of name together with the names of
// its neighbours.
func (s *service) Detail(ctx context.Context, name string) (*domain.CountryDetail, error) {
	if name == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "country name is empty")
	}

	list, err := s.source.ByName(ctx, name, true)
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			return nil, serrors.Wrap(serrors.ErrNotFound, err, "country %q not found", name)
		}

		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not fetch country %q", name)
	}
	if len(list) == 0 {
		return nil, serrors.With(serrors.ErrNotFound, "country %q not found", name)
	}

	return &domain.CountryDetail{
		Country:     list[0],
		BorderNames: s.Borders(ctx, list[0].Borders),
	}, nil
}

// Borders resolves codes with a single lookup. Failures are logged and yield
// an empty list.
func (s *service) Borders(ctx context.Context, codes []string) []string {
	if len(codes) == 0 {
		return []string{}
	}

	list, err := s.source.ByCodes(ctx, codes)
	if err != nil {
		logger.Warn(ctx, "could not resolve border countries", zap.Strings("codes", codes), zap.Error(err))

		return []string{}
	}

	return list.Names()
}
