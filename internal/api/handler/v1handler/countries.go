package v1handler

import (
	"context"
	"countries/internal/api/specs/v1specs"
	"countries/internal/countries"
	"countries/pkg/domain"
	"countries/pkg/serrors"
	"strings"
)

// ListCountries serves the default list narrowed by the q and region query
// parameters.
func (h *Handler) ListCountries(ctx context.Context, params v1specs.ListCountriesParams) (*v1specs.CountryList, error) {
	list, err := h.countries.Countries(ctx)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	visible := countries.Filter(list, domain.FilterCriteria{
		Text:   strings.TrimSpace(params.Q.Or("")),
		Region: domain.Region(params.Region.Or("")),
	})

	return DomainCountryListToV1Specs(visible, len(list)), nil
}

func (h *Handler) SearchCountries(ctx context.Context, params v1specs.SearchCountriesParams) (*v1specs.CountryList, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "name query parameter is required")
	}

	list, err := h.countries.Search(ctx, name)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainCountryListToV1Specs(list, len(list)), nil
}

func (h *Handler) CountryDetail(ctx context.Context, params v1specs.CountryDetailParams) (*v1specs.CountryDetail, error) {
	detail, err := h.countries.Detail(ctx, params.Name)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainCountryDetailToV1Specs(detail), nil
}

func (h *Handler) ListRegions(_ context.Context) (*v1specs.ListRegionsOK, error) {
	regions := make([]string, 0, len(domain.Regions))
	for _, region := range domain.Regions {
		regions = append(regions, string(region))
	}

	return &v1specs.ListRegionsOK{Regions: regions}, nil
}
