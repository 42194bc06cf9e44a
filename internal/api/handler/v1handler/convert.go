package v1handler

import (
	"countries/internal/api/specs/v1specs"
	"countries/pkg/domain"
)

func optString(s string) v1specs.OptString {
	if s == "" {
		return v1specs.OptString{}
	}

	return v1specs.NewOptString(s)
}

// strs never returns nil so required arrays encode as [] instead of null.
func strs(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}

// DomainCountryToV1Specs converts a domain.Country to its wire representation.
func DomainCountryToV1Specs(c *domain.Country) v1specs.Country {
	out := v1specs.Country{
		Code:         optString(c.Code),
		Name:         c.Name,
		OfficialName: optString(c.OfficialName),
		NativeNames:  make([]v1specs.NativeName, 0, len(c.NativeNames)),
		Population:   c.Population,
		Region:       c.Region,
		Subregion:    optString(c.Subregion),
		Capital:      strs(c.Capital),
		FlagURL:      optString(c.FlagURL),
		Tld:          strs(c.TLD),
		Currencies:   make([]v1specs.Currency, 0, len(c.Currencies)),
		Languages:    make([]v1specs.Language, 0, len(c.Languages)),
		Borders:      strs(c.Borders),
	}
	for _, n := range c.NativeNames {
		out.NativeNames = append(out.NativeNames, v1specs.NativeName{
			Locale:   n.Locale,
			Common:   n.Common,
			Official: optString(n.Official),
		})
	}
	for _, cur := range c.Currencies {
		out.Currencies = append(out.Currencies, v1specs.Currency{
			Code:   cur.Code,
			Name:   cur.Name,
			Symbol: optString(cur.Symbol),
		})
	}
	for _, l := range c.Languages {
		out.Languages = append(out.Languages, v1specs.Language{Code: l.Code, Name: l.Name})
	}

	return out
}

// DomainCountryListToV1Specs converts list, where total is the size of the
// list before filtering.
func DomainCountryListToV1Specs(list domain.CountryList, total int) *v1specs.CountryList {
	out := &v1specs.CountryList{
		Total:     total,
		Countries: make([]v1specs.Country, 0, len(list)),
	}
	for i := range list {
		out.Countries = append(out.Countries, DomainCountryToV1Specs(&list[i]))
	}

	return out
}

func DomainCountryDetailToV1Specs(d *domain.CountryDetail) *v1specs.CountryDetail {
	return &v1specs.CountryDetail{
		Country:     DomainCountryToV1Specs(&d.Country),
		BorderNames: strs(d.BorderNames),
	}
}

func DomainPreferenceToV1Specs(p *domain.Preference) *v1specs.Preference {
	out := &v1specs.Preference{DarkMode: p.DarkMode}
	if !p.UpdatedAt.IsZero() {
		out.UpdatedAt = v1specs.NewOptDateTime(p.UpdatedAt.UTC())
	}

	return out
}
