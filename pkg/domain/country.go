package domain

import "time"

// NativeName is the name of a country in one of its own languages.
type NativeName struct {
	// Locale is the ISO 639-3 code the name is written in.
	Locale   string `json:"locale"`
	Common   string `json:"common"`
	Official string `json:"official,omitempty"`
}

// Currency is a currency in use in a country.
type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol,omitempty"`
}

// Language is a language spoken in a country.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Country is an immutable snapshot of a single country record as returned by
// the remote country source. Slices keep the order in which the source
// listed the entries.
type Country struct {
	// Code is the ISO 3166-1 alpha-3 code (cca3).
	Code string `json:"code,omitempty"`
	// Name is the common name of the country. It is always set.
	Name         string `json:"name"`
	OfficialName string `json:"officialName,omitempty"`

	NativeNames []NativeName `json:"nativeNames,omitempty"`
	Population  int64        `json:"population"`
	Region      string       `json:"region"`
	Subregion   string       `json:"subregion,omitempty"`
	Capital     []string     `json:"capital,omitempty"`
	FlagURL     string       `json:"flagUrl,omitempty"`
	TLD         []string     `json:"tld,omitempty"`
	Currencies  []Currency   `json:"currencies,omitempty"`
	Languages   []Language   `json:"languages,omitempty"`
	// Borders holds the ISO alpha-3 codes of neighbouring countries.
	Borders []string `json:"borders,omitempty"`
}

// CountryList is an ordered sequence of countries. The order is the order in
// which the lookups were issued, it is never sorted.
type CountryList []Country

// Names returns the common names of all countries in list order.
func (l CountryList) Names() []string {
	names := make([]string, 0, len(l))
	for i := range l {
		names = append(names, l[i].Name)
	}

	return names
}

// CountryDetail is a country together with the resolved names of the
// countries it borders.
type CountryDetail struct {
	Country Country `json:"country"`
	// BorderNames follows the order returned by the source, which does not
	// necessarily match Country.Borders.
	BorderNames []string `json:"borderNames"`
}

// Snapshot is the last successfully aggregated default country list.
type Snapshot struct {
	Countries CountryList
	CreatedAt time.Time
}
