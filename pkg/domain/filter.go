package domain

// Region is the coarse geographic grouping of a country, e.g. "Africa".
type Region string

// RegionAll disables region filtering. The empty Region has the same meaning.
const RegionAll Region = "All"

// Regions lists the regions reported by the country source.
var Regions = []Region{"Africa", "Americas", "Antarctic", "Asia", "Europe", "Oceania"} //nolint: gochecknoglobals

// IsAll reports whether r matches every country.
func (r Region) IsAll() bool {
	return r == "" || r == RegionAll
}

// FilterCriteria selects the visible subset of a CountryList.
type FilterCriteria struct {
	// Text is matched case-insensitively as a substring of the common name.
	Text string
	// Region is matched exactly unless it is unset or RegionAll.
	Region Region
}
