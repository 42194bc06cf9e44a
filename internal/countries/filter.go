package countries

import (
	"countries/pkg/domain"
	"strings"
)

// Filter returns the countries of list whose common name contains
// criteria.Text (case-insensitive) and whose region equals criteria.Region.
// An empty text or an unset/"All" region matches everything. The input is
// never modified and a new slice is returned on every call.
func Filter(list domain.CountryList, criteria domain.FilterCriteria) domain.CountryList {
	text := strings.ToLower(criteria.Text)
	out := make(domain.CountryList, 0, len(list))
	for i := range list {
		if text != "" && !strings.Contains(strings.ToLower(list[i].Name), text) {
			continue
		}
		if !criteria.Region.IsAll() && list[i].Region != string(criteria.Region) {
			continue
		}
		out = append(out, list[i])
	}

	return out
}
