package restcountries_test

import (
	"countries/pkg/countrysource/restcountries"
	"countries/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

const nigeriaJSON = `[{
	"name": {
		"common": "Nigeria",
		"official": "Federal Republic of Nigeria",
		"nativeName": {
			"eng": {"official": "Federal Republic of Nigeria", "common": "Nigeria"},
			"yor": {"official": "Orílẹ̀-èdè Olómìnira Àpapọ̀ Nàìjíríà", "common": "Nàìjíríà"}
		}
	},
	"tld": [".ng"],
	"cca2": "NG",
	"cca3": "NGA",
	"currencies": {"NGN": {"name": "Nigerian naira", "symbol": "₦"}},
	"capital": ["Abuja"],
	"region": "Africa",
	"subregion": "Western Africa",
	"languages": {"eng": "English", "hau": "Hausa", "ibo": "Igbo", "yor": "Yoruba"},
	"borders": ["BEN", "CMR", "TCD", "NER"],
	"population": 206139587,
	"flags": {"png": "https://flagcdn.com/w320/ng.png", "svg": "https://flagcdn.com/ng.svg"}
}]`

func TestDecodeCountries_full(t *testing.T) {
	list, err := restcountries.DecodeCountries([]byte(nigeriaJSON))
	require.NoError(t, err)
	require.Len(t, list, 1)

	c := list[0]
	require.Equal(t, "NGA", c.Code)
	require.Equal(t, "Nigeria", c.Name)
	require.Equal(t, "Federal Republic of Nigeria", c.OfficialName)
	require.Equal(t, int64(206139587), c.Population)
	require.Equal(t, "Africa", c.Region)
	require.Equal(t, "Western Africa", c.Subregion)
	require.Equal(t, []string{"Abuja"}, c.Capital)
	require.Equal(t, []string{".ng"}, c.TLD)
	require.Equal(t, "https://flagcdn.com/ng.svg", c.FlagURL)
	require.Equal(t, []string{"BEN", "CMR", "TCD", "NER"}, c.Borders)
	require.Equal(t, []domain.Currency{{Code: "NGN", Name: "Nigerian naira", Symbol: "₦"}}, c.Currencies)

	// object key order is preserved
	require.Equal(t, "eng", c.NativeNames[0].Locale)
	require.Equal(t, "yor", c.NativeNames[1].Locale)
	require.Equal(t, "Nàìjíríà", c.NativeNames[1].Common)
	require.Equal(t, []domain.Language{
		{Code: "eng", Name: "English"},
		{Code: "hau", Name: "Hausa"},
		{Code: "ibo", Name: "Igbo"},
		{Code: "yor", Name: "Yoruba"},
	}, c.Languages)
}

func TestDecodeCountries_optionalFields(t *testing.T) {
	list, err := restcountries.DecodeCountries([]byte(`[
		{"name": {"common": "Antarctica", "nativeName": null}, "capital": null, "population": 1000,
		 "region": "Antarctic", "flags": {"png": "https://flagcdn.com/w320/aq.png"}},
		{"name": {"common": "Bouvet Island"}, "population": 0, "borders": []}
	]`))
	require.NoError(t, err)
	require.Len(t, list, 2)

	require.Equal(t, "Antarctica", list[0].Name)
	require.Nil(t, list[0].NativeNames)
	require.Nil(t, list[0].Capital)
	require.Equal(t, "https://flagcdn.com/w320/aq.png", list[0].FlagURL)
	require.Empty(t, list[0].Subregion)
	require.Empty(t, list[0].Currencies)

	require.Equal(t, "Bouvet Island", list[1].Name)
	require.Empty(t, list[1].Borders)
}

func TestDecodeCountries_empty(t *testing.T) {
	list, err := restcountries.DecodeCountries([]byte(`[]`))
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestDecodeCountries_malformed(t *testing.T) {
	for name, body := range map[string]string{
		"not an array":        `{"status": 404, "message": "Not Found"}`,
		"missing common name": `[{"name": {"official": "Nowhere"}}]`,
		"negative population": `[{"name": {"common": "Nowhere"}, "population": -1}]`,
		"wrong type":          `[{"name": {"common": "Nowhere"}, "population": "many"}]`,
		"truncated":           `[{"name": {"common": "Nowh`,
		"trailing garbage":    `[{"name":{"common":"Nigeria"},"region":"Africa"}] <html>oops`,
		"two documents":       `[] []`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := restcountries.DecodeCountries([]byte(body))
			require.Error(t, err)
		})
	}
}
