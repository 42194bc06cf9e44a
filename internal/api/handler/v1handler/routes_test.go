package v1handler_test

import (
	"context"
	"countries/internal/api/handler/v1handler"
	"countries/internal/api/specs/v1specs"
	mockcountries "countries/internal/countries/mock"
	mockpreferences "countries/internal/preferences/mock"
	"countries/pkg/domain"
	"countries/pkg/serrors"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type routesFixture struct {
	countries   *mockcountries.MockService
	preferences *mockpreferences.MockService
	server      *httptest.Server
	token       string
	userID      domain.UserID
}

func newRoutesFixture(t *testing.T) *routesFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	priv, pubPEM := genRSAKeys(t)
	sec := newSecHandlerForTest(t, pubPEM)
	uid := uuid.New()
	now := time.Now()

	f := &routesFixture{
		countries:   mockcountries.NewMockService(ctrl),
		preferences: mockpreferences.NewMockService(ctrl),
		token:       signJWTRS256(t, priv, uid.String(), now, now.Add(time.Hour)),
		userID:      domain.UserID(uid),
	}

	srv, err := v1specs.NewServer(v1handler.New(v1handler.Deps{
		Countries:   f.countries,
		Preferences: f.preferences,
	}), sec, v1specs.WithPathPrefix("/v1"))
	require.NoError(t, err)
	f.server = httptest.NewServer(srv)
	t.Cleanup(f.server.Close)

	return f
}

func (f *routesFixture) do(t *testing.T, method, path, body string, auth bool) (int, map[string]any) {
	t.Helper()

	return f.doWithType(t, method, path, body, "application/json", auth)
}

func (f *routesFixture) doWithType(t *testing.T, method, path, body, contentType string, auth bool) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, f.server.URL+path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if auth {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}

	res, err := f.server.Client().Do(req)
	require.NoError(t, err)
	defer func() {
		_ = res.Body.Close()
	}()
	require.Contains(t, res.Header.Get("Content-Type"), "application/json")

	var out map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))

	return res.StatusCode, out
}

func defaultList() domain.CountryList {
	return domain.CountryList{
		{Code: "NGA", Name: "Nigeria", Region: "Africa", Population: 206139587},
		{Code: "CAN", Name: "Canada", Region: "Americas", Population: 38005238},
		{Code: "POL", Name: "Poland", Region: "Europe", Population: 37950802},
	}
}

func countryNames(t *testing.T, body map[string]any) []string {
	t.Helper()
	items, ok := body["countries"].([]any)
	require.True(t, ok, "countries should be an array: %v", body)

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.(map[string]any)["name"].(string)) //nolint: forcetypeassert
	}

	return names
}

func TestRoutes_ListCountries(t *testing.T) {
	f := newRoutesFixture(t)
	f.countries.EXPECT().Countries(gomock.Any()).Return(defaultList(), nil)

	status, body := f.do(t, http.MethodGet, "/v1/countries", "", false)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, []string{"Nigeria", "Canada", "Poland"}, countryNames(t, body))
	require.InDelta(t, 3, body["total"], 0)
}

func TestRoutes_ListCountries_Filtered(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "text", query: "?q=AN", want: []string{"Canada", "Poland"}},
		{name: "region", query: "?region=Europe", want: []string{"Poland"}},
		{name: "text and region", query: "?q=a&region=Americas", want: []string{"Canada"}},
		{name: "all", query: "?region=All", want: []string{"Nigeria", "Canada", "Poland"}},
		{name: "unknown region", query: "?region=Atlantis", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRoutesFixture(t)
			f.countries.EXPECT().Countries(gomock.Any()).Return(defaultList(), nil)

			status, body := f.do(t, http.MethodGet, "/v1/countries"+tt.query, "", false)
			require.Equal(t, http.StatusOK, status)
			require.Equal(t, tt.want, countryNames(t, body))
			require.InDelta(t, 3, body["total"], 0)
		})
	}
}

func TestRoutes_ListCountries_Unavailable(t *testing.T) {
	f := newRoutesFixture(t)
	f.countries.EXPECT().Countries(gomock.Any()).
		Return(nil, serrors.With(serrors.ErrUnavailable, "could not aggregate countries"))

	status, body := f.do(t, http.MethodGet, "/v1/countries", "", false)
	require.Equal(t, http.StatusServiceUnavailable, status)
	require.Equal(t, serrors.ErrUnavailable.Error(), body["code"])
}

func TestRoutes_SearchCountries(t *testing.T) {
	f := newRoutesFixture(t)
	f.countries.EXPECT().Search(gomock.Any(), "united").
		Return(domain.CountryList{{Name: "United States"}}, nil)

	status, body := f.do(t, http.MethodGet, "/v1/countries/search?name=united", "", false)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, []string{"United States"}, countryNames(t, body))
}

func TestRoutes_SearchCountries_Errors(t *testing.T) {
	f := newRoutesFixture(t)

	status, body := f.do(t, http.MethodGet, "/v1/countries/search?name=%20", "", false)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, serrors.ErrBadRequest.Error(), body["code"])

	status, body = f.do(t, http.MethodGet, "/v1/countries/search", "", false)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, serrors.ErrBadRequest.Error(), body["code"])
	require.Contains(t, body["message"], `"name"`)

	f.countries.EXPECT().Search(gomock.Any(), "zz").Return(nil, serrors.KindOnly(serrors.ErrNotFound))
	status, body = f.do(t, http.MethodGet, "/v1/countries/search?name=zz", "", false)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "resource not found", body["message"])
}

func TestRoutes_CountryDetail(t *testing.T) {
	f := newRoutesFixture(t)
	f.countries.EXPECT().Detail(gomock.Any(), "United Kingdom").Return(&domain.CountryDetail{
		Country: domain.Country{
			Name:        "United Kingdom",
			NativeNames: []domain.NativeName{{Locale: "eng", Common: "United Kingdom"}},
			Borders:     []string{"IRL"},
		},
		BorderNames: []string{"Ireland"},
	}, nil)

	status, body := f.do(t, http.MethodGet, "/v1/countries/United%20Kingdom", "", false)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, []any{"Ireland"}, body["borderNames"])

	country := body["country"].(map[string]any) //nolint: forcetypeassert
	require.Equal(t, "United Kingdom", country["name"])
	require.Equal(t, []any{"IRL"}, country["borders"])
	require.Equal(t, []any{}, country["capital"])
}

func TestRoutes_CountryDetail_NoBorders(t *testing.T) {
	f := newRoutesFixture(t)
	f.countries.EXPECT().Detail(gomock.Any(), "Iceland").Return(&domain.CountryDetail{
		Country:     domain.Country{Name: "Iceland"},
		BorderNames: []string{},
	}, nil)

	status, body := f.do(t, http.MethodGet, "/v1/countries/Iceland", "", false)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, []any{}, body["borderNames"])
}

func TestRoutes_ListRegions(t *testing.T) {
	f := newRoutesFixture(t)

	status, body := f.do(t, http.MethodGet, "/v1/regions", "", false)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, []any{"Africa", "Americas", "Antarctic", "Asia", "Europe", "Oceania"}, body["regions"])
}

func TestRoutes_Preferences_RequireBearer(t *testing.T) {
	f := newRoutesFixture(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/v1/preferences"},
		{http.MethodPut, "/v1/preferences"},
		{http.MethodPost, "/v1/preferences/dark-mode/toggle"},
		{http.MethodPost, "/v1/snapshots"},
	} {
		status, body := f.do(t, route.method, route.path, "", false)
		require.Equal(t, http.StatusUnauthorized, status, route.path)
		require.Equal(t, serrors.ErrUnauthorized.Error(), body["code"])
	}
}

func TestRoutes_GetPreferences(t *testing.T) {
	f := newRoutesFixture(t)
	updatedAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	f.preferences.EXPECT().Preference(gomock.Any(), f.userID).
		Return(&domain.Preference{UserID: f.userID, DarkMode: true, UpdatedAt: updatedAt}, nil)

	status, body := f.do(t, http.MethodGet, "/v1/preferences", "", true)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, true, body["darkMode"])
	require.Equal(t, "2025-01-02T03:04:05Z", body["updatedAt"])
}

func TestRoutes_PutPreferences(t *testing.T) {
	f := newRoutesFixture(t)
	f.preferences.EXPECT().SetDarkMode(gomock.Any(), f.userID, true).
		Return(&domain.Preference{UserID: f.userID, DarkMode: true}, nil)

	status, body := f.do(t, http.MethodPut, "/v1/preferences", `{"darkMode":true,"extra":1}`, true)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, true, body["darkMode"])
}

func TestRoutes_PutPreferences_InvalidBody(t *testing.T) {
	f := newRoutesFixture(t)

	for _, payload := range []string{`{}`, `{"darkMode":"yes"}`, `not json`, `{"darkMode":true} {}`} {
		status, body := f.do(t, http.MethodPut, "/v1/preferences", payload, true)
		require.Equal(t, http.StatusBadRequest, status, payload)
		require.Equal(t, serrors.ErrBadRequest.Error(), body["code"])
	}

	status, body := f.doWithType(t, http.MethodPut, "/v1/preferences", `{"darkMode":true}`, "text/plain", true)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, serrors.ErrBadRequest.Error(), body["code"])
}

func TestRoutes_ToggleDarkMode(t *testing.T) {
	f := newRoutesFixture(t)
	f.preferences.EXPECT().ToggleDarkMode(gomock.Any(), f.userID).
		Return(&domain.Preference{UserID: f.userID, DarkMode: false}, nil)

	status, body := f.do(t, http.MethodPost, "/v1/preferences/dark-mode/toggle", "", true)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, false, body["darkMode"])
}

func TestRoutes_RequestSnapshot(t *testing.T) {
	f := newRoutesFixture(t)
	f.countries.EXPECT().RequestRefresh(gomock.Any()).Return(true, nil)

	status, body := f.do(t, http.MethodPost, "/v1/snapshots", "", true)
	require.Equal(t, http.StatusAccepted, status)
	require.Equal(t, true, body["enqueued"])
}

func TestRoutes_RequestSnapshot_NoStorage(t *testing.T) {
	f := newRoutesFixture(t)
	f.countries.EXPECT().RequestRefresh(gomock.Any()).
		Return(false, serrors.With(serrors.ErrUnavailable, "snapshot storage is not configured"))

	status, body := f.do(t, http.MethodPost, "/v1/snapshots", "", true)
	require.Equal(t, http.StatusServiceUnavailable, status)
	require.Equal(t, "snapshot storage is not configured", body["message"])
}

func TestRoutes_RequestSnapshot_Disabled(t *testing.T) {
	f := newRoutesFixture(t)
	f.countries.EXPECT().RequestRefresh(gomock.Any()).
		Return(false, serrors.With(serrors.ErrUnavailable, "snapshots are disabled"))

	status, body := f.do(t, http.MethodPost, "/v1/snapshots", "", true)
	require.Equal(t, http.StatusServiceUnavailable, status)
	require.Equal(t, "snapshots are disabled", body["message"])
}

func TestRoutes_InvalidToken(t *testing.T) {
	f := newRoutesFixture(t)
	f.token = "not-a-jwt"

	status, body := f.do(t, http.MethodGet, "/v1/preferences", "", true)
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, "invalid token", body["message"])
}

func TestRoutes_MethodNotAllowed(t *testing.T) {
	f := newRoutesFixture(t)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodDelete, f.server.URL+"/v1/preferences", nil)
	require.NoError(t, err)
	res, err := f.server.Client().Do(req)
	require.NoError(t, err)
	_ = res.Body.Close()

	require.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
	require.Equal(t, "GET,PUT", res.Header.Get("Allow"))
}
