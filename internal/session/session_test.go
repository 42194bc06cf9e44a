package session_test

import (
	"context"
	"countries/internal/session"
	"countries/pkg/domain"
	"countries/pkg/serrors"
	"errors"
	"testing"
	"time"

	mockcountries "countries/internal/countries/mock"
	mockpreferences "countries/internal/preferences/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func defaultList() domain.CountryList {
	return domain.CountryList{
		{Name: "Nigeria", Region: "Africa"},
		{Name: "Canada", Region: "Americas"},
		{Name: "Poland", Region: "Europe"},
		{Name: "United States", Region: "Americas"},
		{Name: "United Kingdom", Region: "Europe"},
	}
}

type fixture struct {
	countries *mockcountries.MockService
	prefs     *mockpreferences.MockService
	changes   chan session.State
}

func newFixture(t *testing.T, darkMode bool) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		countries: mockcountries.NewMockService(ctrl),
		prefs:     mockpreferences.NewMockService(ctrl),
		changes:   make(chan session.State, 16),
	}
	f.prefs.EXPECT().DarkMode(gomock.Any(), domain.LocalUser).Return(darkMode, nil)

	return f
}

func (f *fixture) newSession(t *testing.T, debounce time.Duration) *session.Session {
	t.Helper()

	s, err := session.New(context.Background(), f.countries, f.prefs, session.Options{
		User:           domain.LocalUser,
		SearchDebounce: debounce,
		OnChange:       func(st session.State) { f.changes <- st },
	})
	require.NoError(t, err)
	t.Cleanup(s.Close)

	return s
}

func (f *fixture) nextChange(t *testing.T) session.State {
	t.Helper()

	select {
	case st := <-f.changes:
		return st
	case <-time.After(2 * time.Second):
		t.Fatal("no state change")

		return session.State{}
	}
}

func TestNew_readsDarkModeOnce(t *testing.T) {
	f := newFixture(t, true)
	s := f.newSession(t, 0)

	require.True(t, s.DarkMode())
	require.True(t, s.DarkMode())
	require.True(t, s.State().DarkMode)
}

func TestNew_preferenceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	prefs := mockpreferences.NewMockService(ctrl)
	prefs.EXPECT().DarkMode(gomock.Any(), domain.LocalUser).Return(false, errors.New("corrupt file"))

	_, err := session.New(context.Background(), mockcountries.NewMockService(ctrl), prefs, session.Options{})
	require.Error(t, err)
}

func TestSession_LoadAndFilter(t *testing.T) {
	f := newFixture(t, false)
	s := f.newSession(t, 0)

	f.countries.EXPECT().Countries(gomock.Any()).Return(defaultList(), nil)

	require.NoError(t, s.Load(context.Background()))
	require.Len(t, s.Visible(), 5)
	st := f.nextChange(t)
	require.False(t, st.Loading)
	require.Equal(t, 5, st.Total)

	s.SetFilter("united")
	require.Equal(t, []string{"United States", "United Kingdom"}, s.Visible().Names())

	s.SetRegion("Americas")
	require.Equal(t, []string{"United States"}, s.Visible().Names())

	s.SetFilter("")
	require.Equal(t, []string{"Canada", "United States"}, s.Visible().Names())

	s.SetRegion(domain.RegionAll)
	require.Len(t, s.Visible(), 5)

	s.SetRegion("Atlantis")
	require.Empty(t, s.Visible())
	require.NoError(t, s.Err())
}

func TestSession_failureClearsList(t *testing.T) {
	f := newFixture(t, false)
	s := f.newSession(t, 0)

	aggErr := serrors.With(serrors.ErrUnavailable, "could not aggregate countries")
	gomock.InOrder(
		f.countries.EXPECT().Countries(gomock.Any()).Return(defaultList(), nil),
		f.countries.EXPECT().Search(gomock.Any(), "zzz").Return(nil, aggErr),
	)

	require.NoError(t, s.Load(context.Background()))
	require.Len(t, s.Visible(), 5)

	err := s.SearchNow(context.Background(), "zzz")
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.ErrorIs(t, s.Err(), serrors.ErrUnavailable)
	require.Empty(t, s.Visible())
	require.Zero(t, s.State().Total)
}

func TestSession_staleResultIsDiscarded(t *testing.T) {
	f := newFixture(t, false)
	s := f.newSession(t, 0)

	slowStarted := make(chan struct{})
	releaseSlow := make(chan struct{})
	f.countries.EXPECT().Search(gomock.Any(), "can").DoAndReturn(
		func(context.Context, string) (domain.CountryList, error) {
			close(slowStarted)
			<-releaseSlow

			return domain.CountryList{{Name: "Canada"}}, nil
		},
	)
	f.countries.EXPECT().Search(gomock.Any(), "pol").Return(domain.CountryList{{Name: "Poland"}}, nil)

	slowDone := make(chan error, 1)
	go func() { slowDone <- s.SearchNow(context.Background(), "can") }()
	<-slowStarted

	// issued later, completes first
	require.NoError(t, s.SearchNow(context.Background(), "pol"))
	require.Equal(t, []string{"Poland"}, s.Visible().Names())

	close(releaseSlow)
	require.NoError(t, <-slowDone)

	// the earlier request completed last but was issued first: it loses
	require.Equal(t, []string{"Poland"}, s.Visible().Names())
	require.Equal(t, "pol", s.State().Query)

	// only the applied result was announced
	require.Equal(t, []string{"Poland"}, f.nextChange(t).Visible.Names())
	select {
	case st := <-f.changes:
		t.Fatalf("unexpected state change: %+v", st)
	default:
	}
}

func TestSession_Search_isDebounced(t *testing.T) {
	f := newFixture(t, false)
	s := f.newSession(t, 30*time.Millisecond)

	f.countries.EXPECT().Search(gomock.Any(), "nig").Return(domain.CountryList{{Name: "Niger"}}, nil)

	s.Search("n")
	s.Search("ni")
	s.Search("nig")

	st := f.nextChange(t)
	require.Equal(t, "nig", st.Query)
	require.Equal(t, []string{"Niger"}, st.Visible.Names())
}

func TestSession_Search_emptyQueryLoadsDefaults(t *testing.T) {
	f := newFixture(t, false)
	s := f.newSession(t, time.Millisecond)

	f.countries.EXPECT().Countries(gomock.Any()).Return(defaultList(), nil)

	s.Search("")

	st := f.nextChange(t)
	require.Empty(t, st.Query)
	require.Equal(t, 5, st.Total)
}

func TestSession_SearchNow_cancelsPendingSearch(t *testing.T) {
	f := newFixture(t, false)
	s := f.newSession(t, 50*time.Millisecond)

	f.countries.EXPECT().Search(gomock.Any(), "pol").Return(domain.CountryList{{Name: "Poland"}}, nil)

	s.Search("can")
	require.NoError(t, s.SearchNow(context.Background(), "pol"))

	time.Sleep(80 * time.Millisecond)
	require.Equal(t, []string{"Poland"}, s.Visible().Names())
}

func TestSession_Close_dropsPendingSearch(t *testing.T) {
	f := newFixture(t, false)
	s := f.newSession(t, 50*time.Millisecond)

	s.Search("can")
	s.Close()

	time.Sleep(80 * time.Millisecond)
	require.Empty(t, s.Visible())
}

func TestSession_ToggleDarkMode(t *testing.T) {
	f := newFixture(t, false)
	s := f.newSession(t, 0)

	f.prefs.EXPECT().ToggleDarkMode(gomock.Any(), domain.LocalUser).
		Return(&domain.Preference{UserID: domain.LocalUser, DarkMode: true}, nil)

	dark, err := s.ToggleDarkMode(context.Background())
	require.NoError(t, err)
	require.True(t, dark)
	require.True(t, s.DarkMode())
	require.True(t, f.nextChange(t).DarkMode)
}

func TestSession_ToggleDarkMode_persistFails(t *testing.T) {
	f := newFixture(t, true)
	s := f.newSession(t, 0)

	f.prefs.EXPECT().ToggleDarkMode(gomock.Any(), domain.LocalUser).Return(nil, errors.New("read-only"))

	dark, err := s.ToggleDarkMode(context.Background())
	require.Error(t, err)
	require.True(t, dark)
	require.True(t, s.DarkMode())
}

func TestSession_Detail(t *testing.T) {
	f := newFixture(t, false)
	s := f.newSession(t, 0)

	want := &domain.CountryDetail{Country: domain.Country{Name: "Canada"}, BorderNames: []string{"United States"}}
	f.countries.EXPECT().Detail(gomock.Any(), "Canada").Return(want, nil)

	got, err := s.Detail(context.Background(), "Canada")
	require.NoError(t, err)
	require.Equal(t, want, got)
}
