package main

import (
	"bytes"
	"context"
	mockcountries "countries/internal/countries/mock"
	mockpreferences "countries/internal/preferences/mock"
	"countries/internal/render"
	"countries/internal/session"
	"countries/pkg/domain"
	"countries/pkg/logger"
	"countries/pkg/serrors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type browseSetup func(cs *mockcountries.MockService, ps *mockpreferences.MockService)

func startBrowse(t *testing.T, input io.Reader, setup browseSetup) string {
	t.Helper()
	ctrl := gomock.NewController(t)
	cs := mockcountries.NewMockService(ctrl)
	ps := mockpreferences.NewMockService(ctrl)
	ps.EXPECT().DarkMode(gomock.Any(), domain.LocalUser).Return(false, nil)
	setup(cs, ps)

	var out bytes.Buffer
	b := &browser{}
	sess, err := session.New(context.Background(), cs, ps, session.Options{
		User:           domain.LocalUser,
		SearchDebounce: 10 * time.Millisecond,
		OnChange:       b.show,
	})
	require.NoError(t, err)
	b.renderer = render.New(&out, false)

	require.NoError(t, runBrowse(context.Background(), input, &out, sess, b))
	sess.Close()

	return out.String()
}

func defaultCountries() domain.CountryList {
	return domain.CountryList{
		{Name: "Nigeria", Region: "Africa", Population: 206139587},
		{Name: "Canada", Region: "Americas", Population: 38005238},
		{Name: "Poland", Region: "Europe", Population: 37950802},
	}
}

func TestRunBrowse_LoadsDefaultList(t *testing.T) {
	out := startBrowse(t, strings.NewReader("quit\n"), func(cs *mockcountries.MockService, _ *mockpreferences.MockService) {
		cs.EXPECT().Countries(gomock.Any()).Return(defaultCountries(), nil)
	})

	require.Contains(t, out, render.Title)
	require.Contains(t, out, "Nigeria")
	require.Contains(t, out, "206,139,587")
	require.Contains(t, out, "3 of 3 countries")
}

func TestRunBrowse_FilterAndRegion(t *testing.T) {
	out := startBrowse(t, strings.NewReader("filter an\nregion Europe\nregion All\nquit\n"),
		func(cs *mockcountries.MockService, _ *mockpreferences.MockService) {
			cs.EXPECT().Countries(gomock.Any()).Return(defaultCountries(), nil)
		})

	require.Contains(t, out, "2 of 3 countries")
	require.Contains(t, out, "1 of 3 countries")
}

func TestRunBrowse_FailedLoadShowsNoData(t *testing.T) {
	out := startBrowse(t, strings.NewReader("show\n"), func(cs *mockcountries.MockService, _ *mockpreferences.MockService) {
		cs.EXPECT().Countries(gomock.Any()).
			Return(nil, serrors.With(serrors.ErrUnavailable, "could not aggregate countries"))
	})

	require.Contains(t, out, "No data: could not aggregate countries")
}

func TestRunBrowse_DebouncedSearch(t *testing.T) {
	searched := make(chan struct{})
	pr, pw := io.Pipe()
	go func() {
		_, _ = io.WriteString(pw, "search pol\n")
		<-searched
		_, _ = io.WriteString(pw, "quit\n")
		_ = pw.Close()
	}()

	out := startBrowse(t, pr, func(cs *mockcountries.MockService, _ *mockpreferences.MockService) {
		cs.EXPECT().Countries(gomock.Any()).Return(defaultCountries(), nil)
		cs.EXPECT().Search(gomock.Any(), "pol").DoAndReturn(
			func(context.Context, string) (domain.CountryList, error) {
				close(searched)

				return domain.CountryList{{Name: "Poland", Region: "Europe"}}, nil
			})
	})

	require.Contains(t, out, "3 of 3 countries")
	require.Contains(t, out, "1 of 1 countries")
}

func TestRunBrowse_DetailAndDarkMode(t *testing.T) {
	out := startBrowse(t, strings.NewReader("detail Poland\ndark\nquit\n"), func(cs *mockcountries.MockService, ps *mockpreferences.MockService) {
		cs.EXPECT().Countries(gomock.Any()).Return(defaultCountries(), nil)
		cs.EXPECT().Detail(gomock.Any(), "Poland").Return(&domain.CountryDetail{
			Country:     domain.Country{Name: "Poland", Region: "Europe", Borders: []string{"DEU"}},
			BorderNames: []string{"Germany"},
		}, nil)
		ps.EXPECT().ToggleDarkMode(gomock.Any(), domain.LocalUser).
			Return(&domain.Preference{UserID: domain.LocalUser, DarkMode: true}, nil)
	})

	require.Contains(t, out, "Border Countries:")
	require.Contains(t, out, "Germany")
	require.Contains(t, out, "Dark Mode")
}

func TestRunBrowse_UnknownCommandPrintsHelp(t *testing.T) {
	out := startBrowse(t, strings.NewReader("teleport\nquit\n"), func(cs *mockcountries.MockService, _ *mockpreferences.MockService) {
		cs.EXPECT().Countries(gomock.Any()).Return(defaultCountries(), nil)
	})

	require.Contains(t, out, "commands:")
}

func TestConfigArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "none", args: []string{"serve"}, want: nil},
		{name: "before command", args: []string{"-c", "a.yml", "serve"}, want: []string{"-c", "a.yml"}},
		{name: "after command", args: []string{"list", "--config", "b.yml"}, want: []string{"-c", "b.yml"}},
		{name: "equals", args: []string{"list", "--config=c.yml"}, want: []string{"-c", "c.yml"}},
		{name: "dangling", args: []string{"list", "-c"}, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, configArgs(tt.args))
		})
	}
}
