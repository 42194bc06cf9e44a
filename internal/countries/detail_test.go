package countries_test

import (
	"context"
	"countries/internal/countries"
	"countries/pkg/domain"
	"countries/pkg/serrors"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Detail(t *testing.T) {
	source, s := newTestService(t, countries.Options{})

	nigeria := domain.Country{Name: "Nigeria", Region: "Africa", Borders: []string{"BEN", "CMR", "TCD", "NER"}}
	source.EXPECT().ByName(gomock.Any(), "Nigeria", true).Return(domain.CountryList{nigeria}, nil)
	// names follow the order of the response, not of the codes
	source.EXPECT().ByCodes(gomock.Any(), []string{"BEN", "CMR", "TCD", "NER"}).Return(domain.CountryList{
		{Name: "Benin"}, {Name: "Cameroon"}, {Name: "Niger"}, {Name: "Chad"},
	}, nil)

	detail, err := s.Detail(context.Background(), "Nigeria")
	require.NoError(t, err)
	require.Equal(t, nigeria, detail.Country)
	require.Equal(t, []string{"Benin", "Cameroon", "Niger", "Chad"}, detail.BorderNames)
}

func TestService_Detail_noBorders(t *testing.T) {
	source, s := newTestService(t, countries.Options{})

	source.EXPECT().ByName(gomock.Any(), "Iceland", true).Return(domain.CountryList{{Name: "Iceland"}}, nil)

	detail, err := s.Detail(context.Background(), "Iceland")
	require.NoError(t, err)
	require.NotNil(t, detail.BorderNames)
	require.Empty(t, detail.BorderNames)
}

func TestService_Detail_errors(t *testing.T) {
	tests := []struct {
		name   string
		result domain.CountryList
		err    error
		kind   serrors.Kind
	}{
		{name: "not found", err: serrors.KindOnly(serrors.ErrNotFound), kind: serrors.ErrNotFound},
		{name: "empty", result: domain.CountryList{}, kind: serrors.ErrNotFound},
		{name: "unavailable", err: errors.New("connection refused"), kind: serrors.ErrUnavailable},
		{name: "rate limited", err: serrors.KindOnly(serrors.ErrRateLimited), kind: serrors.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source, s := newTestService(t, countries.Options{})
			source.EXPECT().ByName(gomock.Any(), "Atlantis", true).Return(tt.result, tt.err)

			detail, err := s.Detail(context.Background(), "Atlantis")
			require.Nil(t, detail)
			require.Equal(t, tt.kind, serrors.KindOf(err))
		})
	}
}

func TestService_Detail_emptyName(t *testing.T) {
	_, s := newTestService(t, countries.Options{})

	_, err := s.Detail(context.Background(), "")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestService_Borders(t *testing.T) {
	t.Run("empty input skips the lookup", func(t *testing.T) {
		_, s := newTestService(t, countries.Options{})

		names := s.Borders(context.Background(), nil)
		require.NotNil(t, names)
		require.Empty(t, names)
	})

	t.Run("lookup failure yields empty list", func(t *testing.T) {
		source, s := newTestService(t, countries.Options{})
		source.EXPECT().ByCodes(gomock.Any(), []string{"XXX"}).Return(nil, serrors.KindOnly(serrors.ErrUnavailable))

		names := s.Borders(context.Background(), []string{"XXX"})
		require.NotNil(t, names)
		require.Empty(t, names)
	})

	t.Run("resolves names", func(t *testing.T) {
		source, s := newTestService(t, countries.Options{})
		source.EXPECT().ByCodes(gomock.Any(), []string{"CAN", "MEX"}).Return(domain.CountryList{{Name: "Canada"}, {Name: "Mexico"}}, nil)

		require.Equal(t, []string{"Canada", "Mexico"}, s.Borders(context.Background(), []string{"CAN", "MEX"}))
	})
}
