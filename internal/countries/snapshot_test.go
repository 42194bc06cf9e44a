package countries_test

import (
	"context"
	"countries/internal/countries"
	"countries/pkg/domain"
	"countries/pkg/serrors"
	"countries/pkg/storage"
	"errors"
	"testing"
	"time"

	mockstorage "countries/pkg/storage/mock"

	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// expectWithTx wires Storage.WithTx to run the callback against a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestService_RefreshSnapshot(t *testing.T) {
	ctrl, source, st, s := newTestServiceWithStorage(t, countries.Options{DefaultCountries: []string{"Poland", "Canada"}})

	source.EXPECT().ByName(gomock.Any(), "Poland", false).Return(record("Poland"), nil)
	source.EXPECT().ByName(gomock.Any(), "Canada", false).Return(record("Canada"), nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		gomock.InOrder(
			tx.EXPECT().DeleteSnapshots(gomock.Any()).Return(nil),
			tx.EXPECT().StoreSnapshot(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, list domain.CountryList) error {
					require.Equal(t, []string{"Poland", "Canada"}, list.Names())

					return nil
				},
			),
		)
	})

	require.NoError(t, s.RefreshSnapshot(context.Background()))
}

func TestService_RefreshSnapshot_aggregationFails(t *testing.T) {
	_, source, _, s := newTestServiceWithStorage(t, countries.Options{DefaultCountries: []string{"Poland"}})

	// the stored snapshot is left untouched: no transaction is opened
	source.EXPECT().ByName(gomock.Any(), "Poland", false).Return(nil, serrors.KindOnly(serrors.ErrUnavailable))

	err := s.RefreshSnapshot(context.Background())
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestService_RefreshSnapshot_storeFails(t *testing.T) {
	ctrl, source, st, s := newTestServiceWithStorage(t, countries.Options{DefaultCountries: []string{"Poland"}})

	source.EXPECT().ByName(gomock.Any(), "Poland", false).Return(record("Poland"), nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().DeleteSnapshots(gomock.Any()).Return(nil)
		tx.EXPECT().StoreSnapshot(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
	})

	require.Error(t, s.RefreshSnapshot(context.Background()))
}

func TestService_RequestRefresh(t *testing.T) {
	_, _, st, s := newTestServiceWithStorage(t, countries.Options{SnapshotEnabled: true, SnapshotInterval: time.Hour})

	st.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
		func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
			require.Equal(t, "CountrySnapshotJob", args.Kind())

			return true, nil
		},
	)

	added, err := s.RequestRefresh(context.Background())
	require.NoError(t, err)
	require.True(t, added)
}

func TestService_RequestRefresh_addJobFails(t *testing.T) {
	_, _, st, s := newTestServiceWithStorage(t, countries.Options{SnapshotEnabled: true})

	st.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, errors.New("queue down"))

	_, err := s.RequestRefresh(context.Background())
	require.Error(t, err)
}

func TestService_RequestRefresh_disabled(t *testing.T) {
	// no AddJob expectation: the mock fails the test if a job is enqueued
	_, _, _, s := newTestServiceWithStorage(t, countries.Options{SnapshotEnabled: false})

	added, err := s.RequestRefresh(context.Background())
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.Equal(t, "snapshots are disabled", serrors.MessageOf(err))
	require.False(t, added)
}

func TestService_snapshotsWithoutStorage(t *testing.T) {
	_, s := newTestService(t, countries.Options{})

	require.ErrorIs(t, s.RefreshSnapshot(context.Background()), serrors.ErrUnavailable)
	_, err := s.RequestRefresh(context.Background())
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestSnapshotArgs_InsertOpts(t *testing.T) {
	opts := countries.NewSnapshotArgs(time.Hour).InsertOpts()
	require.Equal(t, 1, opts.MaxAttempts)
	require.Equal(t, time.Hour, opts.UniqueOpts.ByPeriod)
	require.NotEmpty(t, opts.UniqueOpts.ByState)

	opts = countries.NewSnapshotArgs(0).InsertOpts()
	require.Zero(t, opts.UniqueOpts.ByPeriod)
	require.Empty(t, opts.UniqueOpts.ByState)
}
