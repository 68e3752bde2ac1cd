//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"stay-pricing/internal/domain/pricing"
	"stay-pricing/internal/infra"
	"stay-pricing/internal/infra/readstore"
	sqlc "stay-pricing/internal/infra/sqlc/generated"
	"stay-pricing/tests/common/builder"
	readstoremock "stay-pricing/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPropertyPricingReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	b := builder.NewPriceOverrideBuilder()

	testCases := []struct {
		name       string
		rowErr     error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "error: not found", rowErr: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: database error", rowErr: errDBConnectionLost, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockPropertyPricingReadQueries(ctrl)
			store := readstore.NewPropertyPricingReadStore(mockQueries, &mockDBTX{})

			row := b.BuildInfra()
			if tc.rowErr != nil {
				row = sqlc.PropertyPricing{}
			}
			mockQueries.EXPECT().GetPropertyPricingByID(ctx, gomock.Any(), b.ID).Return(row, tc.rowErr)

			view, err := store.FindByID(ctx, b.ID)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind))
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(b.BuildView(), view); diff != "" {
				t.Errorf("view mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRoomAvailabilityReadStore_ListInRange(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()
	r := pricing.Range{Start: pricing.MustParseDate("2025-04-01"), End: pricing.MustParseDate("2025-04-30")}

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockRoomAvailabilityReadQueries(ctrl)
	store := readstore.NewRoomAvailabilityReadStore(mockQueries, &mockDBTX{})

	rows := []sqlc.RoomAvailability{
		builder.NewAvailabilityBuilder().With(func(b *builder.AvailabilityBuilder) { b.RoomID = roomID }).BuildInfra(),
		builder.NewAvailabilityBuilder().With(func(b *builder.AvailabilityBuilder) {
			b.RoomID = roomID
			b.Date = pricing.MustParseDate("2025-04-10")
			b.IsAvailable = true
		}).BuildInfra(),
	}
	mockQueries.EXPECT().ListRoomAvailabilityInRange(ctx, gomock.Any(), gomock.Any()).Return(rows, nil)

	views, err := store.ListInRange(ctx, roomID, r)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.False(t, views[0].IsAvailable)
	assert.Equal(t, "2025-04-10", views[1].Date.String())
}

func TestPeakSeasonRateReadStore_List(t *testing.T) {
	ctx := context.Background()

	t.Run("by property", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockPeakSeasonRateReadQueries(ctrl)
		store := readstore.NewPeakSeasonRateReadStore(mockQueries, &mockDBTX{})

		b := builder.NewPeakSeasonRateBuilder()
		mockQueries.EXPECT().ListPeakSeasonRatesByProperty(ctx, gomock.Any(), *b.PropertyID).
			Return([]sqlc.PeakSeasonRates{b.BuildInfra()}, nil)

		views, err := store.ListByProperty(ctx, *b.PropertyID)

		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, b.PropertyID, views[0].PropertyID)
		assert.Nil(t, views[0].RoomID)
		assert.Nil(t, views[0].PercentageIncrease)
	})

	t.Run("by room: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockPeakSeasonRateReadQueries(ctrl)
		store := readstore.NewPeakSeasonRateReadStore(mockQueries, &mockDBTX{})

		roomID := uuid.New()
		mockQueries.EXPECT().ListPeakSeasonRatesByRoom(ctx, gomock.Any(), roomID).Return(nil, errDBConnectionLost)

		_, err := store.ListByRoom(ctx, roomID)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
