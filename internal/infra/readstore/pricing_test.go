//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stay-pricing/internal/domain/pricing"
	"stay-pricing/internal/infra"
	"stay-pricing/internal/infra/readstore"
	sqlc "stay-pricing/internal/infra/sqlc/generated"
	"stay-pricing/internal/pkg/pgconv"
	"stay-pricing/tests/common/builder"
	readstoremock "stay-pricing/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
)

func day(s string) pricing.Date { return pricing.MustParseDate(s) }

// =============================================================================
// FindTarget Tests
// =============================================================================

func TestPricingReadStore_FindTarget(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	hostID := uuid.New()

	testCases := []struct {
		name          string
		kind          pricing.TargetKind
		setupMock     func(*readstoremock.MockPricingReadQueries)
		expectedBase  *int64
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: property with base price",
			kind: pricing.TargetProperty,
			setupMock: func(m *readstoremock.MockPricingReadQueries) {
				m.EXPECT().GetPropertyTarget(ctx, gomock.Any(), id).Return(sqlc.GetPropertyTargetRow{
					ID: id, HostID: hostID, BasePricePerNight: pgtype.Int8{Int64: 500000, Valid: true},
				}, nil)
			},
			expectedBase: func() *int64 { v := int64(500000); return &v }(),
		},
		{
			name: "success: room without base price",
			kind: pricing.TargetRoom,
			setupMock: func(m *readstoremock.MockPricingReadQueries) {
				m.EXPECT().GetRoomTarget(ctx, gomock.Any(), id).Return(sqlc.GetRoomTargetRow{
					ID: id, PropertyID: uuid.New(), HostID: hostID,
				}, nil)
			},
		},
		{
			name: "error: property not found",
			kind: pricing.TargetProperty,
			setupMock: func(m *readstoremock.MockPricingReadQueries) {
				m.EXPECT().GetPropertyTarget(ctx, gomock.Any(), id).Return(sqlc.GetPropertyTargetRow{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			kind: pricing.TargetRoom,
			setupMock: func(m *readstoremock.MockPricingReadQueries) {
				m.EXPECT().GetRoomTarget(ctx, gomock.Any(), id).Return(sqlc.GetRoomTargetRow{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockPricingReadQueries(ctrl)
			store := readstore.NewPricingReadStore(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			result, err := store.FindTarget(ctx, tc.kind, id)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.kind, result.Kind)
			assert.Equal(t, hostID, result.HostID)
			assert.Equal(t, tc.expectedBase, result.BasePricePerNight)
		})
	}
}

// =============================================================================
// Layer listing Tests
// =============================================================================

func TestPricingReadStore_ListOverrides(t *testing.T) {
	ctx := context.Background()
	propertyID := uuid.New()
	r := pricing.Range{Start: day("2025-04-01"), End: day("2025-04-08")}

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockPricingReadQueries(ctrl)
	store := readstore.NewPricingReadStore(mockQueries, &mockDBTX{})

	row := builder.NewPriceOverrideBuilder().With(func(b *builder.PriceOverrideBuilder) {
		b.PropertyID = propertyID
		b.Date = day("2025-04-03")
		b.Price = 420000
	}).BuildInfra()

	mockQueries.EXPECT().ListPropertyPricingInRange(ctx, gomock.Any(), sqlc.ListPropertyPricingInRangeParams{
		PropertyID: propertyID,
		StartDate:  pgconv.DateToPgtype(r.Start.Time()),
		EndDate:    pgconv.DateToPgtype(r.End.Time()),
	}).Return([]sqlc.PropertyPricing{row}, nil)

	got, err := store.ListOverrides(ctx, propertyID, r)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, pricing.Override{Date: day("2025-04-03"), Price: 420000, PriceType: pricing.PriceTypeBestDeal}, got[0])
}

func TestPricingReadStore_ListAvailability(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()
	r := pricing.Range{Start: day("2025-04-01"), End: day("2025-04-08")}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockPricingReadQueries(ctrl)
		store := readstore.NewPricingReadStore(mockQueries, &mockDBTX{})

		row := builder.NewAvailabilityBuilder().With(func(b *builder.AvailabilityBuilder) { b.RoomID = roomID }).BuildInfra()
		mockQueries.EXPECT().ListRoomAvailabilityInRange(ctx, gomock.Any(), gomock.Any()).Return([]sqlc.RoomAvailability{row}, nil)

		got, err := store.ListAvailability(ctx, roomID, r)
		require.NoError(t, err)
		assert.Equal(t, []pricing.AvailabilityBlock{{Date: day("2025-04-02"), IsAvailable: false}}, got)
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockPricingReadQueries(ctrl)
		store := readstore.NewPricingReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListRoomAvailabilityInRange(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		_, err := store.ListAvailability(ctx, roomID, r)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestPricingReadStore_ListActiveRules(t *testing.T) {
	ctx := context.Background()
	r := pricing.Range{Start: day("2025-04-28"), End: day("2025-05-02")}
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("property rules keep percentage and creation time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockPricingReadQueries(ctrl)
		store := readstore.NewPricingReadStore(mockQueries, &mockDBTX{})

		pct := 10.0
		b := builder.NewPeakSeasonRateBuilder().With(func(b *builder.PeakSeasonRateBuilder) {
			b.PercentageIncrease = &pct
			b.CreatedAt = created
		})
		target := pricing.Target{ID: *b.PropertyID, Kind: pricing.TargetProperty}

		mockQueries.EXPECT().ListActivePeakSeasonRatesForProperty(ctx, gomock.Any(), sqlc.ListActivePeakSeasonRatesForPropertyParams{
			PropertyID: target.ID,
			EndDate:    pgconv.DateToPgtype(r.End.Time()),
			StartDate:  pgconv.DateToPgtype(r.Start.Time()),
		}).Return([]sqlc.PeakSeasonRates{b.BuildInfra()}, nil)

		rules, err := store.ListActiveRules(ctx, target, r)

		require.NoError(t, err)
		require.Len(t, rules, 1)
		assert.Equal(t, b.ID, rules[0].ID)
		require.NotNil(t, rules[0].PercentageIncrease)
		assert.Equal(t, 10.0, *rules[0].PercentageIncrease)
		assert.True(t, rules[0].CreatedAt.Equal(created))
	})

	t.Run("room rules use the room query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockPricingReadQueries(ctrl)
		store := readstore.NewPricingReadStore(mockQueries, &mockDBTX{})

		roomID := uuid.New()
		mockQueries.EXPECT().ListActivePeakSeasonRatesForRoom(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)

		rules, err := store.ListActiveRules(ctx, pricing.Target{ID: roomID, Kind: pricing.TargetRoom}, r)
		require.NoError(t, err)
		assert.Empty(t, rules)
	})
}

// =============================================================================
// Mock DBTX
// =============================================================================

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
