//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"stay-pricing/internal/domain/pricing"
	"stay-pricing/internal/domain/rates"
	"stay-pricing/internal/infra"
	"stay-pricing/internal/infra/repository"
	sqlc "stay-pricing/internal/infra/sqlc/generated"
	"stay-pricing/tests/common/builder"
	repositorymock "stay-pricing/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Property pricing
// =============================================================================

func TestPropertyPricingRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	b := builder.NewPriceOverrideBuilder()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockPropertyPricingWriteQueries, sqlc.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: existing row keeps its id",
			setupMock: func(m *repositorymock.MockPropertyPricingWriteQueries, tx sqlc.DBTX) {
				row := b.BuildInfra()
				m.EXPECT().UpsertPropertyPricing(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpsertPropertyPricingParams) (sqlc.PropertyPricing, error) {
						assert.Equal(t, b.PropertyID, arg.PropertyID)
						assert.Equal(t, "best_deal", arg.PriceType)
						return row, nil
					})
			},
		},
		{
			name: "error: check constraint",
			setupMock: func(m *repositorymock.MockPropertyPricingWriteQueries, tx sqlc.DBTX) {
				m.EXPECT().UpsertPropertyPricing(ctx, tx, gomock.Any()).
					Return(sqlc.PropertyPricing{}, &pgconn.PgError{Code: "23514", Message: "price must be positive"})
			},
			expectKind: infra.KindCheckViolated,
		},
		{
			name: "error: unknown property",
			setupMock: func(m *repositorymock.MockPropertyPricingWriteQueries, tx sqlc.DBTX) {
				m.EXPECT().UpsertPropertyPricing(ctx, tx, gomock.Any()).
					Return(sqlc.PropertyPricing{}, &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"})
			},
			expectKind: infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockPropertyPricingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewPropertyPricingRepository(mockQueries)

			fresh, err := rates.NewPriceOverride(b.PropertyID, b.Date, b.Price, b.PriceType)
			require.NoError(t, err)
			tc.setupMock(mockQueries, mockDB)

			saved, actualError := repo.Upsert(ctx, mockDB, fresh)

			if tc.expectKind != "" {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
				return
			}
			require.NoError(t, actualError)
			assert.Equal(t, b.ID, saved.ID())
			assert.Equal(t, b.Date, saved.Date())
		})
	}
}

func TestPropertyPricingRepository_Delete(t *testing.T) {
	ctx := context.Background()
	b := builder.NewPriceOverrideBuilder()

	testCases := []struct {
		name       string
		affected   int64
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success", affected: 1},
		{name: "error: no row deleted", affected: 0, expectKind: infra.KindNotFound},
		{name: "error: database error", err: errors.New("connection reset"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockPropertyPricingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewPropertyPricingRepository(mockQueries)

			mockQueries.EXPECT().DeletePropertyPricing(ctx, mockDB, b.ID).Return(tc.affected, tc.err)

			err := repo.Delete(ctx, mockDB, b.ID)
			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tc.expectKind))
		})
	}
}

// =============================================================================
// Room availability
// =============================================================================

func TestRoomAvailabilityRepository_Update(t *testing.T) {
	ctx := context.Background()
	b := builder.NewAvailabilityBuilder()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockRoomAvailabilityWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewRoomAvailabilityRepository(mockQueries)

		block := b.BuildDomain()
		block.SetAvailable(true)
		row := b.With(func(b *builder.AvailabilityBuilder) { b.IsAvailable = true }).BuildInfra()
		mockQueries.EXPECT().UpdateRoomAvailability(ctx, mockDB, sqlc.UpdateRoomAvailabilityParams{ID: b.ID, IsAvailable: true}).Return(row, nil)

		saved, err := repo.Update(ctx, mockDB, block)
		require.NoError(t, err)
		assert.True(t, saved.IsAvailable())
	})

	t.Run("error: row vanished", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockRoomAvailabilityWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewRoomAvailabilityRepository(mockQueries)

		mockQueries.EXPECT().UpdateRoomAvailability(ctx, mockDB, gomock.Any()).Return(sqlc.RoomAvailability{}, pgx.ErrNoRows)

		_, err := repo.Update(ctx, mockDB, b.BuildDomain())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

// =============================================================================
// Peak season rates
// =============================================================================

func TestPeakSeasonRateRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success: room rate stores a null property", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPeakSeasonRateWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewPeakSeasonRateRepository(mockQueries)

		pct := 15.0
		b := builder.NewPeakSeasonRateBuilder().ForRoom(builder.NewAvailabilityBuilder().RoomID)
		b.PercentageIncrease = &pct

		mockQueries.EXPECT().CreatePeakSeasonRate(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreatePeakSeasonRateParams) (sqlc.PeakSeasonRates, error) {
				assert.False(t, arg.PropertyID.Valid)
				assert.True(t, arg.RoomID.Valid)
				assert.Equal(t, 15.0, arg.PercentageIncrease.Float64)
				return b.BuildInfra(), nil
			})

		saved, err := repo.Create(ctx, mockDB, b.BuildDomain())
		require.NoError(t, err)
		id, kind := saved.TargetID()
		assert.Equal(t, *b.RoomID, id)
		assert.Equal(t, pricing.TargetRoom, kind)
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPeakSeasonRateWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewPeakSeasonRateRepository(mockQueries)

		mockQueries.EXPECT().CreatePeakSeasonRate(ctx, mockDB, gomock.Any()).Return(sqlc.PeakSeasonRates{}, errors.New("timeout"))

		_, err := repo.Create(ctx, mockDB, builder.NewPeakSeasonRateBuilder().BuildDomain())
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
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
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
