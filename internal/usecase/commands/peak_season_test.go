//go:build unit

package commands_test

import (
	"context"
	"testing"

	"stay-pricing/internal/domain/pricing"
	"stay-pricing/internal/domain/rates"
	"stay-pricing/internal/domain/user"
	"stay-pricing/internal/pkg/errs"
	"stay-pricing/internal/usecase/commands"
	"stay-pricing/internal/usecase/shared"
	"stay-pricing/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func echoRate(_ context.Context, _ any, r *rates.PeakSeasonRate) (*rates.PeakSeasonRate, error) {
	return r, nil
}

func TestPeakSeasonRateCreate(t *testing.T) {
	t.Run("event spans the inclusive season end-exclusively", func(t *testing.T) {
		f := newUowFixture(t)
		actor := newActor(t, user.RoleHost)
		b := builder.NewPeakSeasonRateBuilder()
		f.expectTarget(pricing.TargetProperty, *b.PropertyID, actor.ID())
		f.peakSeason.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(echoRate)
		var evt shared.RatesChanged
		f.expectEvent(&evt)

		uc := commands.NewPeakSeasonRateUseCase(f.uow, f.events, f.clock)
		created, err := uc.Create(context.Background(), actor, b.BuildSpec())

		require.NoError(t, err)
		assert.Equal(t, "Golden Week", created.Name())
		assert.Equal(t, shared.EventPeakSeasonChanged, evt.Name)
		assert.Equal(t, day("2025-04-29"), evt.StartDate)
		assert.Equal(t, day("2025-05-06"), evt.EndDate)
	})

	t.Run("room rate is authorized against the room", func(t *testing.T) {
		f := newUowFixture(t)
		actor := newActor(t, user.RoleHost)
		roomID := uuid.New()
		b := builder.NewPeakSeasonRateBuilder().ForRoom(roomID)
		f.expectTarget(pricing.TargetRoom, roomID, actor.ID())
		f.peakSeason.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(echoRate)
		var evt shared.RatesChanged
		f.expectEvent(&evt)

		uc := commands.NewPeakSeasonRateUseCase(f.uow, f.events, f.clock)
		_, err := uc.Create(context.Background(), actor, b.BuildSpec())

		require.NoError(t, err)
		assert.Equal(t, pricing.TargetRoom, evt.TargetKind)
		assert.Equal(t, roomID, evt.TargetID)
	})

	invalid := []struct {
		name   string
		mutate func(b *builder.PeakSeasonRateBuilder)
	}{
		{name: "no target", mutate: func(b *builder.PeakSeasonRateBuilder) { b.PropertyID = nil }},
		{name: "both targets", mutate: func(b *builder.PeakSeasonRateBuilder) { id := uuid.New(); b.RoomID = &id }},
		{name: "inverted season", mutate: func(b *builder.PeakSeasonRateBuilder) { b.StartDate = day("2025-06-01") }},
		{name: "zero increase", mutate: func(b *builder.PeakSeasonRateBuilder) { b.PriceIncrease = 0 }},
		{name: "percentage above 100", mutate: func(b *builder.PeakSeasonRateBuilder) { pct := 150.0; b.PercentageIncrease = &pct }},
	}
	for _, tc := range invalid {
		t.Run("invalid: "+tc.name, func(t *testing.T) {
			f := newUowFixture(t)
			uc := commands.NewPeakSeasonRateUseCase(f.uow, f.events, f.clock)
			_, err := uc.Create(context.Background(), newActor(t, user.RoleHost), builder.NewPeakSeasonRateBuilder().With(tc.mutate).BuildSpec())
			assert.ErrorIs(t, err, pricing.ErrInvalidPeakSeasonRate)
		})
	}
}

func TestPeakSeasonRateUpdate(t *testing.T) {
	t.Run("moving the season publishes the union of old and new spans", func(t *testing.T) {
		f := newUowFixture(t)
		actor := newActor(t, user.RoleHost)
		b := builder.NewPeakSeasonRateBuilder()
		f.reads.EXPECT().PeakSeasonRateByID(gomock.Any(), b.ID).Return(b.BuildDomain(), nil)
		f.expectTarget(pricing.TargetProperty, *b.PropertyID, actor.ID())
		f.peakSeason.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(echoRate)
		var evt shared.RatesChanged
		f.expectEvent(&evt)

		start, end := day("2025-05-10"), day("2025-05-12")
		uc := commands.NewPeakSeasonRateUseCase(f.uow, f.events, f.clock)
		updated, err := uc.Update(context.Background(), actor, b.ID, rates.PeakSeasonRatePatch{StartDate: &start, EndDate: &end})

		require.NoError(t, err)
		assert.Equal(t, start, updated.StartDate())
		assert.Equal(t, day("2025-04-29"), evt.StartDate)
		assert.Equal(t, day("2025-05-13"), evt.EndDate)
	})

	t.Run("invalid patch leaves the rate unsaved", func(t *testing.T) {
		f := newUowFixture(t)
		actor := newActor(t, user.RoleHost)
		b := builder.NewPeakSeasonRateBuilder()
		f.reads.EXPECT().PeakSeasonRateByID(gomock.Any(), b.ID).Return(b.BuildDomain(), nil)
		f.expectTarget(pricing.TargetProperty, *b.PropertyID, actor.ID())

		zero := int64(0)
		uc := commands.NewPeakSeasonRateUseCase(f.uow, f.events, f.clock)
		_, err := uc.Update(context.Background(), actor, b.ID, rates.PeakSeasonRatePatch{PriceIncrease: &zero})
		assert.ErrorIs(t, err, pricing.ErrInvalidPeakSeasonRate)
	})
}

func TestPeakSeasonRateDelete(t *testing.T) {
	f := newUowFixture(t)
	actor := newActor(t, user.RoleAdmin)
	b := builder.NewPeakSeasonRateBuilder()
	f.reads.EXPECT().PeakSeasonRateByID(gomock.Any(), b.ID).Return(b.BuildDomain(), nil)
	f.expectTarget(pricing.TargetProperty, *b.PropertyID, uuid.New())
	f.peakSeason.EXPECT().Delete(gomock.Any(), gomock.Any(), b.ID).Return(errs.Mark(errs.New("gone"), errs.ErrRecordNotFound))

	uc := commands.NewPeakSeasonRateUseCase(f.uow, f.events, f.clock)
	err := uc.Delete(context.Background(), actor, b.ID)
	assert.True(t, errs.Is(err, errs.ErrRecordNotFound))
}
