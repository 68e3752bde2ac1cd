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

func echoBlock(_ context.Context, _ any, b *rates.AvailabilityBlock) (*rates.AvailabilityBlock, error) {
	return b, nil
}

func TestRoomAvailabilityCommands(t *testing.T) {
	roomID := uuid.New()

	t.Run("upsert blocks a night for the room", func(t *testing.T) {
		f := newUowFixture(t)
		actor := newActor(t, user.RoleHost)
		f.expectTarget(pricing.TargetRoom, roomID, actor.ID())
		f.availability.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(echoBlock)
		var evt shared.RatesChanged
		f.expectEvent(&evt)

		uc := commands.NewRoomAvailabilityUseCase(f.uow, pricing.NewAggregator(0), f.events, f.clock)
		saved, err := uc.Upsert(context.Background(), actor, commands.UpsertAvailabilityRequest{
			RoomID: roomID, Date: day("2025-04-02"), IsAvailable: false,
		})

		require.NoError(t, err)
		assert.False(t, saved.IsAvailable())
		assert.Equal(t, pricing.TargetRoom, evt.TargetKind)
		assert.Equal(t, shared.EventAvailabilityUpserted, evt.Name)
	})

	t.Run("bulk upsert covers every night", func(t *testing.T) {
		f := newUowFixture(t)
		actor := newActor(t, user.RoleHost)
		f.expectTarget(pricing.TargetRoom, roomID, actor.ID())
		f.availability.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(echoBlock).Times(5)
		f.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		uc := commands.NewRoomAvailabilityUseCase(f.uow, pricing.NewAggregator(0), f.events, f.clock)
		saved, err := uc.BulkUpsert(context.Background(), actor, commands.BulkUpsertAvailabilityRequest{
			RoomID: roomID, Range: pricing.Range{Start: day("2025-04-01"), End: day("2025-04-06")}, IsAvailable: false,
		})

		require.NoError(t, err)
		assert.Len(t, saved, 5)
	})

	t.Run("update flips availability", func(t *testing.T) {
		f := newUowFixture(t)
		actor := newActor(t, user.RoleHost)
		current := builder.NewAvailabilityBuilder().With(func(b *builder.AvailabilityBuilder) { b.RoomID = roomID })
		f.reads.EXPECT().AvailabilityBlockByID(gomock.Any(), current.ID).Return(current.BuildDomain(), nil)
		f.expectTarget(pricing.TargetRoom, roomID, actor.ID())
		f.availability.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(echoBlock)
		f.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		uc := commands.NewRoomAvailabilityUseCase(f.uow, pricing.NewAggregator(0), f.events, f.clock)
		saved, err := uc.Update(context.Background(), actor, current.ID, commands.UpdateAvailabilityRequest{IsAvailable: true})

		require.NoError(t, err)
		assert.True(t, saved.IsAvailable())
	})

	t.Run("delete by another host", func(t *testing.T) {
		f := newUowFixture(t)
		current := builder.NewAvailabilityBuilder().With(func(b *builder.AvailabilityBuilder) { b.RoomID = roomID })
		f.reads.EXPECT().AvailabilityBlockByID(gomock.Any(), current.ID).Return(current.BuildDomain(), nil)
		f.expectTarget(pricing.TargetRoom, roomID, uuid.New())

		uc := commands.NewRoomAvailabilityUseCase(f.uow, pricing.NewAggregator(0), f.events, f.clock)
		err := uc.Delete(context.Background(), newActor(t, user.RoleHost), current.ID)
		assert.True(t, errs.Is(err, errs.ErrOwnership))
	})
}
