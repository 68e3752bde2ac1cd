//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"stay-pricing/internal/domain/pricing"
	"stay-pricing/internal/domain/user"
	"stay-pricing/internal/pkg/clock"
	"stay-pricing/internal/usecase/shared"
	sharedmock "stay-pricing/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type uowFixture struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reads        *sharedmock.MockCommandReads
	overrides    *sharedmock.MockPropertyPricingRepository
	availability *sharedmock.MockRoomAvailabilityRepository
	peakSeason   *sharedmock.MockPeakSeasonRateRepository
	events       *sharedmock.MockEventPublisher
	clock        clock.Clock
}

// newUowFixture runs every Within callback against one mocked transaction.
func newUowFixture(t *testing.T) *uowFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &uowFixture{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		reads:        sharedmock.NewMockCommandReads(ctrl),
		overrides:    sharedmock.NewMockPropertyPricingRepository(ctrl),
		availability: sharedmock.NewMockRoomAvailabilityRepository(ctrl),
		peakSeason:   sharedmock.NewMockPeakSeasonRateRepository(ctrl),
		events:       sharedmock.NewMockEventPublisher(ctrl),
		clock:        clock.NewMockClock(fixedNow),
	}

	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().PropertyPricing().Return(f.overrides).AnyTimes()
	f.tx.EXPECT().RoomAvailability().Return(f.availability).AnyTimes()
	f.tx.EXPECT().PeakSeasonRates().Return(f.peakSeason).AnyTimes()

	return f
}

// expectTarget makes kind/id resolve to a listing hosted by hostID.
func (f *uowFixture) expectTarget(kind pricing.TargetKind, id, hostID uuid.UUID) {
	f.reads.EXPECT().TargetByID(gomock.Any(), kind, id).
		Return(&shared.TargetSnapshot{ID: id, Kind: kind, PropertyID: id, HostID: hostID}, nil)
}

// expectEvent captures the next published event.
func (f *uowFixture) expectEvent(out *shared.RatesChanged) {
	f.events.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, evt shared.RatesChanged) error {
			*out = evt
			return nil
		}).Times(1)
}

func newActor(t *testing.T, role user.Role) user.Actor {
	t.Helper()
	actor, err := user.NewActor(uuid.New(), role)
	require.NoError(t, err)
	return actor
}

func day(s string) pricing.Date { return pricing.MustParseDate(s) }

func i64(v int64) *int64 { return &v }
