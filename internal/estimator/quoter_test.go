//go:build unit

package estimator_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stay-pricing/internal/domain/pricing"
	"stay-pricing/internal/estimator"
	estimatormock "stay-pricing/tests/mock/estimator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestQuoter_Quote(t *testing.T) {
	target := pricing.Target{ID: uuid.New(), Kind: pricing.TargetProperty, BasePricePerNight: i64(800000)}
	authoritative := pricing.Summary{Nights: 2, TotalPrice: 1840000, AveragePerNight: 920000}

	setup := func(t *testing.T) (*estimator.Quoter, *estimatormock.MockCalculationClient) {
		ctrl := gomock.NewController(t)
		client := estimatormock.NewMockCalculationClient(ctrl)
		c := estimator.NewOverrideCache(time.Minute)
		t.Cleanup(c.Close)
		return estimator.NewQuoter(estimator.New(c, nil), client), client
	}

	t.Run("estimate first then authoritative result", func(t *testing.T) {
		q, client := setup(t)
		client.EXPECT().
			CalculateForProperty(gomock.Any(), target.ID, rng("2025-04-01", "2025-04-03")).
			Return(authoritative, nil)

		estimate, results, err := q.Quote(context.Background(), target, day("2025-04-01"), day("2025-04-03"))
		require.NoError(t, err)
		assert.False(t, estimate.Authoritative)
		assert.Equal(t, int64(1600000), estimate.Summary.TotalPrice)

		final := receive(t, results)
		assert.True(t, final.Authoritative)
		assert.Equal(t, authoritative, final.Summary)
		assert.Equal(t, final, q.Current())
	})

	t.Run("stale response is discarded", func(t *testing.T) {
		q, client := setup(t)
		releaseFirst := make(chan struct{})
		first := rng("2025-04-01", "2025-04-03")
		second := rng("2025-04-10", "2025-04-12")

		client.EXPECT().
			CalculateForProperty(gomock.Any(), target.ID, first).
			DoAndReturn(func(context.Context, uuid.UUID, pricing.Range) (pricing.Summary, error) {
				<-releaseFirst
				return pricing.Summary{TotalPrice: 1}, nil
			})
		client.EXPECT().
			CalculateForProperty(gomock.Any(), target.ID, second).
			Return(authoritative, nil)

		_, firstResults, err := q.Quote(context.Background(), target, first.Start, first.End)
		require.NoError(t, err)
		_, secondResults, err := q.Quote(context.Background(), target, second.Start, second.End)
		require.NoError(t, err)

		latest := receive(t, secondResults)
		assert.True(t, latest.Authoritative)

		close(releaseFirst)
		select {
		case stale, ok := <-firstResults:
			assert.False(t, ok, "stale quote applied: %+v", stale)
		case <-time.After(time.Second):
			t.Fatal("stale quote channel was not closed")
		}
		assert.Equal(t, latest, q.Current())
	})

	t.Run("service failure keeps the estimate", func(t *testing.T) {
		q, client := setup(t)
		boom := errors.New("connection refused")
		client.EXPECT().
			CalculateForProperty(gomock.Any(), target.ID, gomock.Any()).
			Return(pricing.Summary{}, boom)

		estimate, results, err := q.Quote(context.Background(), target, day("2025-04-01"), day("2025-04-03"))
		require.NoError(t, err)

		final := receive(t, results)
		assert.False(t, final.Authoritative)
		assert.ErrorIs(t, final.Err, boom)
		assert.Equal(t, estimate.Summary, final.Summary)
	})

	t.Run("room target uses the room calculation", func(t *testing.T) {
		q, client := setup(t)
		room := pricing.Target{ID: uuid.New(), Kind: pricing.TargetRoom, BasePricePerNight: i64(300000)}
		roomResult := pricing.Summary{Nights: 1, TotalPrice: 300000, AveragePerNight: 300000, Counts: pricing.Counts{SoldOut: 1}}
		client.EXPECT().
			CalculateForRoom(gomock.Any(), room.ID, rng("2025-04-01", "2025-04-03")).
			Return(roomResult, nil)

		estimate, results, err := q.Quote(context.Background(), room, day("2025-04-01"), day("2025-04-03"))
		require.NoError(t, err)
		assert.Equal(t, int64(600000), estimate.Summary.TotalPrice)

		final := receive(t, results)
		assert.True(t, final.Authoritative)
		assert.NoError(t, final.Err)
		assert.Equal(t, roomResult, final.Summary)
	})

	t.Run("inverted range makes no call", func(t *testing.T) {
		q, _ := setup(t)

		_, results, err := q.Quote(context.Background(), target, day("2025-04-05"), day("2025-04-01"))
		assert.ErrorIs(t, err, pricing.ErrInvalidDateRange)
		assert.Nil(t, results)
	})
}

func receive(t *testing.T, ch <-chan estimator.Quote) estimator.Quote {
	t.Helper()
	select {
	case q, ok := <-ch:
		require.True(t, ok, "quote channel closed without a result")
		return q
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for quote")
		return estimator.Quote{}
	}
}
