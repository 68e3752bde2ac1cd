package queries

import (
	"context"
	"errors"

	"stay-pricing/internal/domain/pricing"
	"stay-pricing/internal/infra"
	"stay-pricing/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidFilter = errors.New("exactly one of propertyId or roomId is required")

type PropertyPricingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PriceOverrideView, error)
	ListInRange(ctx context.Context, propertyID uuid.UUID, r pricing.Range) ([]*PriceOverrideView, error)
}

type RoomAvailabilityReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AvailabilityView, error)
	ListInRange(ctx context.Context, roomID uuid.UUID, r pricing.Range) ([]*AvailabilityView, error)
}

type PeakSeasonRateReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PeakSeasonRateView, error)
	ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*PeakSeasonRateView, error)
	ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*PeakSeasonRateView, error)
}

type RatesQueries interface {
	GetPriceOverride(ctx context.Context, id uuid.UUID) (*PriceOverrideView, error)
	ListPriceOverrides(ctx context.Context, propertyID uuid.UUID, r pricing.Range) ([]*PriceOverrideView, error)
	GetAvailability(ctx context.Context, id uuid.UUID) (*AvailabilityView, error)
	ListAvailability(ctx context.Context, roomID uuid.UUID, r pricing.Range) ([]*AvailabilityView, error)
	GetPeakSeasonRate(ctx context.Context, id uuid.UUID) (*PeakSeasonRateView, error)
	ListPeakSeasonRates(ctx context.Context, filter PeakSeasonRateFilter) ([]*PeakSeasonRateView, error)
}

type ratesQueriesImpl struct {
	overrides    PropertyPricingReadStore
	availability RoomAvailabilityReadStore
	peakSeason   PeakSeasonRateReadStore
	aggregator   *pricing.Aggregator
}

func NewRatesQueries(
	overrides PropertyPricingReadStore,
	availability RoomAvailabilityReadStore,
	peakSeason PeakSeasonRateReadStore,
	aggregator *pricing.Aggregator,
) RatesQueries {
	return &ratesQueriesImpl{
		overrides:    overrides,
		availability: availability,
		peakSeason:   peakSeason,
		aggregator:   aggregator,
	}
}

func (q *ratesQueriesImpl) GetPriceOverride(ctx context.Context, id uuid.UUID) (*PriceOverrideView, error) {
	v, err := q.overrides.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, errs.ErrRecordNotFound)
	}
	return v, nil
}

func (q *ratesQueriesImpl) ListPriceOverrides(ctx context.Context, propertyID uuid.UUID, r pricing.Range) ([]*PriceOverrideView, error) {
	if err := q.aggregator.CheckRange(r); err != nil {
		return nil, err
	}
	return q.overrides.ListInRange(ctx, propertyID, r)
}

func (q *ratesQueriesImpl) GetAvailability(ctx context.Context, id uuid.UUID) (*AvailabilityView, error) {
	v, err := q.availability.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, errs.ErrRecordNotFound)
	}
	return v, nil
}

func (q *ratesQueriesImpl) ListAvailability(ctx context.Context, roomID uuid.UUID, r pricing.Range) ([]*AvailabilityView, error) {
	if err := q.aggregator.CheckRange(r); err != nil {
		return nil, err
	}
	return q.availability.ListInRange(ctx, roomID, r)
}

func (q *ratesQueriesImpl) GetPeakSeasonRate(ctx context.Context, id uuid.UUID) (*PeakSeasonRateView, error) {
	v, err := q.peakSeason.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, errs.ErrRecordNotFound)
	}
	return v, nil
}

func (q *ratesQueriesImpl) ListPeakSeasonRates(ctx context.Context, filter PeakSeasonRateFilter) ([]*PeakSeasonRateView, error) {
	switch {
	case filter.PropertyID != nil && filter.RoomID == nil:
		return q.peakSeason.ListByProperty(ctx, *filter.PropertyID)
	case filter.RoomID != nil && filter.PropertyID == nil:
		return q.peakSeason.ListByRoom(ctx, *filter.RoomID)
	default:
		return nil, ErrInvalidFilter
	}
}

func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}
