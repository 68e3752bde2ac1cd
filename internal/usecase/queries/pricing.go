package queries

import (
	"context"
	"time"

	"stay-pricing/internal/domain/pricing"
	"stay-pricing/internal/infra"
	"stay-pricing/internal/pkg/clock"
	"stay-pricing/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type PricingReadStore interface {
	FindTarget(ctx context.Context, kind pricing.TargetKind, id uuid.UUID) (*TargetView, error)
	ListOverrides(ctx context.Context, propertyID uuid.UUID, r pricing.Range) ([]pricing.Override, error)
	ListAvailability(ctx context.Context, roomID uuid.UUID, r pricing.Range) ([]pricing.AvailabilityBlock, error)
	ListActiveRules(ctx context.Context, target pricing.Target, r pricing.Range) ([]pricing.PeakSeasonRule, error)
}

type CalculationObserver interface {
	ObserveCalculation(kind pricing.TargetKind, summary pricing.Summary, elapsed time.Duration)
}

type PropertyCalculation struct {
	PropertyID uuid.UUID
	Range      pricing.Range
	Summary    pricing.Summary
}

type RoomCalculation struct {
	RoomID        uuid.UUID
	Range         pricing.Range
	PricePerNight int64
	Summary       pricing.Summary
}

type PricingQueries interface {
	CalculateForProperty(ctx context.Context, propertyID uuid.UUID, r pricing.Range) (*PropertyCalculation, error)
	CalculateForRoom(ctx context.Context, roomID uuid.UUID, r pricing.Range) (*RoomCalculation, error)
}

type pricingQueriesImpl struct {
	store      PricingReadStore
	aggregator *pricing.Aggregator
	observer   CalculationObserver
	clock      clock.Clock
}

func NewPricingQueries(store PricingReadStore, aggregator *pricing.Aggregator, observer CalculationObserver, clk clock.Clock) PricingQueries {
	if observer == nil {
		observer = noopObserver{}
	}
	return &pricingQueriesImpl{
		store:      store,
		aggregator: aggregator,
		observer:   observer,
		clock:      clk,
	}
}

func (q *pricingQueriesImpl) CalculateForProperty(ctx context.Context, propertyID uuid.UUID, r pricing.Range) (*PropertyCalculation, error) {
	target, summary, err := q.calculate(ctx, pricing.TargetProperty, propertyID, r)
	if err != nil {
		return nil, err
	}
	return &PropertyCalculation{PropertyID: target.ID, Range: r, Summary: summary}, nil
}

func (q *pricingQueriesImpl) CalculateForRoom(ctx context.Context, roomID uuid.UUID, r pricing.Range) (*RoomCalculation, error) {
	target, summary, err := q.calculate(ctx, pricing.TargetRoom, roomID, r)
	if err != nil {
		return nil, err
	}
	return &RoomCalculation{
		RoomID:        target.ID,
		Range:         r,
		PricePerNight: *target.BasePricePerNight,
		Summary:       summary,
	}, nil
}

func (q *pricingQueriesImpl) calculate(ctx context.Context, kind pricing.TargetKind, id uuid.UUID, r pricing.Range) (pricing.Target, pricing.Summary, error) {
	started := q.clock.Now()

	if err := q.aggregator.CheckRange(r); err != nil {
		return pricing.Target{}, pricing.Summary{}, err
	}

	view, err := q.store.FindTarget(ctx, kind, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return pricing.Target{}, pricing.Summary{}, errs.Mark(err, errs.ErrTargetNotFound)
		}
		return pricing.Target{}, pricing.Summary{}, err
	}

	target := view.ToTarget()
	if !target.HasBasePrice() {
		return pricing.Target{}, pricing.Summary{}, pricing.ErrInvalidTarget
	}

	layers, err := q.loadLayers(ctx, target, r)
	if err != nil {
		return pricing.Target{}, pricing.Summary{}, err
	}

	summary, err := q.aggregator.Aggregate(target, r.Start, r.End, layers)
	if err != nil {
		return pricing.Target{}, pricing.Summary{}, err
	}

	q.observer.ObserveCalculation(kind, summary, q.clock.Since(started))
	return target, summary, nil
}

// loadLayers fetches the override sets of target for exactly r.
// Properties carry dated overrides, rooms carry availability blocks; both carry peak season rules.
func (q *pricingQueriesImpl) loadLayers(ctx context.Context, target pricing.Target, r pricing.Range) (pricing.Layers, error) {
	var (
		overrides []pricing.Override
		blocks    []pricing.AvailabilityBlock
		rules     []pricing.PeakSeasonRule
	)

	g, gctx := errgroup.WithContext(ctx)
	switch target.Kind {
	case pricing.TargetProperty:
		g.Go(func() error {
			var err error
			overrides, err = q.store.ListOverrides(gctx, target.ID, r)
			return errs.Wrap(err, "list price overrides")
		})
	case pricing.TargetRoom:
		g.Go(func() error {
			var err error
			blocks, err = q.store.ListAvailability(gctx, target.ID, r)
			return errs.Wrap(err, "list availability blocks")
		})
	}
	g.Go(func() error {
		var err error
		rules, err = q.store.ListActiveRules(gctx, target, r)
		return errs.Wrap(err, "list peak season rules")
	})

	if err := g.Wait(); err != nil {
		return pricing.Layers{}, err
	}
	return pricing.NewLayers(overrides, blocks, rules), nil
}

type noopObserver struct{}

func (noopObserver) ObserveCalculation(pricing.TargetKind, pricing.Summary, time.Duration) {}
