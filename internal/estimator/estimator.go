// Package estimator previews stay prices from overrides a client already holds, then reconciles
// the preview with the calculation service.
package estimator

import (
	"stay-pricing/internal/domain/pricing"
)

// Estimator runs the shared aggregation over cached overrides only.
// Peak season rules and availability are unknown to it, so uncovered nights resolve to the base price.
// Its aggregator carries the same night cap as the service.
type Estimator struct {
	cache      *OverrideCache
	aggregator *pricing.Aggregator
}

// New falls back to the default night cap when aggregator is nil.
func New(cache *OverrideCache, aggregator *pricing.Aggregator) *Estimator {
	if aggregator == nil {
		aggregator = pricing.NewAggregator(pricing.DefaultMaxNights)
	}
	return &Estimator{cache: cache, aggregator: aggregator}
}

func (e *Estimator) Estimate(target pricing.Target, start, end pricing.Date) (pricing.Summary, error) {
	r, err := pricing.NewRange(start, end)
	if err != nil {
		return pricing.Summary{}, err
	}
	// rooms have no dated overrides, so a room estimate is base price only
	var overrides []pricing.Override
	if target.Kind == pricing.TargetProperty {
		overrides = e.cache.Lookup(target.ID, r)
	}
	return e.aggregator.Aggregate(target, r.Start, r.End, pricing.NewLayers(overrides, nil, nil))
}
