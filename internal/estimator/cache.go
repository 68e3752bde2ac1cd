package estimator

import (
	"time"

	"stay-pricing/internal/domain/pricing"
	"stay-pricing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/karlseguin/ccache/v3"
)

const (
	DefaultCacheTTL  = 10 * time.Minute
	defaultCacheSize = 5000
	monthLayout      = "2006-01"
)

// OverrideCache holds the overrides a client has already fetched, one entry per property and month.
// A month missing from the cache is treated as having no overrides.
type OverrideCache struct {
	entries *ccache.Cache[[]pricing.Override]
	ttl     time.Duration
}

func NewOverrideCache(ttl time.Duration) *OverrideCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &OverrideCache{
		entries: ccache.New(ccache.Configure[[]pricing.Override]().MaxSize(defaultCacheSize)),
		ttl:     ttl,
	}
}

func monthKey(propertyID uuid.UUID, d pricing.Date) string {
	return propertyID.String() + ":" + d.Time().Format(monthLayout)
}

// Fill replaces every month touched by window with the overrides found inside it.
func (c *OverrideCache) Fill(propertyID uuid.UUID, window pricing.Range, overrides []pricing.Override) {
	byMonth := make(map[string][]pricing.Override)
	for _, d := range window.Dates() {
		key := monthKey(propertyID, d)
		if _, ok := byMonth[key]; !ok {
			byMonth[key] = c.month(key)
		}
	}
	for key, existing := range byMonth {
		kept := existing[:0:0]
		for _, o := range existing {
			if !window.Contains(o.Date) {
				kept = append(kept, o)
			}
		}
		byMonth[key] = kept
	}
	for _, o := range overrides {
		if !window.Contains(o.Date) {
			continue
		}
		key := monthKey(propertyID, o.Date)
		byMonth[key] = append(byMonth[key], o)
	}
	for key, list := range byMonth {
		c.entries.Set(key, list, c.ttl)
	}
}

// Lookup returns the cached overrides of propertyID that fall inside r.
func (c *OverrideCache) Lookup(propertyID uuid.UUID, r pricing.Range) []pricing.Override {
	seen := make(map[string]struct{})
	var out []pricing.Override
	for _, d := range r.Dates() {
		key := monthKey(propertyID, d)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		for _, o := range c.month(key) {
			if r.Contains(o.Date) {
				out = append(out, o)
			}
		}
	}
	return out
}

// Invalidate drops every month touched by r.
func (c *OverrideCache) Invalidate(propertyID uuid.UUID, r pricing.Range) {
	for _, d := range r.Dates() {
		c.entries.Delete(monthKey(propertyID, d))
	}
}

// Apply drops the months an override change touched. Other events leave the cache alone.
func (c *OverrideCache) Apply(evt shared.RatesChanged) {
	if evt.TargetKind != pricing.TargetProperty {
		return
	}
	switch evt.Name {
	case shared.EventOverrideUpserted, shared.EventOverrideDeleted:
		c.Invalidate(evt.TargetID, pricing.Range{Start: evt.StartDate, End: evt.EndDate})
	}
}

func (c *OverrideCache) Close() {
	c.entries.Stop()
}

func (c *OverrideCache) month(key string) []pricing.Override {
	item := c.entries.Get(key)
	if item == nil || item.Expired() {
		return nil
	}
	return item.Value()
}
