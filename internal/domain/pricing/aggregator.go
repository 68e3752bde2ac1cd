package pricing

import (
	"fmt"
	"math"
)

const DefaultMaxNights = 365

type Counts struct {
	Available  int
	BestDeal   int
	PeakSeason int
	SoldOut    int
}

// Summary is the aggregate of a stay. Sold-out nights appear in Breakdown and Counts
// but never in Nights or TotalPrice.
type Summary struct {
	Nights          int
	TotalPrice      int64
	AveragePerNight int64
	Counts          Counts
	Breakdown       []ResolvedNight
}

type Aggregator struct {
	MaxNights int
}

func NewAggregator(maxNights int) *Aggregator {
	if maxNights <= 0 {
		maxNights = DefaultMaxNights
	}
	return &Aggregator{MaxNights: maxNights}
}

// Aggregate resolves every night in [start, end) with the default night cap.
func Aggregate(target Target, start, end Date, layers Layers) (Summary, error) {
	return NewAggregator(DefaultMaxNights).Aggregate(target, start, end, layers)
}

// CheckRange rejects ranges longer than the configured cap.
func (a *Aggregator) CheckRange(r Range) error {
	if n := r.Nights(); n < 0 {
		return fmt.Errorf("%w: start %s is after end %s", ErrInvalidDateRange, r.Start, r.End)
	} else if a.MaxNights > 0 && n > a.MaxNights {
		return fmt.Errorf("%w: %d nights exceeds the maximum of %d", ErrInvalidDateRange, n, a.MaxNights)
	}
	return nil
}

func (a *Aggregator) Aggregate(target Target, start, end Date, layers Layers) (Summary, error) {
	r, err := NewRange(start, end)
	if err != nil {
		return Summary{}, err
	}
	if err := a.CheckRange(r); err != nil {
		return Summary{}, err
	}
	if _, err := target.basePrice(); err != nil {
		return Summary{}, err
	}

	dates := r.Dates()
	s := Summary{Breakdown: make([]ResolvedNight, 0, len(dates))}
	for _, d := range dates {
		night, err := ResolveNight(target, d, layers)
		if err != nil {
			return Summary{}, err
		}
		s.Breakdown = append(s.Breakdown, night)
		s.Counts.add(night.Status)
		if night.IsBookable() && night.Price != nil {
			s.Nights++
			s.TotalPrice += *night.Price
		}
	}
	if s.Nights > 0 {
		s.AveragePerNight = int64(math.Round(float64(s.TotalPrice) / float64(s.Nights)))
	}
	return s, nil
}

func (c *Counts) add(status PriceType) {
	switch status {
	case PriceTypeAvailable:
		c.Available++
	case PriceTypeBestDeal:
		c.BestDeal++
	case PriceTypePeakSeason:
		c.PeakSeason++
	case PriceTypeSoldOut:
		c.SoldOut++
	}
}
