package pricing

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidDateRange  = errors.New("invalid date range")
	ErrInvalidTarget     = errors.New("target has no base price per night")
	ErrInvalidPriceType  = errors.New("invalid price type")

	ErrInvalidOverride       = errors.New("invalid price override")
	ErrInvalidPeakSeasonRate = errors.New("invalid peak season rate")
)

// PriceType doubles as the resolved status of a night.
type PriceType string

const (
	PriceTypeAvailable  PriceType = "available"
	PriceTypeBestDeal   PriceType = "best_deal"
	PriceTypePeakSeason PriceType = "peak_season"
	PriceTypeSoldOut    PriceType = "sold_out"
)

func (p PriceType) String() string {
	return string(p)
}

func (p PriceType) IsValid() bool {
	switch p {
	case PriceTypeAvailable, PriceTypeBestDeal, PriceTypePeakSeason, PriceTypeSoldOut:
		return true
	default:
		return false
	}
}

func ParsePriceType(s string) (PriceType, error) {
	p := PriceType(s)
	if !p.IsValid() {
		return "", ErrInvalidPriceType
	}
	return p, nil
}

type TargetKind string

const (
	TargetProperty TargetKind = "property"
	TargetRoom     TargetKind = "room"
)

func (k TargetKind) String() string {
	return string(k)
}

type Target struct {
	ID                uuid.UUID
	Kind              TargetKind
	BasePricePerNight *int64
}

func (t Target) basePrice() (int64, error) {
	if t.BasePricePerNight == nil || *t.BasePricePerNight <= 0 {
		return 0, ErrInvalidTarget
	}
	return *t.BasePricePerNight, nil
}

// Override is a materialized per-date price for a target.
type Override struct {
	Date      Date
	Price     int64
	PriceType PriceType
}

type AvailabilityBlock struct {
	Date        Date
	IsAvailable bool
}

// PeakSeasonRule applies to every date in [StartDate, EndDate], both inclusive.
type PeakSeasonRule struct {
	ID                 uuid.UUID
	StartDate          Date
	EndDate            Date
	PriceIncrease      int64
	PercentageIncrease *float64
	IsActive           bool
	CreatedAt          time.Time
}

func (r PeakSeasonRule) Covers(d Date) bool {
	return r.IsActive && !d.Before(r.StartDate) && !d.After(r.EndDate)
}

// Apply uses the percentage when present, the nominal increase otherwise. Never both.
func (r PeakSeasonRule) Apply(base int64) int64 {
	if r.PercentageIncrease != nil {
		return int64(math.Round(float64(base) + float64(base)*(*r.PercentageIncrease)/100))
	}
	return base + r.PriceIncrease
}

// Layers holds the override data available to one resolution run.
type Layers struct {
	overrides    map[Date]Override
	availability map[Date]bool
	rules        []PeakSeasonRule
}

// NewLayers indexes the given rows by date. A later row for the same date replaces an earlier one.
func NewLayers(overrides []Override, blocks []AvailabilityBlock, rules []PeakSeasonRule) Layers {
	l := Layers{
		overrides:    make(map[Date]Override, len(overrides)),
		availability: make(map[Date]bool, len(blocks)),
		rules:        make([]PeakSeasonRule, 0, len(rules)),
	}
	for _, o := range overrides {
		l.overrides[o.Date] = o
	}
	for _, b := range blocks {
		l.availability[b.Date] = b.IsAvailable
	}
	for _, r := range rules {
		if r.IsActive {
			l.rules = append(l.rules, r)
		}
	}
	return l
}

type ResolvedNight struct {
	Date   Date
	Status PriceType
	Price  *int64
}

func (n ResolvedNight) IsBookable() bool {
	return n.Status != PriceTypeSoldOut
}

// HasBasePrice reports whether t can be priced at all.
func (t Target) HasBasePrice() bool {
	_, err := t.basePrice()
	return err == nil
}
