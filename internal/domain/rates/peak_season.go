package rates

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"stay-pricing/internal/domain/pricing"
	"stay-pricing/internal/pkg/patch"

	"github.com/google/uuid"
)

const MaxRateNameLength = 100

var (
	ErrTargetRequired         = errors.New("exactly one of propertyId or roomId is required")
	ErrInvalidRateName        = errors.New("name must be 1-100 characters")
	ErrInvertedSeason         = errors.New("start date must not be after end date")
	ErrNonPositiveIncrease    = errors.New("price increase must be greater than zero")
	ErrPercentageOutOfBounds  = errors.New("percentage increase must be between 0 and 100")
	ErrTargetChangeNotAllowed = errors.New("target of a peak season rate cannot be changed")
	ErrPercentageConflict     = errors.New("percentage increase cannot be both set and cleared")
)

// PeakSeasonRate raises the nightly price of a property or room over an inclusive date span.
type PeakSeasonRate struct {
	id                 uuid.UUID
	propertyID         *uuid.UUID
	roomID             *uuid.UUID
	name               string
	startDate          pricing.Date
	endDate            pricing.Date
	priceIncrease      int64
	percentageIncrease *float64
	isActive           bool
	createdAt          time.Time
	updatedAt          time.Time
}

type PeakSeasonRateSpec struct {
	PropertyID         *uuid.UUID
	RoomID             *uuid.UUID
	Name               string
	StartDate          pricing.Date
	EndDate            pricing.Date
	PriceIncrease      int64
	PercentageIncrease *float64
	IsActive           bool
}

type PeakSeasonRatePatch struct {
	Name               *string
	StartDate          *pricing.Date
	EndDate            *pricing.Date
	PriceIncrease      *int64
	PercentageIncrease *float64
	IsActive           *bool

	// ClearPercentageIncrease drops the percentage so priceIncrease applies again.
	ClearPercentageIncrease bool
}

func NewPeakSeasonRate(spec PeakSeasonRateSpec) (*PeakSeasonRate, error) {
	r := &PeakSeasonRate{
		id:                 uuid.New(),
		propertyID:         spec.PropertyID,
		roomID:             spec.RoomID,
		name:               strings.TrimSpace(spec.Name),
		startDate:          spec.StartDate,
		endDate:            spec.EndDate,
		priceIncrease:      spec.PriceIncrease,
		percentageIncrease: spec.PercentageIncrease,
		isActive:           spec.IsActive,
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func ReconstructPeakSeasonRate(
	id uuid.UUID,
	propertyID, roomID *uuid.UUID,
	name string,
	startDate, endDate pricing.Date,
	priceIncrease int64,
	percentageIncrease *float64,
	isActive bool,
	createdAt, updatedAt time.Time,
) *PeakSeasonRate {
	return &PeakSeasonRate{
		id:                 id,
		propertyID:         propertyID,
		roomID:             roomID,
		name:               name,
		startDate:          startDate,
		endDate:            endDate,
		priceIncrease:      priceIncrease,
		percentageIncrease: percentageIncrease,
		isActive:           isActive,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// Apply merges p into the rate and revalidates. On error the rate is left unchanged.
func (r *PeakSeasonRate) Apply(p PeakSeasonRatePatch) error {
	next := *r
	next.name = strings.TrimSpace(patch.Coalesce(p.Name, r.name))
	next.startDate = patch.Coalesce(p.StartDate, r.startDate)
	next.endDate = patch.Coalesce(p.EndDate, r.endDate)
	next.priceIncrease = patch.Coalesce(p.PriceIncrease, r.priceIncrease)
	next.isActive = patch.Coalesce(p.IsActive, r.isActive)
	switch {
	case p.ClearPercentageIncrease && p.PercentageIncrease != nil:
		return fmt.Errorf("%w: %w", pricing.ErrInvalidPeakSeasonRate, ErrPercentageConflict)
	case p.ClearPercentageIncrease:
		next.percentageIncrease = nil
	default:
		next.percentageIncrease = patch.CoalescePtr(p.PercentageIncrease, r.percentageIncrease)
	}
	if err := next.validate(); err != nil {
		return err
	}
	*r = next
	return nil
}

func (r *PeakSeasonRate) validate() error {
	invalid := func(err error) error {
		return fmt.Errorf("%w: %w", pricing.ErrInvalidPeakSeasonRate, err)
	}
	if (r.propertyID == nil) == (r.roomID == nil) {
		return invalid(ErrTargetRequired)
	}
	if r.name == "" || len([]rune(r.name)) > MaxRateNameLength {
		return invalid(ErrInvalidRateName)
	}
	if r.startDate.After(r.endDate) {
		return invalid(ErrInvertedSeason)
	}
	if r.priceIncrease <= 0 {
		return invalid(ErrNonPositiveIncrease)
	}
	if pct := r.percentageIncrease; pct != nil && (*pct < 0 || *pct > 100) {
		return invalid(ErrPercentageOutOfBounds)
	}
	return nil
}

func (r *PeakSeasonRate) ID() uuid.UUID                { return r.id }
func (r *PeakSeasonRate) PropertyID() *uuid.UUID       { return r.propertyID }
func (r *PeakSeasonRate) RoomID() *uuid.UUID           { return r.roomID }
func (r *PeakSeasonRate) Name() string                 { return r.name }
func (r *PeakSeasonRate) StartDate() pricing.Date      { return r.startDate }
func (r *PeakSeasonRate) EndDate() pricing.Date        { return r.endDate }
func (r *PeakSeasonRate) PriceIncrease() int64         { return r.priceIncrease }
func (r *PeakSeasonRate) PercentageIncrease() *float64 { return r.percentageIncrease }
func (r *PeakSeasonRate) IsActive() bool               { return r.isActive }
func (r *PeakSeasonRate) CreatedAt() time.Time         { return r.createdAt }
func (r *PeakSeasonRate) UpdatedAt() time.Time         { return r.updatedAt }

// TargetID returns the id of whichever target the rate belongs to.
func (r *PeakSeasonRate) TargetID() (uuid.UUID, pricing.TargetKind) {
	if r.propertyID != nil {
		return *r.propertyID, pricing.TargetProperty
	}
	return *r.roomID, pricing.TargetRoom
}

func (r *PeakSeasonRate) ToRule() pricing.PeakSeasonRule {
	return pricing.PeakSeasonRule{
		ID:                 r.id,
		StartDate:          r.startDate,
		EndDate:            r.endDate,
		PriceIncrease:      r.priceIncrease,
		PercentageIncrease: r.percentageIncrease,
		IsActive:           r.isActive,
		CreatedAt:          r.createdAt,
	}
}
