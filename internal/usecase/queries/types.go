package queries

import (
	"time"

	"stay-pricing/internal/domain/pricing"

	"github.com/google/uuid"
)

// TargetView is the rate-relevant part of a property or room.
type TargetView struct {
	ID                uuid.UUID          `json:"id"`
	Kind              pricing.TargetKind `json:"kind"`
	PropertyID        uuid.UUID          `json:"property_id"`
	HostID            uuid.UUID          `json:"host_id"`
	BasePricePerNight *int64             `json:"base_price_per_night,omitempty"`
}

func (t TargetView) ToTarget() pricing.Target {
	return pricing.Target{ID: t.ID, Kind: t.Kind, BasePricePerNight: t.BasePricePerNight}
}

type PriceOverrideView struct {
	ID         uuid.UUID         `json:"id"`
	PropertyID uuid.UUID         `json:"property_id"`
	Date       pricing.Date      `json:"date"`
	Price      int64             `json:"price"`
	PriceType  pricing.PriceType `json:"price_type"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

func (v PriceOverrideView) ToOverride() pricing.Override {
	return pricing.Override{Date: v.Date, Price: v.Price, PriceType: v.PriceType}
}

type AvailabilityView struct {
	ID          uuid.UUID    `json:"id"`
	RoomID      uuid.UUID    `json:"room_id"`
	Date        pricing.Date `json:"date"`
	IsAvailable bool         `json:"is_available"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func (v AvailabilityView) ToBlock() pricing.AvailabilityBlock {
	return pricing.AvailabilityBlock{Date: v.Date, IsAvailable: v.IsAvailable}
}

type PeakSeasonRateView struct {
	ID                 uuid.UUID    `json:"id"`
	PropertyID         *uuid.UUID   `json:"property_id,omitempty"`
	RoomID             *uuid.UUID   `json:"room_id,omitempty"`
	Name               string       `json:"name"`
	StartDate          pricing.Date `json:"start_date"`
	EndDate            pricing.Date `json:"end_date"`
	PriceIncrease      int64        `json:"price_increase"`
	PercentageIncrease *float64     `json:"percentage_increase,omitempty"`
	IsActive           bool         `json:"is_active"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

func (v PeakSeasonRateView) ToRule() pricing.PeakSeasonRule {
	return pricing.PeakSeasonRule{
		ID:                 v.ID,
		StartDate:          v.StartDate,
		EndDate:            v.EndDate,
		PriceIncrease:      v.PriceIncrease,
		PercentageIncrease: v.PercentageIncrease,
		IsActive:           v.IsActive,
		CreatedAt:          v.CreatedAt,
	}
}

// PeakSeasonRateFilter selects rates by exactly one target.
type PeakSeasonRateFilter struct {
	PropertyID *uuid.UUID
	RoomID     *uuid.UUID
}
