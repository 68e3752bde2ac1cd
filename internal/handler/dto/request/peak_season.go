package request

import (
	"stay-pricing/internal/domain/pricing"
	"stay-pricing/internal/domain/rates"
	"stay-pricing/internal/pkg/patch"

	"github.com/google/uuid"
)

type CreatePeakSeasonRateRequest struct {
	PropertyID         *uuid.UUID `json:"propertyId"`
	RoomID             *uuid.UUID `json:"roomId"`
	Name               string     `json:"name" binding:"required,max=100"`
	StartDate          string     `json:"startDate" binding:"required"`
	EndDate            string     `json:"endDate" binding:"required"`
	PriceIncrease      int64      `json:"priceIncrease" binding:"required"`
	PercentageIncrease *float64   `json:"percentageIncrease"`
	IsActive           *bool      `json:"isActive"`
}

func (r *CreatePeakSeasonRateRequest) ToSpec() (rates.PeakSeasonRateSpec, error) {
	start, err := pricing.ParseDate(r.StartDate)
	if err != nil {
		return rates.PeakSeasonRateSpec{}, err
	}
	end, err := pricing.ParseDate(r.EndDate)
	if err != nil {
		return rates.PeakSeasonRateSpec{}, err
	}
	return rates.PeakSeasonRateSpec{
		PropertyID:         r.PropertyID,
		RoomID:             r.RoomID,
		Name:               r.Name,
		StartDate:          start,
		EndDate:            end,
		PriceIncrease:      r.PriceIncrease,
		PercentageIncrease: r.PercentageIncrease,
		IsActive:           patch.Coalesce(r.IsActive, true),
	}, nil
}

// UpdatePeakSeasonRateRequest is a partial update; absent fields keep their value.
type UpdatePeakSeasonRateRequest struct {
	PropertyID         *uuid.UUID `json:"propertyId"`
	RoomID             *uuid.UUID `json:"roomId"`
	Name               *string    `json:"name" binding:"omitempty,max=100"`
	StartDate          *string    `json:"startDate"`
	EndDate            *string    `json:"endDate"`
	PriceIncrease      *int64     `json:"priceIncrease"`
	PercentageIncrease *float64   `json:"percentageIncrease"`
	IsActive           *bool      `json:"isActive"`

	// Falls back to priceIncrease by removing a stored percentage.
	ClearPercentageIncrease bool `json:"clearPercentageIncrease"`
}

func (r *UpdatePeakSeasonRateRequest) ToPatch() (rates.PeakSeasonRatePatch, error) {
	if r.PropertyID != nil || r.RoomID != nil {
		return rates.PeakSeasonRatePatch{}, rates.ErrTargetChangeNotAllowed
	}
	p := rates.PeakSeasonRatePatch{
		Name:               r.Name,
		PriceIncrease:      r.PriceIncrease,
		PercentageIncrease: r.PercentageIncrease,
		IsActive:           r.IsActive,

		ClearPercentageIncrease: r.ClearPercentageIncrease,
	}
	if r.StartDate != nil {
		d, err := pricing.ParseDate(*r.StartDate)
		if err != nil {
			return rates.PeakSeasonRatePatch{}, err
		}
		p.StartDate = &d
	}
	if r.EndDate != nil {
		d, err := pricing.ParseDate(*r.EndDate)
		if err != nil {
			return rates.PeakSeasonRatePatch{}, err
		}
		p.EndDate = &d
	}
	return p, nil
}
