package response

import (
	"fmt"
	"time"

	"stay-pricing/internal/domain/pricing"
	"stay-pricing/internal/domain/rates"
	"stay-pricing/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PriceOverrideResponse struct {
	ID         uuid.UUID         `json:"id"`
	PropertyID uuid.UUID         `json:"propertyId"`
	Date       pricing.Date      `json:"date"`
	Price      int64             `json:"price"`
	PriceType  pricing.PriceType `json:"priceType"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

type AvailabilityResponse struct {
	ID          uuid.UUID    `json:"id"`
	RoomID      uuid.UUID    `json:"roomId"`
	Date        pricing.Date `json:"date"`
	IsAvailable bool         `json:"isAvailable"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

type PeakSeasonRateResponse struct {
	ID                 uuid.UUID    `json:"id"`
	PropertyID         *uuid.UUID   `json:"propertyId,omitempty"`
	RoomID             *uuid.UUID   `json:"roomId,omitempty"`
	Name               string       `json:"name"`
	StartDate          pricing.Date `json:"startDate"`
	EndDate            pricing.Date `json:"endDate"`
	PriceIncrease      int64        `json:"priceIncrease"`
	PercentageIncrease *float64     `json:"percentageIncrease,omitempty"`
	IsActive           bool         `json:"isActive"`
	CreatedAt          time.Time    `json:"createdAt"`
	UpdatedAt          time.Time    `json:"updatedAt"`
}

// copyView copies a read model into its response. Field sets are kept identical, so a failure is a programming error.
func copyView[T any](src any) *T {
	dst := new(T)
	if err := copier.Copy(dst, src); err != nil {
		panic(fmt.Sprintf("copy %T into %T: %v", src, dst, err))
	}
	return dst
}

func copyViews[T any, V any](views []*V) []*T {
	out := make([]*T, len(views))
	for i, v := range views {
		out[i] = copyView[T](v)
	}
	return out
}

func FromPriceOverrideView(v *queries.PriceOverrideView) *PriceOverrideResponse {
	return copyView[PriceOverrideResponse](v)
}

func FromPriceOverrideViews(vs []*queries.PriceOverrideView) []*PriceOverrideResponse {
	return copyViews[PriceOverrideResponse](vs)
}

func FromPriceOverride(o *rates.PriceOverride) *PriceOverrideResponse {
	return &PriceOverrideResponse{
		ID:         o.ID(),
		PropertyID: o.PropertyID(),
		Date:       o.Date(),
		Price:      o.Price(),
		PriceType:  o.PriceType(),
		CreatedAt:  o.CreatedAt(),
		UpdatedAt:  o.UpdatedAt(),
	}
}

func FromPriceOverrides(os []*rates.PriceOverride) []*PriceOverrideResponse {
	out := make([]*PriceOverrideResponse, len(os))
	for i, o := range os {
		out[i] = FromPriceOverride(o)
	}
	return out
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	return copyView[AvailabilityResponse](v)
}

func FromAvailabilityViews(vs []*queries.AvailabilityView) []*AvailabilityResponse {
	return copyViews[AvailabilityResponse](vs)
}

func FromAvailabilityBlock(b *rates.AvailabilityBlock) *AvailabilityResponse {
	return &AvailabilityResponse{
		ID:          b.ID(),
		RoomID:      b.RoomID(),
		Date:        b.Date(),
		IsAvailable: b.IsAvailable(),
		CreatedAt:   b.CreatedAt(),
		UpdatedAt:   b.UpdatedAt(),
	}
}

func FromAvailabilityBlocks(bs []*rates.AvailabilityBlock) []*AvailabilityResponse {
	out := make([]*AvailabilityResponse, len(bs))
	for i, b := range bs {
		out[i] = FromAvailabilityBlock(b)
	}
	return out
}

func FromPeakSeasonRateView(v *queries.PeakSeasonRateView) *PeakSeasonRateResponse {
	return copyView[PeakSeasonRateResponse](v)
}

func FromPeakSeasonRateViews(vs []*queries.PeakSeasonRateView) []*PeakSeasonRateResponse {
	return copyViews[PeakSeasonRateResponse](vs)
}

func FromPeakSeasonRate(r *rates.PeakSeasonRate) *PeakSeasonRateResponse {
	return &PeakSeasonRateResponse{
		ID:                 r.ID(),
		PropertyID:         r.PropertyID(),
		RoomID:             r.RoomID(),
		Name:               r.Name(),
		StartDate:          r.StartDate(),
		EndDate:            r.EndDate(),
		PriceIncrease:      r.PriceIncrease(),
		PercentageIncrease: r.PercentageIncrease(),
		IsActive:           r.IsActive(),
		CreatedAt:          r.CreatedAt(),
		UpdatedAt:          r.UpdatedAt(),
	}
}
