package request

import (
	"stay-pricing/internal/domain/pricing"
	"stay-pricing/internal/usecase/commands"

	"github.com/google/uuid"
)

type UpsertPriceOverrideRequest struct {
	PropertyID uuid.UUID `json:"propertyId" binding:"required"`
	Date       string    `json:"date" binding:"required"`
	Price      int64     `json:"price" binding:"required"`
	PriceType  string    `json:"priceType" binding:"required"`
}

func (r *UpsertPriceOverrideRequest) ToCommand() (commands.UpsertPriceOverrideRequest, error) {
	date, err := pricing.ParseDate(r.Date)
	if err != nil {
		return commands.UpsertPriceOverrideRequest{}, err
	}
	priceType, err := pricing.ParsePriceType(r.PriceType)
	if err != nil {
		return commands.UpsertPriceOverrideRequest{}, err
	}
	return commands.UpsertPriceOverrideRequest{
		PropertyID: r.PropertyID,
		Date:       date,
		Price:      r.Price,
		PriceType:  priceType,
	}, nil
}

type BulkUpsertPriceOverridesRequest struct {
	PropertyID uuid.UUID `json:"propertyId" binding:"required"`
	StartDate  string    `json:"startDate" binding:"required"`
	EndDate    string    `json:"endDate" binding:"required"`
	Price      int64     `json:"price" binding:"required"`
	PriceType  string    `json:"priceType" binding:"required"`
}

func (r *BulkUpsertPriceOverridesRequest) ToCommand() (commands.BulkUpsertPriceOverridesRequest, error) {
	rng, err := pricing.ParseRange(r.StartDate, r.EndDate)
	if err != nil {
		return commands.BulkUpsertPriceOverridesRequest{}, err
	}
	priceType, err := pricing.ParsePriceType(r.PriceType)
	if err != nil {
		return commands.BulkUpsertPriceOverridesRequest{}, err
	}
	return commands.BulkUpsertPriceOverridesRequest{
		PropertyID: r.PropertyID,
		Range:      rng,
		Price:      r.Price,
		PriceType:  priceType,
	}, nil
}

type UpdatePriceOverrideRequest struct {
	Price     *int64  `json:"price"`
	PriceType *string `json:"priceType"`
}

func (r *UpdatePriceOverrideRequest) ToCommand() (commands.UpdatePriceOverrideRequest, error) {
	out := commands.UpdatePriceOverrideRequest{Price: r.Price}
	if r.PriceType != nil {
		pt, err := pricing.ParsePriceType(*r.PriceType)
		if err != nil {
			return commands.UpdatePriceOverrideRequest{}, err
		}
		out.PriceType = &pt
	}
	return out, nil
}
