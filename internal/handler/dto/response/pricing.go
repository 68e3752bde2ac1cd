package response

import (
	"stay-pricing/internal/domain/pricing"
	"stay-pricing/internal/usecase/queries"

	"github.com/google/uuid"
)

type NightResponse struct {
	Date      pricing.Date      `json:"date"`
	Price     *int64            `json:"price"`
	PriceType pricing.PriceType `json:"priceType"`
}

type PropertyCalculationResponse struct {
	PropertyID      uuid.UUID       `json:"propertyId"`
	StartDate       pricing.Date    `json:"startDate"`
	EndDate         pricing.Date    `json:"endDate"`
	Nights          int             `json:"nights"`
	BaseNights      int             `json:"baseNights"`
	PeakNights      int             `json:"peakNights"`
	BestDealNights  int             `json:"bestDealNights"`
	SoldOutNights   int             `json:"soldOutNights"`
	TotalPrice      int64           `json:"totalPrice"`
	AveragePerNight int64           `json:"averagePerNight"`
	Breakdown       []NightResponse `json:"breakdown"`
}

type RoomCalculationResponse struct {
	RoomID          uuid.UUID    `json:"roomId"`
	StartDate       pricing.Date `json:"startDate"`
	EndDate         pricing.Date `json:"endDate"`
	Nights          int          `json:"nights"`
	PricePerNight   int64        `json:"pricePerNight"`
	TotalPrice      int64        `json:"totalPrice"`
	AveragePerNight int64        `json:"averagePerNight"`
	SoldOutNights   int          `json:"soldOutNights"`
}

func FromPropertyCalculation(calc *queries.PropertyCalculation) *PropertyCalculationResponse {
	s := calc.Summary
	breakdown := make([]NightResponse, len(s.Breakdown))
	for i, n := range s.Breakdown {
		breakdown[i] = NightResponse{Date: n.Date, Price: n.Price, PriceType: n.Status}
	}
	return &PropertyCalculationResponse{
		PropertyID:      calc.PropertyID,
		StartDate:       calc.Range.Start,
		EndDate:         calc.Range.End,
		Nights:          s.Nights,
		BaseNights:      s.Counts.Available,
		PeakNights:      s.Counts.PeakSeason,
		BestDealNights:  s.Counts.BestDeal,
		SoldOutNights:   s.Counts.SoldOut,
		TotalPrice:      s.TotalPrice,
		AveragePerNight: s.AveragePerNight,
		Breakdown:       breakdown,
	}
}

func FromRoomCalculation(calc *queries.RoomCalculation) *RoomCalculationResponse {
	return &RoomCalculationResponse{
		RoomID:          calc.RoomID,
		StartDate:       calc.Range.Start,
		EndDate:         calc.Range.End,
		Nights:          calc.Summary.Nights,
		PricePerNight:   calc.PricePerNight,
		TotalPrice:      calc.Summary.TotalPrice,
		AveragePerNight: calc.Summary.AveragePerNight,
		SoldOutNights:   calc.Summary.Counts.SoldOut,
	}
}
