package readstore

import (
	"stay-pricing/internal/domain/pricing"
	sqlc "stay-pricing/internal/infra/sqlc/generated"
	"stay-pricing/internal/pkg/pgconv"
	"stay-pricing/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

func dateToPg(d pricing.Date) pgtype.Date {
	return pgconv.DateToPgtype(d.Time())
}

func dateFromPg(d pgtype.Date) pricing.Date {
	return pricing.DateOf(d.Time)
}

func mapPriceOverride(row sqlc.PropertyPricing) *queries.PriceOverrideView {
	return &queries.PriceOverrideView{
		ID:         row.ID,
		PropertyID: row.PropertyID,
		Date:       dateFromPg(row.Date),
		Price:      row.Price,
		PriceType:  pricing.PriceType(row.PriceType),
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func mapAvailability(row sqlc.RoomAvailability) *queries.AvailabilityView {
	return &queries.AvailabilityView{
		ID:          row.ID,
		RoomID:      row.RoomID,
		Date:        dateFromPg(row.Date),
		IsAvailable: row.IsAvailable,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func mapPeakSeasonRate(row sqlc.PeakSeasonRates) (*queries.PeakSeasonRateView, error) {
	pct, err := pgconv.Float64PtrFromPgtype(row.PercentageIncrease)
	if err != nil {
		return nil, err
	}
	return &queries.PeakSeasonRateView{
		ID:                 row.ID,
		PropertyID:         pgconv.UUIDPtrFromPgtype(row.PropertyID),
		RoomID:             pgconv.UUIDPtrFromPgtype(row.RoomID),
		Name:               row.Name,
		StartDate:          dateFromPg(row.StartDate),
		EndDate:            dateFromPg(row.EndDate),
		PriceIncrease:      row.PriceIncrease,
		PercentageIncrease: pct,
		IsActive:           row.IsActive,
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
