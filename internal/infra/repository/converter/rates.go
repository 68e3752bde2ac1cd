package converter

import (
	"stay-pricing/internal/domain/pricing"
	"stay-pricing/internal/domain/rates"
	sqlc "stay-pricing/internal/infra/sqlc/generated"
	"stay-pricing/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func DateToPg(d pricing.Date) pgtype.Date {
	return pgconv.DateToPgtype(d.Time())
}

func DateFromPg(d pgtype.Date) pricing.Date {
	return pricing.DateOf(d.Time)
}

func PriceOverrideToUpsertParams(o *rates.PriceOverride) sqlc.UpsertPropertyPricingParams {
	return sqlc.UpsertPropertyPricingParams{
		ID:         o.ID(),
		PropertyID: o.PropertyID(),
		Date:       DateToPg(o.Date()),
		Price:      o.Price(),
		PriceType:  o.PriceType().String(),
	}
}

func PriceOverrideFromRow(row sqlc.PropertyPricing) *rates.PriceOverride {
	return rates.ReconstructPriceOverride(
		row.ID,
		row.PropertyID,
		DateFromPg(row.Date),
		row.Price,
		pricing.PriceType(row.PriceType),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func AvailabilityToUpsertParams(b *rates.AvailabilityBlock) sqlc.UpsertRoomAvailabilityParams {
	return sqlc.UpsertRoomAvailabilityParams{
		ID:          b.ID(),
		RoomID:      b.RoomID(),
		Date:        DateToPg(b.Date()),
		IsAvailable: b.IsAvailable(),
	}
}

func AvailabilityFromRow(row sqlc.RoomAvailability) *rates.AvailabilityBlock {
	return rates.ReconstructAvailabilityBlock(
		row.ID,
		row.RoomID,
		DateFromPg(row.Date),
		row.IsAvailable,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func PeakSeasonRateToCreateParams(r *rates.PeakSeasonRate) sqlc.CreatePeakSeasonRateParams {
	return sqlc.CreatePeakSeasonRateParams{
		ID:                 r.ID(),
		PropertyID:         pgconv.UUIDPtrToPgtype(r.PropertyID()),
		RoomID:             pgconv.UUIDPtrToPgtype(r.RoomID()),
		Name:               r.Name(),
		StartDate:          DateToPg(r.StartDate()),
		EndDate:            DateToPg(r.EndDate()),
		PriceIncrease:      r.PriceIncrease(),
		PercentageIncrease: pgconv.Float64PtrToPgtype(r.PercentageIncrease()),
		IsActive:           r.IsActive(),
	}
}

func PeakSeasonRateToUpdateParams(r *rates.PeakSeasonRate) sqlc.UpdatePeakSeasonRateParams {
	return sqlc.UpdatePeakSeasonRateParams{
		ID:                 r.ID(),
		Name:               r.Name(),
		StartDate:          DateToPg(r.StartDate()),
		EndDate:            DateToPg(r.EndDate()),
		PriceIncrease:      r.PriceIncrease(),
		PercentageIncrease: pgconv.Float64PtrToPgtype(r.PercentageIncrease()),
		IsActive:           r.IsActive(),
	}
}

func PeakSeasonRateFromRow(row sqlc.PeakSeasonRates) (*rates.PeakSeasonRate, error) {
	pct, err := pgconv.Float64PtrFromPgtype(row.PercentageIncrease)
	if err != nil {
		return nil, err
	}
	return rates.ReconstructPeakSeasonRate(
		row.ID,
		pgconv.UUIDPtrFromPgtype(row.PropertyID),
		pgconv.UUIDPtrFromPgtype(row.RoomID),
		row.Name,
		DateFromPg(row.StartDate),
		DateFromPg(row.EndDate),
		row.PriceIncrease,
		pct,
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
