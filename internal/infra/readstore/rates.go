package readstore

import (
	"context"

	"stay-pricing/internal/domain/pricing"
	"stay-pricing/internal/infra"
	sqlc "stay-pricing/internal/infra/sqlc/generated"
	"stay-pricing/internal/usecase/queries"

	"github.com/google/uuid"
)

type PropertyPricingReadQueries interface {
	GetPropertyPricingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.PropertyPricing, error)
	ListPropertyPricingInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPropertyPricingInRangeParams) ([]sqlc.PropertyPricing, error)
}

type PropertyPricingReadStore struct {
	queries PropertyPricingReadQueries
	db      sqlc.DBTX
}

func NewPropertyPricingReadStore(queries PropertyPricingReadQueries, db sqlc.DBTX) *PropertyPricingReadStore {
	return &PropertyPricingReadStore{queries: queries, db: db}
}

func (r *PropertyPricingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PriceOverrideView, error) {
	row, err := r.queries.GetPropertyPricingByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get property pricing by id", err)
	}
	return mapPriceOverride(row), nil
}

func (r *PropertyPricingReadStore) ListInRange(ctx context.Context, propertyID uuid.UUID, rng pricing.Range) ([]*queries.PriceOverrideView, error) {
	rows, err := r.queries.ListPropertyPricingInRange(ctx, r.db, sqlc.ListPropertyPricingInRangeParams{
		PropertyID: propertyID,
		StartDate:  dateToPg(rng.Start),
		EndDate:    dateToPg(rng.End),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list property pricing", err)
	}
	result := make([]*queries.PriceOverrideView, len(rows))
	for i, row := range rows {
		result[i] = mapPriceOverride(row)
	}
	return result, nil
}

type RoomAvailabilityReadQueries interface {
	GetRoomAvailabilityByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.RoomAvailability, error)
	ListRoomAvailabilityInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRoomAvailabilityInRangeParams) ([]sqlc.RoomAvailability, error)
}

type RoomAvailabilityReadStore struct {
	queries RoomAvailabilityReadQueries
	db      sqlc.DBTX
}

func NewRoomAvailabilityReadStore(queries RoomAvailabilityReadQueries, db sqlc.DBTX) *RoomAvailabilityReadStore {
	return &RoomAvailabilityReadStore{queries: queries, db: db}
}

func (r *RoomAvailabilityReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AvailabilityView, error) {
	row, err := r.queries.GetRoomAvailabilityByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get room availability by id", err)
	}
	return mapAvailability(row), nil
}

func (r *RoomAvailabilityReadStore) ListInRange(ctx context.Context, roomID uuid.UUID, rng pricing.Range) ([]*queries.AvailabilityView, error) {
	rows, err := r.queries.ListRoomAvailabilityInRange(ctx, r.db, sqlc.ListRoomAvailabilityInRangeParams{
		RoomID:    roomID,
		StartDate: dateToPg(rng.Start),
		EndDate:   dateToPg(rng.End),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room availability", err)
	}
	result := make([]*queries.AvailabilityView, len(rows))
	for i, row := range rows {
		result[i] = mapAvailability(row)
	}
	return result, nil
}

type PeakSeasonRateReadQueries interface {
	GetPeakSeasonRateByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.PeakSeasonRates, error)
	ListPeakSeasonRatesByProperty(ctx context.Context, db sqlc.DBTX, propertyID uuid.UUID) ([]sqlc.PeakSeasonRates, error)
	ListPeakSeasonRatesByRoom(ctx context.Context, db sqlc.DBTX, roomID uuid.UUID) ([]sqlc.PeakSeasonRates, error)
}

type PeakSeasonRateReadStore struct {
	queries PeakSeasonRateReadQueries
	db      sqlc.DBTX
}

func NewPeakSeasonRateReadStore(queries PeakSeasonRateReadQueries, db sqlc.DBTX) *PeakSeasonRateReadStore {
	return &PeakSeasonRateReadStore{queries: queries, db: db}
}

func (r *PeakSeasonRateReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PeakSeasonRateView, error) {
	row, err := r.queries.GetPeakSeasonRateByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get peak season rate by id", err)
	}
	v, err := mapPeakSeasonRate(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map peak season rate", err, infra.KindDBFailure)
	}
	return v, nil
}

func (r *PeakSeasonRateReadStore) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*queries.PeakSeasonRateView, error) {
	rows, err := r.queries.ListPeakSeasonRatesByProperty(ctx, r.db, propertyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list peak season rates by property", err)
	}
	return mapPeakSeasonRates(rows)
}

func (r *PeakSeasonRateReadStore) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*queries.PeakSeasonRateView, error) {
	rows, err := r.queries.ListPeakSeasonRatesByRoom(ctx, r.db, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list peak season rates by room", err)
	}
	return mapPeakSeasonRates(rows)
}

func mapPeakSeasonRates(rows []sqlc.PeakSeasonRates) ([]*queries.PeakSeasonRateView, error) {
	result := make([]*queries.PeakSeasonRateView, len(rows))
	for i, row := range rows {
		v, err := mapPeakSeasonRate(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to map peak season rate", err, infra.KindDBFailure)
		}
		result[i] = v
	}
	return result, nil
}
