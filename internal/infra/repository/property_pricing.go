package repository

import (
	"context"

	"stay-pricing/internal/domain/rates"
	"stay-pricing/internal/infra"
	"stay-pricing/internal/infra/repository/converter"
	sqlc "stay-pricing/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type PropertyPricingWriteQueries interface {
	UpsertPropertyPricing(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertPropertyPricingParams) (sqlc.PropertyPricing, error)
	UpdatePropertyPricing(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePropertyPricingParams) (sqlc.PropertyPricing, error)
	DeletePropertyPricing(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type PropertyPricingRepository struct {
	queries PropertyPricingWriteQueries
}

func NewPropertyPricingRepository(queries PropertyPricingWriteQueries) *PropertyPricingRepository {
	return &PropertyPricingRepository{queries: queries}
}

// Upsert writes o keyed by (property, date). An existing row keeps its id.
func (r *PropertyPricingRepository) Upsert(ctx context.Context, tx sqlc.DBTX, o *rates.PriceOverride) (*rates.PriceOverride, error) {
	row, err := r.queries.UpsertPropertyPricing(ctx, tx, converter.PriceOverrideToUpsertParams(o))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to upsert property pricing", err)
	}
	return converter.PriceOverrideFromRow(row), nil
}

func (r *PropertyPricingRepository) Update(ctx context.Context, tx sqlc.DBTX, o *rates.PriceOverride) (*rates.PriceOverride, error) {
	row, err := r.queries.UpdatePropertyPricing(ctx, tx, sqlc.UpdatePropertyPricingParams{
		ID:        o.ID(),
		Price:     o.Price(),
		PriceType: o.PriceType().String(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update property pricing", err)
	}
	return converter.PriceOverrideFromRow(row), nil
}

func (r *PropertyPricingRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeletePropertyPricing(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete property pricing", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("property pricing not found", nil, infra.KindNotFound)
	}
	return nil
}
