package repository

import (
	"context"

	"stay-pricing/internal/domain/rates"
	"stay-pricing/internal/infra"
	"stay-pricing/internal/infra/repository/converter"
	sqlc "stay-pricing/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type PeakSeasonRateWriteQueries interface {
	CreatePeakSeasonRate(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePeakSeasonRateParams) (sqlc.PeakSeasonRates, error)
	UpdatePeakSeasonRate(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePeakSeasonRateParams) (sqlc.PeakSeasonRates, error)
	DeletePeakSeasonRate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type PeakSeasonRateRepository struct {
	queries PeakSeasonRateWriteQueries
}

func NewPeakSeasonRateRepository(queries PeakSeasonRateWriteQueries) *PeakSeasonRateRepository {
	return &PeakSeasonRateRepository{queries: queries}
}

func (r *PeakSeasonRateRepository) Create(ctx context.Context, tx sqlc.DBTX, rate *rates.PeakSeasonRate) (*rates.PeakSeasonRate, error) {
	row, err := r.queries.CreatePeakSeasonRate(ctx, tx, converter.PeakSeasonRateToCreateParams(rate))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create peak season rate", err)
	}
	return r.fromRow(row)
}

func (r *PeakSeasonRateRepository) Update(ctx context.Context, tx sqlc.DBTX, rate *rates.PeakSeasonRate) (*rates.PeakSeasonRate, error) {
	row, err := r.queries.UpdatePeakSeasonRate(ctx, tx, converter.PeakSeasonRateToUpdateParams(rate))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update peak season rate", err)
	}
	return r.fromRow(row)
}

func (r *PeakSeasonRateRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeletePeakSeasonRate(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete peak season rate", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("peak season rate not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PeakSeasonRateRepository) fromRow(row sqlc.PeakSeasonRates) (*rates.PeakSeasonRate, error) {
	rate, err := converter.PeakSeasonRateFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map peak season rate", err, infra.KindDBFailure)
	}
	return rate, nil
}
