package repository

import (
	"context"

	"stay-pricing/internal/domain/rates"
	"stay-pricing/internal/infra"
	"stay-pricing/internal/infra/repository/converter"
	sqlc "stay-pricing/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type RoomAvailabilityWriteQueries interface {
	UpsertRoomAvailability(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertRoomAvailabilityParams) (sqlc.RoomAvailability, error)
	UpdateRoomAvailability(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRoomAvailabilityParams) (sqlc.RoomAvailability, error)
	DeleteRoomAvailability(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type RoomAvailabilityRepository struct {
	queries RoomAvailabilityWriteQueries
}

func NewRoomAvailabilityRepository(queries RoomAvailabilityWriteQueries) *RoomAvailabilityRepository {
	return &RoomAvailabilityRepository{queries: queries}
}

func (r *RoomAvailabilityRepository) Upsert(ctx context.Context, tx sqlc.DBTX, b *rates.AvailabilityBlock) (*rates.AvailabilityBlock, error) {
	row, err := r.queries.UpsertRoomAvailability(ctx, tx, converter.AvailabilityToUpsertParams(b))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to upsert room availability", err)
	}
	return converter.AvailabilityFromRow(row), nil
}

func (r *RoomAvailabilityRepository) Update(ctx context.Context, tx sqlc.DBTX, b *rates.AvailabilityBlock) (*rates.AvailabilityBlock, error) {
	row, err := r.queries.UpdateRoomAvailability(ctx, tx, sqlc.UpdateRoomAvailabilityParams{
		ID:          b.ID(),
		IsAvailable: b.IsAvailable(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update room availability", err)
	}
	return converter.AvailabilityFromRow(row), nil
}

func (r *RoomAvailabilityRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteRoomAvailability(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room availability", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("room availability not found", nil, infra.KindNotFound)
	}
	return nil
}
