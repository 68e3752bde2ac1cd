package commands

import (
	"context"

	"stay-pricing/internal/domain/pricing"
	"stay-pricing/internal/domain/rates"
	"stay-pricing/internal/domain/user"
	"stay-pricing/internal/pkg/clock"
	"stay-pricing/internal/pkg/errs"
	"stay-pricing/internal/usecase/shared"

	"github.com/google/uuid"
)

type UpsertAvailabilityRequest struct {
	RoomID      uuid.UUID
	Date        pricing.Date
	IsAvailable bool
}

type BulkUpsertAvailabilityRequest struct {
	RoomID      uuid.UUID
	Range       pricing.Range
	IsAvailable bool
}

type UpdateAvailabilityRequest struct {
	IsAvailable bool
}

type RoomAvailabilityCommands interface {
	Upsert(ctx context.Context, actor user.Actor, req UpsertAvailabilityRequest) (*rates.AvailabilityBlock, error)
	BulkUpsert(ctx context.Context, actor user.Actor, req BulkUpsertAvailabilityRequest) ([]*rates.AvailabilityBlock, error)
	Update(ctx context.Context, actor user.Actor, id uuid.UUID, req UpdateAvailabilityRequest) (*rates.AvailabilityBlock, error)
	Delete(ctx context.Context, actor user.Actor, id uuid.UUID) error
}

type roomAvailabilityUseCaseImpl struct {
	uow        shared.UnitOfWork
	aggregator *pricing.Aggregator
	publisher  publisher
}

func NewRoomAvailabilityUseCase(uow shared.UnitOfWork, aggregator *pricing.Aggregator, events shared.EventPublisher, clk clock.Clock) RoomAvailabilityCommands {
	return &roomAvailabilityUseCaseImpl{
		uow:        uow,
		aggregator: aggregator,
		publisher:  publisher{events: events, clock: clk},
	}
}

func (uc *roomAvailabilityUseCaseImpl) Upsert(ctx context.Context, actor user.Actor, req UpsertAvailabilityRequest) (*rates.AvailabilityBlock, error) {
	block := rates.NewAvailabilityBlock(req.RoomID, req.Date, req.IsAvailable)

	var saved *rates.AvailabilityBlock
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := authorizeTarget(ctx, tx.Reads(), actor, pricing.TargetRoom, req.RoomID); derr != nil {
			return derr
		}
		var derr error
		saved, derr = tx.RoomAvailability().Upsert(ctx, tx.DB(), block)
		return derr
	})
	if err != nil {
		return nil, err
	}

	uc.publisher.publish(ctx, shared.EventAvailabilityUpserted, pricing.TargetRoom, req.RoomID, singleNight(req.Date))
	return saved, nil
}

func (uc *roomAvailabilityUseCaseImpl) BulkUpsert(ctx context.Context, actor user.Actor, req BulkUpsertAvailabilityRequest) ([]*rates.AvailabilityBlock, error) {
	if err := uc.aggregator.CheckRange(req.Range); err != nil {
		return nil, err
	}
	blocks, err := rates.NewAvailabilityBlocksForRange(req.RoomID, req.Range, req.IsAvailable)
	if err != nil {
		return nil, err
	}

	saved := make([]*rates.AvailabilityBlock, 0, len(blocks))
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		saved = saved[:0]
		if _, derr := authorizeTarget(ctx, tx.Reads(), actor, pricing.TargetRoom, req.RoomID); derr != nil {
			return derr
		}
		for _, b := range blocks {
			row, derr := tx.RoomAvailability().Upsert(ctx, tx.DB(), b)
			if derr != nil {
				return derr
			}
			saved = append(saved, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publisher.publish(ctx, shared.EventAvailabilityUpserted, pricing.TargetRoom, req.RoomID, req.Range)
	return saved, nil
}

func (uc *roomAvailabilityUseCaseImpl) Update(ctx context.Context, actor user.Actor, id uuid.UUID, req UpdateAvailabilityRequest) (*rates.AvailabilityBlock, error) {
	var saved *rates.AvailabilityBlock
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, derr := tx.Reads().AvailabilityBlockByID(ctx, id)
		if derr != nil {
			return notFoundAs(derr, errs.ErrRecordNotFound)
		}
		if _, derr = authorizeTarget(ctx, tx.Reads(), actor, pricing.TargetRoom, current.RoomID()); derr != nil {
			return derr
		}
		current.SetAvailable(req.IsAvailable)
		saved, derr = tx.RoomAvailability().Update(ctx, tx.DB(), current)
		return derr
	})
	if err != nil {
		return nil, err
	}

	uc.publisher.publish(ctx, shared.EventAvailabilityUpserted, pricing.TargetRoom, saved.RoomID(), singleNight(saved.Date()))
	return saved, nil
}

func (uc *roomAvailabilityUseCaseImpl) Delete(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	var deleted *rates.AvailabilityBlock
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, derr := tx.Reads().AvailabilityBlockByID(ctx, id)
		if derr != nil {
			return notFoundAs(derr, errs.ErrRecordNotFound)
		}
		if _, derr = authorizeTarget(ctx, tx.Reads(), actor, pricing.TargetRoom, current.RoomID()); derr != nil {
			return derr
		}
		if derr = tx.RoomAvailability().Delete(ctx, tx.DB(), id); derr != nil {
			return notFoundAs(derr, errs.ErrRecordNotFound)
		}
		deleted = current
		return nil
	})
	if err != nil {
		return err
	}

	uc.publisher.publish(ctx, shared.EventAvailabilityDeleted, pricing.TargetRoom, deleted.RoomID(), singleNight(deleted.Date()))
	return nil
}
