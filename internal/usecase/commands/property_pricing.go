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

type UpsertPriceOverrideRequest struct {
	PropertyID uuid.UUID
	Date       pricing.Date
	Price      int64
	PriceType  pricing.PriceType
}

type BulkUpsertPriceOverridesRequest struct {
	PropertyID uuid.UUID
	Range      pricing.Range
	Price      int64
	PriceType  pricing.PriceType
}

type UpdatePriceOverrideRequest struct {
	Price     *int64
	PriceType *pricing.PriceType
}

type PropertyPricingCommands interface {
	Upsert(ctx context.Context, actor user.Actor, req UpsertPriceOverrideRequest) (*rates.PriceOverride, error)
	BulkUpsert(ctx context.Context, actor user.Actor, req BulkUpsertPriceOverridesRequest) ([]*rates.PriceOverride, error)
	Update(ctx context.Context, actor user.Actor, id uuid.UUID, req UpdatePriceOverrideRequest) (*rates.PriceOverride, error)
	Delete(ctx context.Context, actor user.Actor, id uuid.UUID) error
}

type propertyPricingUseCaseImpl struct {
	uow        shared.UnitOfWork
	aggregator *pricing.Aggregator
	publisher  publisher
}

func NewPropertyPricingUseCase(uow shared.UnitOfWork, aggregator *pricing.Aggregator, events shared.EventPublisher, clk clock.Clock) PropertyPricingCommands {
	return &propertyPricingUseCaseImpl{
		uow:        uow,
		aggregator: aggregator,
		publisher:  publisher{events: events, clock: clk},
	}
}

func (uc *propertyPricingUseCaseImpl) Upsert(ctx context.Context, actor user.Actor, req UpsertPriceOverrideRequest) (*rates.PriceOverride, error) {
	override, err := rates.NewPriceOverride(req.PropertyID, req.Date, req.Price, req.PriceType)
	if err != nil {
		return nil, err
	}

	var saved *rates.PriceOverride
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := authorizeTarget(ctx, tx.Reads(), actor, pricing.TargetProperty, req.PropertyID); derr != nil {
			return derr
		}
		var derr error
		saved, derr = tx.PropertyPricing().Upsert(ctx, tx.DB(), override)
		return derr
	})
	if err != nil {
		return nil, err
	}

	uc.publisher.publish(ctx, shared.EventOverrideUpserted, pricing.TargetProperty, req.PropertyID, singleNight(req.Date))
	return saved, nil
}

func (uc *propertyPricingUseCaseImpl) BulkUpsert(ctx context.Context, actor user.Actor, req BulkUpsertPriceOverridesRequest) ([]*rates.PriceOverride, error) {
	if err := uc.aggregator.CheckRange(req.Range); err != nil {
		return nil, err
	}
	overrides, err := rates.NewPriceOverridesForRange(req.PropertyID, req.Range, req.Price, req.PriceType)
	if err != nil {
		return nil, err
	}

	saved := make([]*rates.PriceOverride, 0, len(overrides))
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		saved = saved[:0]
		if _, derr := authorizeTarget(ctx, tx.Reads(), actor, pricing.TargetProperty, req.PropertyID); derr != nil {
			return derr
		}
		for _, o := range overrides {
			row, derr := tx.PropertyPricing().Upsert(ctx, tx.DB(), o)
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

	uc.publisher.publish(ctx, shared.EventOverrideUpserted, pricing.TargetProperty, req.PropertyID, req.Range)
	return saved, nil
}

func (uc *propertyPricingUseCaseImpl) Update(ctx context.Context, actor user.Actor, id uuid.UUID, req UpdatePriceOverrideRequest) (*rates.PriceOverride, error) {
	var saved *rates.PriceOverride
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, derr := tx.Reads().PriceOverrideByID(ctx, id)
		if derr != nil {
			return notFoundAs(derr, errs.ErrRecordNotFound)
		}
		if _, derr = authorizeTarget(ctx, tx.Reads(), actor, pricing.TargetProperty, current.PropertyID()); derr != nil {
			return derr
		}
		if derr = current.Update(req.Price, req.PriceType); derr != nil {
			return derr
		}
		saved, derr = tx.PropertyPricing().Update(ctx, tx.DB(), current)
		return derr
	})
	if err != nil {
		return nil, err
	}

	uc.publisher.publish(ctx, shared.EventOverrideUpserted, pricing.TargetProperty, saved.PropertyID(), singleNight(saved.Date()))
	return saved, nil
}

func (uc *propertyPricingUseCaseImpl) Delete(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	var deleted *rates.PriceOverride
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, derr := tx.Reads().PriceOverrideByID(ctx, id)
		if derr != nil {
			return notFoundAs(derr, errs.ErrRecordNotFound)
		}
		if _, derr = authorizeTarget(ctx, tx.Reads(), actor, pricing.TargetProperty, current.PropertyID()); derr != nil {
			return derr
		}
		if derr = tx.PropertyPricing().Delete(ctx, tx.DB(), id); derr != nil {
			return notFoundAs(derr, errs.ErrRecordNotFound)
		}
		deleted = current
		return nil
	})
	if err != nil {
		return err
	}

	uc.publisher.publish(ctx, shared.EventOverrideDeleted, pricing.TargetProperty, deleted.PropertyID(), singleNight(deleted.Date()))
	return nil
}
