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

type PeakSeasonRateCommands interface {
	Create(ctx context.Context, actor user.Actor, spec rates.PeakSeasonRateSpec) (*rates.PeakSeasonRate, error)
	Update(ctx context.Context, actor user.Actor, id uuid.UUID, p rates.PeakSeasonRatePatch) (*rates.PeakSeasonRate, error)
	Delete(ctx context.Context, actor user.Actor, id uuid.UUID) error
}

type peakSeasonUseCaseImpl struct {
	uow       shared.UnitOfWork
	publisher publisher
}

func NewPeakSeasonRateUseCase(uow shared.UnitOfWork, events shared.EventPublisher, clk clock.Clock) PeakSeasonRateCommands {
	return &peakSeasonUseCaseImpl{
		uow:       uow,
		publisher: publisher{events: events, clock: clk},
	}
}

func (uc *peakSeasonUseCaseImpl) Create(ctx context.Context, actor user.Actor, spec rates.PeakSeasonRateSpec) (*rates.PeakSeasonRate, error) {
	rate, err := rates.NewPeakSeasonRate(spec)
	if err != nil {
		return nil, err
	}
	targetID, kind := rate.TargetID()

	var saved *rates.PeakSeasonRate
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := authorizeTarget(ctx, tx.Reads(), actor, kind, targetID); derr != nil {
			return derr
		}
		var derr error
		saved, derr = tx.PeakSeasonRates().Create(ctx, tx.DB(), rate)
		return derr
	})
	if err != nil {
		return nil, err
	}

	uc.publisher.publish(ctx, shared.EventPeakSeasonChanged, kind, targetID, seasonSpan(saved))
	return saved, nil
}

func (uc *peakSeasonUseCaseImpl) Update(ctx context.Context, actor user.Actor, id uuid.UUID, p rates.PeakSeasonRatePatch) (*rates.PeakSeasonRate, error) {
	var (
		saved  *rates.PeakSeasonRate
		before pricing.Range
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, derr := tx.Reads().PeakSeasonRateByID(ctx, id)
		if derr != nil {
			return notFoundAs(derr, errs.ErrRecordNotFound)
		}
		targetID, kind := current.TargetID()
		if _, derr = authorizeTarget(ctx, tx.Reads(), actor, kind, targetID); derr != nil {
			return derr
		}
		before = seasonSpan(current)
		if derr = current.Apply(p); derr != nil {
			return derr
		}
		saved, derr = tx.PeakSeasonRates().Update(ctx, tx.DB(), current)
		return derr
	})
	if err != nil {
		return nil, err
	}

	targetID, kind := saved.TargetID()
	uc.publisher.publish(ctx, shared.EventPeakSeasonChanged, kind, targetID, union(before, seasonSpan(saved)))
	return saved, nil
}

func (uc *peakSeasonUseCaseImpl) Delete(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	var deleted *rates.PeakSeasonRate
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, derr := tx.Reads().PeakSeasonRateByID(ctx, id)
		if derr != nil {
			return notFoundAs(derr, errs.ErrRecordNotFound)
		}
		targetID, kind := current.TargetID()
		if _, derr = authorizeTarget(ctx, tx.Reads(), actor, kind, targetID); derr != nil {
			return derr
		}
		if derr = tx.PeakSeasonRates().Delete(ctx, tx.DB(), id); derr != nil {
			return notFoundAs(derr, errs.ErrRecordNotFound)
		}
		deleted = current
		return nil
	})
	if err != nil {
		return err
	}

	targetID, kind := deleted.TargetID()
	uc.publisher.publish(ctx, shared.EventPeakSeasonDeleted, kind, targetID, seasonSpan(deleted))
	return nil
}

// seasonSpan converts the inclusive season to an end-exclusive range.
func seasonSpan(r *rates.PeakSeasonRate) pricing.Range {
	return pricing.Range{Start: r.StartDate(), End: r.EndDate().AddDays(1)}
}

func union(a, b pricing.Range) pricing.Range {
	out := a
	if b.Start.Before(out.Start) {
		out.Start = b.Start
	}
	if b.End.After(out.End) {
		out.End = b.End
	}
	return out
}
