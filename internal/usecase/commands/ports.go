package commands

import (
	"context"
	"log/slog"

	"stay-pricing/internal/domain/pricing"
	"stay-pricing/internal/domain/user"
	"stay-pricing/internal/infra"
	"stay-pricing/internal/pkg/clock"
	"stay-pricing/internal/pkg/errs"
	"stay-pricing/internal/usecase/shared"

	"github.com/google/uuid"
)

// authorizeTarget loads the target and checks the actor may change its rates.
func authorizeTarget(ctx context.Context, reads shared.CommandReads, actor user.Actor, kind pricing.TargetKind, id uuid.UUID) (*shared.TargetSnapshot, error) {
	snap, err := reads.TargetByID(ctx, kind, id)
	if err != nil {
		return nil, notFoundAs(err, errs.ErrTargetNotFound)
	}
	if !actor.CanManage(snap.HostID) {
		return nil, errs.ErrOwnership
	}
	return snap, nil
}

func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}

// publisher stamps and sends events after commit. Delivery failures are logged and never fail the write.
type publisher struct {
	events shared.EventPublisher
	clock  clock.Clock
}

func (p publisher) publish(ctx context.Context, name shared.EventName, kind pricing.TargetKind, targetID uuid.UUID, r pricing.Range) {
	if p.events == nil {
		return
	}
	evt := shared.RatesChanged{
		ID:         uuid.New(),
		Name:       name,
		TargetKind: kind,
		TargetID:   targetID,
		StartDate:  r.Start,
		EndDate:    r.End,
		OccurredAt: p.clock.Now(),
	}
	if err := p.events.Publish(ctx, evt); err != nil {
		slog.WarnContext(ctx, "failed to publish rates event",
			"event", string(name),
			"target_id", targetID.String(),
			"error", err.Error())
	}
}

func singleNight(d pricing.Date) pricing.Range {
	return pricing.Range{Start: d, End: d.AddDays(1)}
}
