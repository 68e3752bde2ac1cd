package events

import (
	"context"
	"log/slog"

	"stay-pricing/internal/usecase/shared"
)

// NoopPublisher drops events. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, evt shared.RatesChanged) error {
	slog.DebugContext(ctx, "rates event dropped (no broker configured)",
		"event", string(evt.Name),
		"target_id", evt.TargetID.String())
	return nil
}
