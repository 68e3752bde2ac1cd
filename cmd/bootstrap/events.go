package bootstrap

import (
	"context"
	"log/slog"

	"stay-pricing/internal/infra/events"
	"stay-pricing/internal/pkg/config"
	"stay-pricing/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher connects to the broker when AMQP_URL is set and falls back to a no-op publisher otherwise.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) (shared.EventPublisher, error) {
	if cfg.Events.AMQPURL == "" {
		slog.Info("AMQP_URL not set, rate change events are disabled")
		return events.NoopPublisher{}, nil
	}

	pub, err := events.NewAMQPPublisher(cfg.Events.AMQPURL, cfg.Events.Exchange)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})

	return pub, nil
}
