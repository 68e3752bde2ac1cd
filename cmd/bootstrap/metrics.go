package bootstrap

import (
	"stay-pricing/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		func() *metrics.Metrics {
			return metrics.New(prometheus.DefaultRegisterer)
		},
	),
)
