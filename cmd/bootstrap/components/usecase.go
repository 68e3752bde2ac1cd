package components

import (
	"stay-pricing/internal/domain/pricing"
	"stay-pricing/internal/infra/metrics"
	"stay-pricing/internal/pkg/clock"
	"stay-pricing/internal/pkg/config"
	"stay-pricing/internal/usecase"
	"stay-pricing/internal/usecase/commands"
	"stay-pricing/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) *pricing.Aggregator {
		return pricing.NewAggregator(cfg.Pricing.MaxNights)
	},
	func(m *metrics.Metrics) queries.CalculationObserver {
		return m
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPropertyPricingUseCase,
		commands.NewRoomAvailabilityUseCase,
		commands.NewPeakSeasonRateUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPricingQueries,
		queries.NewRatesQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
