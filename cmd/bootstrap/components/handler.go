package components

import (
	"stay-pricing/internal/handler"
	"stay-pricing/internal/handler/api"
	"stay-pricing/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPricingHandler,
		api.NewPropertyPricingHandler,
		api.NewRoomAvailabilityHandler,
		api.NewPeakSeasonRateHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	pricingHandler *api.PricingHandler,
	propertyPricing *api.PropertyPricingHandler,
	roomAvailability *api.RoomAvailabilityHandler,
	peakSeason *api.PeakSeasonRateHandler,
) handler.Handlers {
	return handler.Handlers{
		Pricing:          pricingHandler,
		PropertyPricing:  propertyPricing,
		RoomAvailability: roomAvailability,
		PeakSeasonRates:  peakSeason,
	}
}
