package handler

import (
	"net/http"

	"stay-pricing/internal/handler/api"
	"stay-pricing/internal/handler/middleware"
	"stay-pricing/internal/infra/metrics"
	"stay-pricing/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups the API handlers mounted by NewRouter.
type Handlers struct {
	Pricing          *api.PricingHandler
	PropertyPricing  *api.PropertyPricingHandler
	RoomAvailability *api.RoomAvailabilityHandler
	PeakSeasonRates  *api.PeakSeasonRateHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(metrics.GinMiddleware(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := []gin.HandlerFunc{authMiddleware.RequireAuth()}

	addRoutes(engine.Group("/properties"), []route{
		{Method: http.MethodGet, Path: "/:id/pricing-calculation", Handler: h.Pricing.PropertyCalculation},
	})
	addRoutes(engine.Group("/rooms"), []route{
		{Method: http.MethodGet, Path: "/:id/pricing-calculation", Handler: h.Pricing.RoomCalculation},
	})

	addRoutes(engine.Group("/property-pricing"), []route{
		{Method: http.MethodGet, Path: "", Handler: h.PropertyPricing.List},
		{Method: http.MethodGet, Path: "/:id", Handler: h.PropertyPricing.Get},
		{Method: http.MethodPost, Path: "", Handler: h.PropertyPricing.Upsert, Mw: requireAuth},
		{Method: http.MethodPost, Path: "/bulk", Handler: h.PropertyPricing.BulkUpsert, Mw: requireAuth},
		{Method: http.MethodPut, Path: "/:id", Handler: h.PropertyPricing.Update, Mw: requireAuth},
		{Method: http.MethodDelete, Path: "/:id", Handler: h.PropertyPricing.Delete, Mw: requireAuth},
	})

	addRoutes(engine.Group("/room-availability"), []route{
		{Method: http.MethodGet, Path: "", Handler: h.RoomAvailability.List},
		{Method: http.MethodGet, Path: "/:id", Handler: h.RoomAvailability.Get},
		{Method: http.MethodPost, Path: "", Handler: h.RoomAvailability.Upsert, Mw: requireAuth},
		{Method: http.MethodPost, Path: "/bulk", Handler: h.RoomAvailability.BulkUpsert, Mw: requireAuth},
		{Method: http.MethodPut, Path: "/:id", Handler: h.RoomAvailability.Update, Mw: requireAuth},
		{Method: http.MethodDelete, Path: "/:id", Handler: h.RoomAvailability.Delete, Mw: requireAuth},
	})

	addRoutes(engine.Group("/peak-season-rates"), []route{
		{Method: http.MethodGet, Path: "", Handler: h.PeakSeasonRates.List},
		{Method: http.MethodGet, Path: "/:id", Handler: h.PeakSeasonRates.Get},
		{Method: http.MethodPost, Path: "", Handler: h.PeakSeasonRates.Create, Mw: requireAuth},
		{Method: http.MethodPut, Path: "/:id", Handler: h.PeakSeasonRates.Update, Mw: requireAuth},
		{Method: http.MethodDelete, Path: "/:id", Handler: h.PeakSeasonRates.Delete, Mw: requireAuth},
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
