package api

import (
	"net/http"

	reqdto "stay-pricing/internal/handler/dto/request"
	resdto "stay-pricing/internal/handler/dto/response"
	"stay-pricing/internal/handler/httperr"
	"stay-pricing/internal/handler/middleware"
	"stay-pricing/internal/usecase/commands"
	"stay-pricing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PropertyPricingHandler struct {
	cmds commands.PropertyPricingCommands
	q    queries.RatesQueries
}

func NewPropertyPricingHandler(cmds commands.PropertyPricingCommands, q queries.RatesQueries) *PropertyPricingHandler {
	return &PropertyPricingHandler{cmds: cmds, q: q}
}

// @Summary Upsert property pricing
// @Description Create or replace the price override of a property for one date
// @Tags property-pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpsertPriceOverrideRequest true "Price override"
// @Success 201 {object} resdto.PriceOverrideResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /property-pricing [post]
func (h *PropertyPricingHandler) Upsert(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, httperr.CodeUnauthorized, middleware.ErrUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.UpsertPriceOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err, "Invalid request")
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	saved, err := h.cmds.Upsert(c.Request.Context(), actor, cmd)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPriceOverride(saved))
}

// @Summary Bulk upsert property pricing
// @Description Apply one price and type to every date in [startDate, endDate)
// @Tags property-pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BulkUpsertPriceOverridesRequest true "Price override range"
// @Success 201 {array} resdto.PriceOverrideResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /property-pricing/bulk [post]
func (h *PropertyPricingHandler) BulkUpsert(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, httperr.CodeUnauthorized, middleware.ErrUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.BulkUpsertPriceOverridesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err, "Invalid request")
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	saved, err := h.cmds.BulkUpsert(c.Request.Context(), actor, cmd)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPriceOverrides(saved))
}

// @Summary Update property pricing
// @Description Change price and/or type of an existing override
// @Tags property-pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Override ID"
// @Param request body reqdto.UpdatePriceOverrideRequest true "Fields to change"
// @Success 200 {object} resdto.PriceOverrideResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /property-pricing/{id} [put]
func (h *PropertyPricingHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortInvalidRequest(c, err, "Invalid id")
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, httperr.CodeUnauthorized, middleware.ErrUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.UpdatePriceOverrideRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		abortInvalidRequest(c, bindErr, "Invalid request")
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	saved, err := h.cmds.Update(c.Request.Context(), actor, id, cmd)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPriceOverride(saved))
}

// @Summary Delete property pricing
// @Tags property-pricing
// @Security BearerAuth
// @Param id path string true "Override ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /property-pricing/{id} [delete]
func (h *PropertyPricingHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortInvalidRequest(c, err, "Invalid id")
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, httperr.CodeUnauthorized, middleware.ErrUnauthenticated, "Unauthorized", nil)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), actor, id); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get property pricing
// @Tags property-pricing
// @Produce json
// @Param id path string true "Override ID"
// @Success 200 {object} resdto.PriceOverrideResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /property-pricing/{id} [get]
func (h *PropertyPricingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortInvalidRequest(c, err, "Invalid id")
		return
	}
	view, err := h.q.GetPriceOverride(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPriceOverrideView(view))
}

// @Summary List property pricing
// @Description List the overrides of a property within [startDate, endDate)
// @Tags property-pricing
// @Produce json
// @Param propertyId query string true "Property ID"
// @Param startDate query string true "Window start (YYYY-MM-DD)"
// @Param endDate query string true "Window end (YYYY-MM-DD, exclusive)"
// @Success 200 {array} resdto.PriceOverrideResponse
// @Failure 400 {object} httperr.Response
// @Router /property-pricing [get]
func (h *PropertyPricingHandler) List(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Query("propertyId"))
	if err != nil {
		abortInvalidRequest(c, err, "Invalid propertyId")
		return
	}
	var query reqdto.RangeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortInvalidRequest(c, err, "Invalid query")
		return
	}
	r, err := query.ToRange()
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	views, err := h.q.ListPriceOverrides(c.Request.Context(), propertyID, r)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPriceOverrideViews(views))
}
