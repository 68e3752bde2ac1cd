package api

import (
	"net/http"

	reqdto "stay-pricing/internal/handler/dto/request"
	resdto "stay-pricing/internal/handler/dto/response"
	"stay-pricing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PricingHandler struct {
	q queries.PricingQueries
}

func NewPricingHandler(q queries.PricingQueries) *PricingHandler {
	return &PricingHandler{q: q}
}

// @Summary Calculate property pricing
// @Description Resolve every night of [startDate, endDate) for a property and aggregate the stay
// @Tags pricing
// @Produce json
// @Param id path string true "Property ID"
// @Param startDate query string true "Check-in date (YYYY-MM-DD)"
// @Param endDate query string true "Check-out date (YYYY-MM-DD, exclusive)"
// @Success 200 {object} resdto.PropertyCalculationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /properties/{id}/pricing-calculation [get]
func (h *PricingHandler) PropertyCalculation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortInvalidRequest(c, err, "Invalid property id")
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

	calc, err := h.q.CalculateForProperty(c.Request.Context(), id, r)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPropertyCalculation(calc))
}

// @Summary Calculate room pricing
// @Description Aggregate a stay in a room, applying room availability and room peak season rates
// @Tags pricing
// @Produce json
// @Param id path string true "Room ID"
// @Param startDate query string true "Check-in date (YYYY-MM-DD)"
// @Param endDate query string true "Check-out date (YYYY-MM-DD, exclusive)"
// @Success 200 {object} resdto.RoomCalculationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /rooms/{id}/pricing-calculation [get]
func (h *PricingHandler) RoomCalculation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortInvalidRequest(c, err, "Invalid room id")
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

	calc, err := h.q.CalculateForRoom(c.Request.Context(), id, r)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomCalculation(calc))
}
