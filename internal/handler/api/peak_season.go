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

type PeakSeasonRateHandler struct {
	cmds commands.PeakSeasonRateCommands
	q    queries.RatesQueries
}

func NewPeakSeasonRateHandler(cmds commands.PeakSeasonRateCommands, q queries.RatesQueries) *PeakSeasonRateHandler {
	return &PeakSeasonRateHandler{cmds: cmds, q: q}
}

// @Summary Create peak season rate
// @Description Attach a seasonal surcharge to exactly one property or room
// @Tags peak-season-rates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePeakSeasonRateRequest true "Peak season rate"
// @Success 201 {object} resdto.PeakSeasonRateResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /peak-season-rates [post]
func (h *PeakSeasonRateHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, httperr.CodeUnauthorized, middleware.ErrUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.CreatePeakSeasonRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err, "Invalid request")
		return
	}
	spec, err := req.ToSpec()
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	created, err := h.cmds.Create(c.Request.Context(), actor, spec)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPeakSeasonRate(created))
}

// @Summary Update peak season rate
// @Description Partial update. The target property or room cannot change.
// @Tags peak-season-rates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Peak season rate ID"
// @Param request body reqdto.UpdatePeakSeasonRateRequest true "Fields to change"
// @Success 200 {object} resdto.PeakSeasonRateResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /peak-season-rates/{id} [put]
func (h *PeakSeasonRateHandler) Update(c *gin.Context) {
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
	var req reqdto.UpdatePeakSeasonRateRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		abortInvalidRequest(c, bindErr, "Invalid request")
		return
	}
	p, err := req.ToPatch()
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	updated, err := h.cmds.Update(c.Request.Context(), actor, id, p)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPeakSeasonRate(updated))
}

// @Summary Delete peak season rate
// @Tags peak-season-rates
// @Security BearerAuth
// @Param id path string true "Peak season rate ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /peak-season-rates/{id} [delete]
func (h *PeakSeasonRateHandler) Delete(c *gin.Context) {
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

// @Summary Get peak season rate
// @Tags peak-season-rates
// @Produce json
// @Param id path string true "Peak season rate ID"
// @Success 200 {object} resdto.PeakSeasonRateResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /peak-season-rates/{id} [get]
func (h *PeakSeasonRateHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortInvalidRequest(c, err, "Invalid id")
		return
	}
	view, err := h.q.GetPeakSeasonRate(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPeakSeasonRateView(view))
}

// @Summary List peak season rates
// @Description List the rates of one property or one room. Exactly one filter is required.
// @Tags peak-season-rates
// @Produce json
// @Param propertyId query string false "Property ID"
// @Param roomId query string false "Room ID"
// @Success 200 {array} resdto.PeakSeasonRateResponse
// @Failure 400 {object} httperr.Response
// @Router /peak-season-rates [get]
func (h *PeakSeasonRateHandler) List(c *gin.Context) {
	var filter queries.PeakSeasonRateFilter
	if raw := c.Query("propertyId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			abortInvalidRequest(c, err, "Invalid propertyId")
			return
		}
		filter.PropertyID = &id
	}
	if raw := c.Query("roomId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			abortInvalidRequest(c, err, "Invalid roomId")
			return
		}
		filter.RoomID = &id
	}
	views, err := h.q.ListPeakSeasonRates(c.Request.Context(), filter)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPeakSeasonRateViews(views))
}
