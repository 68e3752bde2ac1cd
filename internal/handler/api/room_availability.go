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

type RoomAvailabilityHandler struct {
	cmds commands.RoomAvailabilityCommands
	q    queries.RatesQueries
}

func NewRoomAvailabilityHandler(cmds commands.RoomAvailabilityCommands, q queries.RatesQueries) *RoomAvailabilityHandler {
	return &RoomAvailabilityHandler{cmds: cmds, q: q}
}

// @Summary Upsert room availability
// @Description Create or replace the availability of a room for one date
// @Tags room-availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpsertAvailabilityRequest true "Availability"
// @Success 201 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /room-availability [post]
func (h *RoomAvailabilityHandler) Upsert(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, httperr.CodeUnauthorized, middleware.ErrUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.UpsertAvailabilityRequest
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
	c.JSON(http.StatusCreated, resdto.FromAvailabilityBlock(saved))
}

// @Summary Bulk upsert room availability
// @Description Set availability for every date in [startDate, endDate)
// @Tags room-availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BulkUpsertAvailabilityRequest true "Availability range"
// @Success 201 {array} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /room-availability/bulk [post]
func (h *RoomAvailabilityHandler) BulkUpsert(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, httperr.CodeUnauthorized, middleware.ErrUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.BulkUpsertAvailabilityRequest
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
	c.JSON(http.StatusCreated, resdto.FromAvailabilityBlocks(saved))
}

// @Summary Update room availability
// @Description Change the availability of an existing record
// @Tags room-availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Availability ID"
// @Param request body reqdto.UpdateAvailabilityRequest true "Fields to change"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /room-availability/{id} [put]
func (h *RoomAvailabilityHandler) Update(c *gin.Context) {
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
	var req reqdto.UpdateAvailabilityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		abortInvalidRequest(c, bindErr, "Invalid request")
		return
	}
	saved, err := h.cmds.Update(c.Request.Context(), actor, id, req.ToCommand())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityBlock(saved))
}

// @Summary Delete room availability
// @Tags room-availability
// @Security BearerAuth
// @Param id path string true "Availability ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /room-availability/{id} [delete]
func (h *RoomAvailabilityHandler) Delete(c *gin.Context) {
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

// @Summary Get room availability
// @Tags room-availability
// @Produce json
// @Param id path string true "Availability ID"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /room-availability/{id} [get]
func (h *RoomAvailabilityHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortInvalidRequest(c, err, "Invalid id")
		return
	}
	view, err := h.q.GetAvailability(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary List room availability
// @Description List the availability records of a room within [startDate, endDate)
// @Tags room-availability
// @Produce json
// @Param roomId query string true "Room ID"
// @Param startDate query string true "Window start (YYYY-MM-DD)"
// @Param endDate query string true "Window end (YYYY-MM-DD, exclusive)"
// @Success 200 {array} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /room-availability [get]
func (h *RoomAvailabilityHandler) List(c *gin.Context) {
	roomID, err := uuid.Parse(c.Query("roomId"))
	if err != nil {
		abortInvalidRequest(c, err, "Invalid roomId")
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
	views, err := h.q.ListAvailability(c.Request.Context(), roomID, r)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityViews(views))
}
