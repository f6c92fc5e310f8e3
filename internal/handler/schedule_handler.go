package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/students-sa/planner-api/internal/service"
	appErrors "github.com/students-sa/planner-api/pkg/errors"
	"github.com/students-sa/planner-api/pkg/response"
)

// ScheduleHandler exposes weekly schedule endpoints.
type ScheduleHandler struct {
	schedules *service.ScheduleService
}

// NewScheduleHandler constructs ScheduleHandler.
func NewScheduleHandler(schedules *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{schedules: schedules}
}

// UpdateField godoc
// @Summary Update one schedule field of a staged course
// @Tags Schedule
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param payload body service.ScheduleFieldRequest true "Field payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /schedule/courses/{courseId} [patch]
func (h *ScheduleHandler) UpdateField(c *gin.Context) {
	claims := sessionFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var req service.ScheduleFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	entry, err := h.schedules.UpdateField(c.Request.Context(), claims.SessionID, c.Param("courseId"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entry)
}

// Overview godoc
// @Summary Fetch the schedule with conflicts and export readiness
// @Tags Schedule
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /schedule [get]
func (h *ScheduleHandler) Overview(c *gin.Context) {
	claims := sessionFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	overview, err := h.schedules.Overview(c.Request.Context(), claims.SessionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, overview)
}
