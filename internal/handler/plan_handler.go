package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/students-sa/planner-api/internal/service"
	appErrors "github.com/students-sa/planner-api/pkg/errors"
	"github.com/students-sa/planner-api/pkg/response"
)

// PlanHandler exposes eligibility and progress endpoints.
type PlanHandler struct {
	plans *service.PlanService
}

// NewPlanHandler constructs PlanHandler.
func NewPlanHandler(plans *service.PlanService) *PlanHandler {
	return &PlanHandler{plans: plans}
}

// AvailableCourses godoc
// @Summary List courses the student is currently eligible to take
// @Tags Plan
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 412 {object} response.Envelope
// @Security BearerAuth
// @Router /plan/available-courses [get]
func (h *PlanHandler) AvailableCourses(c *gin.Context) {
	claims := sessionFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	courses, err := h.plans.AvailableCourses(c.Request.Context(), claims.SessionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses)
}

// Stats godoc
// @Summary Fetch degree progress statistics
// @Tags Plan
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 412 {object} response.Envelope
// @Security BearerAuth
// @Router /plan/stats [get]
func (h *PlanHandler) Stats(c *gin.Context) {
	claims := sessionFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	stats, err := h.plans.Stats(c.Request.Context(), claims.SessionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats)
}
