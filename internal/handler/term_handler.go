package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/students-sa/planner-api/internal/service"
	appErrors "github.com/students-sa/planner-api/pkg/errors"
	"github.com/students-sa/planner-api/pkg/response"
)

// TermHandler exposes upcoming-term staging endpoints.
type TermHandler struct {
	terms *service.TermService
}

// NewTermHandler constructs TermHandler.
func NewTermHandler(terms *service.TermService) *TermHandler {
	return &TermHandler{terms: terms}
}

// AddCourseRequest is the payload for staging a course.
type AddCourseRequest struct {
	CourseID string `json:"course_id" binding:"required"`
}

// MarkCompletedRequest is the payload for marking a course as passed.
type MarkCompletedRequest struct {
	Confirm bool `json:"confirm"`
}

// Add godoc
// @Summary Stage a course for the upcoming term
// @Tags Term
// @Accept json
// @Produce json
// @Param payload body handler.AddCourseRequest true "Course payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /term/courses [post]
func (h *TermHandler) Add(c *gin.Context) {
	claims := sessionFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var req AddCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	session, err := h.terms.Add(c.Request.Context(), claims.SessionID, req.CourseID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, session)
}

// Remove godoc
// @Summary Remove a staged course from the upcoming term
// @Tags Term
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /term/courses/{courseId} [delete]
func (h *TermHandler) Remove(c *gin.Context) {
	claims := sessionFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	session, err := h.terms.Remove(c.Request.Context(), claims.SessionID, c.Param("courseId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, session)
}

// MarkCompleted godoc
// @Summary Mark a course as completed
// @Tags Term
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param payload body handler.MarkCompletedRequest true "Confirmation payload"
// @Success 200 {object} response.Envelope
// @Failure 412 {object} response.Envelope
// @Security BearerAuth
// @Router /term/courses/{courseId}/complete [post]
func (h *TermHandler) MarkCompleted(c *gin.Context) {
	claims := sessionFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var req MarkCompletedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	session, err := h.terms.MarkCompleted(c.Request.Context(), claims.SessionID, c.Param("courseId"), req.Confirm)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, session)
}
