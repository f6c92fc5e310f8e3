package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/students-sa/planner-api/internal/service"
	appErrors "github.com/students-sa/planner-api/pkg/errors"
	"github.com/students-sa/planner-api/pkg/response"
)

// SessionHandler exposes planner session state endpoints.
type SessionHandler struct {
	sessions *service.SessionService
}

// NewSessionHandler constructs SessionHandler.
func NewSessionHandler(sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Get godoc
// @Summary Fetch the current planner session state
// @Tags Session
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /session [get]
func (h *SessionHandler) Get(c *gin.Context) {
	claims := sessionFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	session, err := h.sessions.Get(c.Request.Context(), claims.SessionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, session)
}

// SubmitQuestionnaire godoc
// @Summary Submit the progress questionnaire for a major
// @Tags Session
// @Accept json
// @Produce json
// @Param slug path string true "Major slug"
// @Param payload body service.QuestionnaireRequest true "Questionnaire payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /session/majors/{slug}/questionnaire [post]
func (h *SessionHandler) SubmitQuestionnaire(c *gin.Context) {
	claims := sessionFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var req service.QuestionnaireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	session, err := h.sessions.SubmitQuestionnaire(c.Request.Context(), claims.SessionID, c.Param("slug"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, session)
}

// Reset godoc
// @Summary Clear all planner progress for the session
// @Tags Session
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /session/reset [post]
func (h *SessionHandler) Reset(c *gin.Context) {
	claims := sessionFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	session, err := h.sessions.Reset(c.Request.Context(), claims.SessionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, session)
}
