package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/students-sa/planner-api/internal/catalog"
	appErrors "github.com/students-sa/planner-api/pkg/errors"
	"github.com/students-sa/planner-api/pkg/response"
)

// CatalogHandler serves the static academic catalog.
type CatalogHandler struct{}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Colleges godoc
// @Summary List colleges and their majors
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /catalog/colleges [get]
func (h *CatalogHandler) Colleges(c *gin.Context) {
	response.JSON(c, http.StatusOK, catalog.Colleges())
}

// Majors godoc
// @Summary List majors with a published study plan
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /catalog/majors [get]
func (h *CatalogHandler) Majors(c *gin.Context) {
	response.JSON(c, http.StatusOK, catalog.Majors())
}

// Major godoc
// @Summary Fetch the full study plan of a major
// @Tags Catalog
// @Produce json
// @Param slug path string true "Major slug"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /catalog/majors/{slug} [get]
func (h *CatalogHandler) Major(c *gin.Context) {
	program, ok := catalog.Program(c.Param("slug"))
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "major not found"))
		return
	}
	response.JSON(c, http.StatusOK, program)
}
