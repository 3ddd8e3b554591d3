package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pathwayplanner/planner/internal/app/models/dto"
	"github.com/pathwayplanner/planner/internal/app/services"
	"github.com/pathwayplanner/planner/internal/middleware"
)

// CatalogController serves colleges, pathways and pathway degrees
type CatalogController struct {
	catalogService services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// parseIDParam reads a positive int64 path parameter, writing a 400 when it is malformed
func parseIDParam(ctx *gin.Context, name, label string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+label+" ID")
		errorDetail = errorDetail.WithDetails(label + " ID must be a positive number").WithField(name)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// GetAllColleges lists colleges
// @Summary List colleges
// @Description Retrieves all colleges that publish transfer pathways
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CollegeResponse} "Colleges retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /colleges [get]
func (c *CatalogController) GetAllColleges(ctx *gin.Context) {
	colleges, err := c.catalogService.GetAllColleges(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.CollegeResponse, 0, len(colleges))
	for _, college := range colleges {
		resp = append(resp, dto.FromCollege(college))
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// GetCollegePathways lists the pathways of a college
// @Summary List college pathways
// @Description Retrieves the transfer pathways a college publishes
// @Tags catalog
// @Produce json
// @Param collegeId path int true "College ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]dto.PathwayResponse} "Pathways retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid college ID"
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /colleges/{collegeId}/pathways [get]
func (c *CatalogController) GetCollegePathways(ctx *gin.Context) {
	collegeID, ok := parseIDParam(ctx, "collegeId", "College")
	if !ok {
		return
	}

	pathways, err := c.catalogService.GetPathwaysByCollege(ctx.Request.Context(), collegeID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.PathwayResponse, 0, len(pathways))
	for _, pathway := range pathways {
		resp = append(resp, dto.FromPathway(pathway))
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// GetPathwayDegree returns the degree a pathway leads to
// @Summary Get pathway degree
// @Description Retrieves the degree a transfer pathway leads to
// @Tags catalog
// @Produce json
// @Param pathwayId path int true "Pathway ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.DegreeResponse} "Degree retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid pathway ID"
// @Failure 404 {object} dto.ErrorResponse "Pathway not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /pathways/{pathwayId}/degree [get]
func (c *CatalogController) GetPathwayDegree(ctx *gin.Context) {
	pathwayID, ok := parseIDParam(ctx, "pathwayId", "Pathway")
	if !ok {
		return
	}

	degree, err := c.catalogService.GetPathwayDegree(ctx.Request.Context(), pathwayID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromDegree(degree)))
}
