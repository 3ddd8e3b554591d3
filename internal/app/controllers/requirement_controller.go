package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pathwayplanner/planner/internal/app/models/dto"
	"github.com/pathwayplanner/planner/internal/app/services"
	"github.com/pathwayplanner/planner/internal/middleware"
)

// RequirementController serves degree requirements
type RequirementController struct {
	requirementService services.RequirementService
}

// NewRequirementController creates a new RequirementController
func NewRequirementController(requirementService services.RequirementService) *RequirementController {
	return &RequirementController{requirementService: requirementService}
}

// GetDegreeRequirements lists what a degree requires
// @Summary Get degree requirements
// @Description Retrieves the standalone course requirements and "N of M" groups of a degree
// @Tags requirements
// @Produce json
// @Param degreeId path int true "Degree ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.DegreeRequirementsResponse} "Requirements retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid degree ID"
// @Failure 404 {object} dto.ErrorResponse "Degree not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /degrees/{degreeId}/requirements [get]
func (c *RequirementController) GetDegreeRequirements(ctx *gin.Context) {
	degreeID, ok := parseIDParam(ctx, "degreeId", "Degree")
	if !ok {
		return
	}

	resp, err := c.requirementService.GetDegreeRequirements(ctx.Request.Context(), degreeID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// GetRemainingRequirements lists outstanding requirements with their availability
// @Summary Get remaining requirements
// @Description Retrieves the requirements of a degree not yet satisfied, each with the terms it is offered in
// @Tags requirements
// @Accept json
// @Produce json
// @Param degreeId path int true "Degree ID" Format(int64) minimum(1)
// @Param request body dto.RemainingRequirementsRequest true "Satisfied courses and groups"
// @Success 200 {object} dto.APIResponse{data=dto.RemainingRequirementsResponse} "Remaining requirements retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Degree not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /degrees/{degreeId}/remaining [post]
func (c *RequirementController) GetRemainingRequirements(ctx *gin.Context) {
	degreeID, ok := parseIDParam(ctx, "degreeId", "Degree")
	if !ok {
		return
	}

	var req dto.RemainingRequirementsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.requirementService.GetRemainingRequirements(ctx.Request.Context(), degreeID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}
