package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pathwayplanner/planner/internal/app/models/dto"
	"github.com/pathwayplanner/planner/internal/app/services"
	"github.com/pathwayplanner/planner/internal/middleware"
)

// PlannerController verifies course plans
type PlannerController struct {
	plannerService services.PlannerService
}

// NewPlannerController creates a new PlannerController
func NewPlannerController(plannerService services.PlannerService) *PlannerController {
	return &PlannerController{plannerService: plannerService}
}

// VerifyPlan checks a term-by-term schedule against prerequisite groups
// @Summary Verify a course plan
// @Description Classifies prerequisite problems of a schedule into blocking violations and advisories, and suggests an order for outstanding courses
// @Tags planner
// @Accept json
// @Produce json
// @Param request body dto.VerifyPlannerRequest true "Schedule and outstanding requirements"
// @Success 200 {object} dto.APIResponse{data=dto.VerifyPlannerResponse} "Plan verified"
// @Failure 400 {object} dto.ErrorResponse "Malformed schedule"
// @Failure 500 {object} dto.ErrorResponse "Catalog data could not be read"
// @Failure 504 {object} dto.ErrorResponse "Verification timed out"
// @Router /planner/verify [post]
func (c *PlannerController) VerifyPlan(ctx *gin.Context) {
	body, ok := middleware.ValidatedBody[dto.VerifyPlannerRequest](ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeBadRequest, "Missing request body")))
		return
	}

	result, err := c.plannerService.VerifyPlan(ctx.Request.Context(), body.ToPlannerRequest())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewVerifyPlannerResponse(result)))
}
