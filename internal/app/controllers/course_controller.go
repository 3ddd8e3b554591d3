package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pathwayplanner/planner/internal/app/models/dto"
	"github.com/pathwayplanner/planner/internal/app/services"
	"github.com/pathwayplanner/planner/internal/middleware"
	"github.com/pathwayplanner/planner/internal/pkg/helpers"
)

// CourseController serves catalog course search and code validation
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// SearchCourses searches the catalog
// @Summary Search courses
// @Description Retrieves a page of catalog courses whose code or name contains the query
// @Tags courses
// @Produce json
// @Param q query string false "Search text"
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse{items=[]dto.CourseResponse}} "Courses retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) SearchCourses(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	courses, pagination, err := c.courseService.SearchCourses(ctx.Request.Context(), ctx.Query("q"), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		items = append(items, dto.FromCourse(course))
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.PaginatedResponse{
		Items:      items,
		Pagination: pagination,
	}))
}

// ValidateCourseCodes checks free-text course codes against the catalog
// @Summary Validate course codes
// @Description Reports which free-text course codes exist in the catalog, in input order
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.ValidateCourseCodesRequest true "Codes to validate"
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseCodeValidation} "Codes validated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/validate [post]
func (c *CourseController) ValidateCourseCodes(ctx *gin.Context) {
	body, ok := middleware.ValidatedBody[dto.ValidateCourseCodesRequest](ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeBadRequest, "Missing request body")))
		return
	}

	results, err := c.courseService.ValidateCourseCodes(ctx.Request.Context(), body.Codes)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(results))
}
