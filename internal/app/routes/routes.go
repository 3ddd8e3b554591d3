package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pathwayplanner/planner/internal/app/controllers"
	"github.com/pathwayplanner/planner/internal/app/models/dto"
	"github.com/pathwayplanner/planner/internal/middleware"
)

// Controllers groups the handlers SetupRouter mounts
type Controllers struct {
	Catalog     *controllers.CatalogController
	Course      *controllers.CourseController
	Requirement *controllers.RequirementController
	Planner     *controllers.PlannerController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers) {
	v1 := router.Group("/api/v1")

	colleges := v1.Group("/colleges")
	{
		colleges.GET("", c.Catalog.GetAllColleges)
		colleges.GET("/:collegeId/pathways", c.Catalog.GetCollegePathways)
	}

	v1.GET("/pathways/:pathwayId/degree", c.Catalog.GetPathwayDegree)

	degrees := v1.Group("/degrees/:degreeId")
	{
		degrees.GET("/requirements", c.Requirement.GetDegreeRequirements)
		degrees.POST("/remaining", c.Requirement.GetRemainingRequirements)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", c.Course.SearchCourses)
		courses.POST("/validate",
			middleware.ValidateRequest(func() interface{} { return &dto.ValidateCourseCodesRequest{} }),
			c.Course.ValidateCourseCodes)
	}

	planner := v1.Group("/planner")
	{
		planner.POST("/verify",
			middleware.ValidateRequest(func() interface{} { return &dto.VerifyPlannerRequest{} }),
			c.Planner.VerifyPlan)
	}
}
