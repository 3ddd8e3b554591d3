package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pathwayplanner/planner/internal/app/models/dto"
	"github.com/pathwayplanner/planner/internal/pkg/apperrors"
	"github.com/pathwayplanner/planner/internal/pkg/logger"
	"github.com/pathwayplanner/planner/internal/planner"
)

func abortWith(c *gin.Context, status int, detail *dto.ErrorDetail) {
	c.AbortWithStatusJSON(status, dto.APIResponse{
		Error:     detail,
		Timestamp: time.Now(),
	})
}

// HandleAPIError maps service errors to HTTP responses
func HandleAPIError(c *gin.Context, err error) {
	var storeErr *planner.StoreError

	switch {
	case apperrors.Is(err, apperrors.ErrCollegeNotFound, apperrors.ErrPathwayNotFound, apperrors.ErrDegreeNotFound, apperrors.ErrCourseNotFound, apperrors.ErrResourceNotFound):
		abortWith(c, http.StatusNotFound,
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, apperrors.MessageOf(err, "Resource not found")))
	case apperrors.Is(err, apperrors.ErrInvalidPlannerInput, planner.ErrInvalidInput):
		abortWith(c, http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodePlannerInput, apperrors.MessageOf(err, err.Error())))
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		abortWith(c, http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, apperrors.MessageOf(err, "Validation failed")))
	case errors.Is(err, apperrors.ErrRequestTimeout):
		abortWith(c, http.StatusGatewayTimeout,
			dto.NewErrorDetail(dto.ErrorCodeTimeout, "The request took too long to complete"))
	case errors.Is(err, apperrors.ErrPlannerDataAccess), errors.As(err, &storeErr):
		log := logger.FromContext(c.Request.Context())
		log.Error().Err(err).Msg("Catalog data access failed")
		abortWith(c, http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Catalog data could not be read"))
	default:
		log := logger.FromContext(c.Request.Context())
		log.Error().Err(err).Msg("Unhandled API error")
		abortWith(c, http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"))
	}
}
