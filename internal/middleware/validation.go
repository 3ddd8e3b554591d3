package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/pathwayplanner/planner/internal/app/models/dto"
	"github.com/pathwayplanner/planner/internal/pkg/validation"
)

// ValidatedBodyKey is the context key ValidateRequest stores the bound body under
const ValidatedBodyKey = "validatedBody"

// RegisterValidators installs the custom course tags on gin's validator
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return validation.RegisterCustomValidations(v)
}

// ValidateRequest binds the JSON body into a fresh value from newBody and
// rejects the request when binding or validation fails
func ValidateRequest(newBody func() interface{}) gin.HandlerFunc {
	return func(c *gin.Context) {
		obj := newBody()
		if err := c.ShouldBindJSON(obj); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
			return
		}

		c.Set(ValidatedBodyKey, obj)
		c.Next()
	}
}

// ValidatedBody returns the body stored by ValidateRequest
func ValidatedBody[T any](c *gin.Context) (*T, bool) {
	v, ok := c.Get(ValidatedBodyKey)
	if !ok {
		return nil, false
	}
	body, ok := v.(*T)
	return body, ok
}
