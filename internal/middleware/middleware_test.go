package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathwayplanner/planner/internal/app/models/dto"
	"github.com/pathwayplanner/planner/internal/pkg/apperrors"
	"github.com/pathwayplanner/planner/internal/planner"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := RegisterValidators(); err != nil {
		panic(err)
	}
}

func decodeError(t *testing.T, body *bytes.Buffer) *dto.ErrorDetail {
	t.Helper()
	var resp struct {
		Error *dto.ErrorDetail `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp.Error
}

func TestHandleAPIError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   dto.ErrorCode
	}{
		{"not found", apperrors.NewCustomError(apperrors.ErrPathwayNotFound, "pathway 3 not found"), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"planner input", apperrors.NewCustomError(apperrors.ErrInvalidPlannerInput, "bad term"), http.StatusBadRequest, dto.ErrorCodePlannerInput},
		{"raw planner input", fmt.Errorf("%w: x", planner.ErrInvalidInput), http.StatusBadRequest, dto.ErrorCodePlannerInput},
		{"validation", apperrors.NewCustomError(apperrors.ErrValidationFailed, "degree ID must be positive"), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"timeout", fmt.Errorf("%w: deadline", apperrors.ErrRequestTimeout), http.StatusGatewayTimeout, dto.ErrorCodeTimeout},
		{"store", &planner.StoreError{Op: "load groups", Err: errors.New("down")}, http.StatusInternalServerError, dto.ErrorCodeDatabaseError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tc.err)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.code, decodeError(t, w.Body).Code)
		})
	}
}

func TestHandleAPIError_CarriesMessage(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, apperrors.NewCustomError(apperrors.ErrCollegeNotFound, "college 9 not found"))
	assert.Equal(t, "college 9 not found", decodeError(t, w.Body).Message)
}

type codesBody struct {
	Codes []string `json:"codes" binding:"required,min=1,dive,coursecode"`
}

func validationRouter() *gin.Engine {
	r := gin.New()
	r.POST("/codes", ValidateRequest(func() interface{} { return &codesBody{} }), func(c *gin.Context) {
		body, ok := ValidatedBody[codesBody](c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": len(body.Codes)})
	})
	return r
}

func TestValidateRequest(t *testing.T) {
	r := validationRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/codes", strings.NewReader(`{"codes":["CHEM 101","MATH 100"]}`)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":2}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/codes", strings.NewReader(`{"codes":["not a code!"]}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrorCodeValidationFailed, decodeError(t, w.Body).Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/codes", strings.NewReader(`{"codes":"CHEM 101"}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrorCodeBadRequest, decodeError(t, w.Body).Code)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestLogger(zerolog.New(&buf)))
	r.GET("/ping/:id", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping/1", nil))

	id := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"requestId":"`+id+`"`)
	assert.Contains(t, buf.String(), `"path":"/ping/:id"`)
	assert.Contains(t, buf.String(), `"status":418`)
}

func TestRequestLogger_KeepsIncomingID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(zerolog.Nop()))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incoming)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, incoming, w.Header().Get(RequestIDHeader))
}
