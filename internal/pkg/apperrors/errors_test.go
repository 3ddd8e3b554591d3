package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomError_Unwrap(t *testing.T) {
	err := fmt.Errorf("service: %w", NewCustomError(ErrPathwayNotFound, "pathway 7 not found"))

	assert.ErrorIs(t, err, ErrPathwayNotFound)
	assert.Equal(t, "pathway 7 not found", MessageOf(err, "fallback"))
	assert.Equal(t, "fallback", MessageOf(errors.New("plain"), "fallback"))
}

func TestIs(t *testing.T) {
	err := NewResourceNotFoundError("degree missing")

	assert.True(t, Is(err, ErrConflict, ErrResourceNotFound))
	assert.False(t, Is(err, ErrConflict, ErrBadRequest))
}

func TestCustomError_EmptyMessage(t *testing.T) {
	assert.Equal(t, "bad request", (&CustomError{Err: ErrBadRequest}).Error())
	assert.Equal(t, "unknown error", (&CustomError{}).Error())
}
