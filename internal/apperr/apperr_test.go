package apperr_test

import (
	"fmt"
	"net/http"
	"testing"

	"coursework/internal/apperr"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, apperr.Status(apperr.ErrUnauthenticated))
	assert.Equal(t, http.StatusBadRequest, apperr.Status(apperr.ErrInvalidID))
	assert.Equal(t, http.StatusNotFound, apperr.Status(apperr.ErrNotFound))
	assert.Equal(t, http.StatusNotFound, apperr.Status(apperr.ErrCourseNotFound))
	assert.Equal(t, http.StatusConflict, apperr.Status(apperr.ErrConflict))
	assert.Equal(t, http.StatusServiceUnavailable, apperr.Status(apperr.ErrStoreUnavailable))
	assert.Equal(t, http.StatusInternalServerError, apperr.Status(assert.AnError))
}

func TestStatus_WrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("course deleted but cascade removal of its tasks failed: %w", apperr.ErrStoreUnavailable)
	assert.Equal(t, http.StatusServiceUnavailable, apperr.Status(wrapped))
}
