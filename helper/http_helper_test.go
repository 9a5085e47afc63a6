package helper

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gig-marketplace/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGeneratePaging(t *testing.T) {
	h := &HTTPHelper{}

	paging := h.GeneratePaging(2, 10, 10, 45)
	assert.Equal(t, 2, paging["current"])
	assert.Equal(t, 5, paging["total"], "ceil(45/10)")
	assert.Equal(t, 10, paging["count"])
	assert.Equal(t, int64(45), paging["total_results"])

	paging = h.GeneratePaging(1, 10, 0, 0)
	assert.Equal(t, 0, paging["total"])
	assert.Equal(t, 0, paging["count"])
}

func TestSendDomainError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &HTTPHelper{}

	tests := []struct {
		err  error
		code int
	}{
		{models.ErrDuplicateIdentity, http.StatusBadRequest},
		{models.ErrAlreadySeller, http.StatusBadRequest},
		{models.Invalid("hourly_rate", "out of range"), http.StatusBadRequest},
		{models.ErrInvalidCredentials, http.StatusUnauthorized},
		{models.ErrUnauthenticated, http.StatusUnauthorized},
		{models.ErrForbidden, http.StatusForbidden},
		{models.ErrDuplicateReview, http.StatusForbidden},
		{models.ErrNotFound, http.StatusNotFound},
		{errors.New("pq: connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		h.SendDomainError(c, tt.err)
		assert.Equal(t, tt.code, w.Code, "error %v", tt.err)
	}

	// Infrastructure detail never leaks.
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	h.SendDomainError(c, errors.New("pq: password authentication failed for user"))
	assert.NotContains(t, w.Body.String(), "password authentication")
}

func TestUnderscore(t *testing.T) {
	assert.Equal(t, "hourly_rate", Underscore("HourlyRate"))
	assert.Equal(t, "title", Underscore("Title"))
	assert.Equal(t, "full_name", Underscore("FullName"))
}
