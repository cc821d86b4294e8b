package util

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(t *testing.T, handler gin.HandlerFunc) (int, Response) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", handler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestResponseHelpers(t *testing.T) {
	tests := []struct {
		name    string
		handler gin.HandlerFunc
		code    int
		message string
	}{
		{"success", func(c *gin.Context) { Success(c, 1) }, http.StatusOK, "success"},
		{"created", func(c *gin.Context) { Created(c, 1) }, http.StatusCreated, "created"},
		{"forbidden default", func(c *gin.Context) { Forbidden(c) }, http.StatusForbidden, "Forbidden"},
		{"forbidden message", func(c *gin.Context) { Forbidden(c, "module is locked") }, http.StatusForbidden, "module is locked"},
		{"not found default", func(c *gin.Context) { NotFound(c) }, http.StatusNotFound, "Resource not found"},
		{"conflict", func(c *gin.Context) { Conflict(c, "exists") }, http.StatusConflict, "exists"},
		{"internal", func(c *gin.Context) { LogInternalError(c, errors.New("db down")) }, http.StatusInternalServerError, "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := respond(t, tt.handler)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}
