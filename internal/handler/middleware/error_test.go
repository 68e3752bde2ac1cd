//go:build unit

package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"stay-pricing/internal/handler/httperr"
	"stay-pricing/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		handler    gin.HandlerFunc
		wantStatus int
		wantBody   string
	}{
		{
			name: "public error without body is rendered",
			handler: func(c *gin.Context) {
				_ = c.Error(&gin.Error{
					Err:  errors.New("no such record"),
					Type: gin.ErrorTypePublic,
					Meta: httperr.NewResponse(http.StatusNotFound, httperr.CodeNotFound, "Not found"),
				})
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":{"message":"Not found","code":"NOT_FOUND"}}`,
		},
		{
			name: "aborted internal error keeps its body",
			handler: func(c *gin.Context) {
				httperr.AbortWithError(c, http.StatusInternalServerError, httperr.CodeInternal, errors.New("pool closed"), "Internal server error", nil)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":{"message":"Internal server error","code":"INTERNAL_ERROR"}}`,
		},
		{
			name: "private error falls back to internal error",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("unexpected"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":{"message":"Internal server error","code":"INTERNAL_ERROR"}}`,
		},
		{
			name: "bare status is kept",
			handler: func(c *gin.Context) {
				c.Status(http.StatusNoContent)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(middleware.ErrorHandler())
			router.GET("/test", tt.handler)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody == "" {
				assert.Empty(t, w.Body.String())
			} else {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestErrorHandler_LogsServerErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		status  int
		code    string
		wantLog bool
	}{
		{name: "internal error is logged with a stack excerpt", status: http.StatusInternalServerError, code: httperr.CodeInternal, wantLog: true},
		{name: "client error is not logged", status: http.StatusNotFound, code: httperr.CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := captureLogs(t)

			var public bool
			router := gin.New()
			router.Use(func(c *gin.Context) {
				c.Next()
				public = c.Errors.Last().IsType(gin.ErrorTypePublic)
			})
			router.Use(middleware.ErrorHandler())
			router.GET("/test", func(c *gin.Context) {
				httperr.AbortWithError(c, tt.status, tt.code, errors.New("pool closed"), "failed", nil)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, tt.status, w.Code)
			assert.True(t, public, "recorded error must stay public")

			if !tt.wantLog {
				assert.NotContains(t, logs.String(), "request failed")
				return
			}
			var record map[string]any
			require.NoError(t, json.Unmarshal(logs.Bytes(), &record), logs.String())
			assert.Equal(t, "request failed", record["msg"])
			assert.Equal(t, httperr.CodeInternal, record["code"])
			assert.Equal(t, "pool closed", record["error"])
			assert.Equal(t, "/test", record["route"])
			stack, ok := record["stack"].([]any)
			require.True(t, ok, "stack excerpt missing: %s", logs.String())
			assert.NotEmpty(t, stack)
		})
	}
}

func TestCustomRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.CustomRecovery())
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":{"message":"Internal server error","code":"INTERNAL_ERROR"}}`, w.Body.String())
}
