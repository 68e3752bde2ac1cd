package middleware

import (
	"log/slog"
	"net/http"

	"stay-pricing/internal/handler/httperr"
	"stay-pricing/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLinesLogged = 12

// ErrorHandler renders the last public error left by a handler and logs server-side failures
// with a stack excerpt. Handlers that already wrote a body are only logged.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		var public *httperr.Response
		for i := len(c.Errors) - 1; i >= 0; i-- {
			ginErr := c.Errors[i]
			if !ginErr.IsType(gin.ErrorTypePublic) {
				continue
			}
			resp, ok := ginErr.Meta.(httperr.Response)
			if !ok {
				continue
			}
			if resp.Status >= http.StatusInternalServerError {
				logServerError(c, resp, ginErr.Err)
			}
			if public == nil {
				public = &resp
			}
		}

		if c.Writer.Written() {
			return
		}
		if public != nil {
			c.JSON(public.Status, *public)
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.NewResponse(http.StatusInternalServerError, httperr.CodeInternal, "Internal server error"))
	}
}

func logServerError(c *gin.Context, resp httperr.Response, err error) {
	slog.Error("request failed",
		"request_id", GetRequestID(c),
		"route", c.FullPath(),
		"code", resp.Error.Code,
		"error", err.Error(),
		"stack", errs.ExtractStackLines(err, stackLinesLogged),
	)
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic",
					"request_id", GetRequestID(c),
					"error", rec,
					"path", c.Request.URL.Path)

				resp := httperr.NewResponse(http.StatusInternalServerError, httperr.CodeInternal, "Internal server error")
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
