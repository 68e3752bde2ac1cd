package httperr

import (
	"github.com/gin-gonic/gin"
)

// Machine-readable error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidDateFormat  = "INVALID_DATE_FORMAT"
	CodeInvalidDateRange   = "INVALID_DATE_RANGE"
	CodeValidation         = "VALIDATION_ERROR"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeOwnershipViolation = "OWNERSHIP_VIOLATION"
	CodeTargetNotFound     = "TARGET_NOT_FOUND"
	CodeNotFound           = "NOT_FOUND"
	CodeInvalidTarget      = "INVALID_TARGET"
	CodeInternal           = "INTERNAL_ERROR"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, code, msg string) Response {
	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Code = code
	return resp
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, code string, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, code, msg)
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
