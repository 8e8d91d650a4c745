// Package httperr defines the error envelope returned by the API and the
// helper that records the underlying error on the gin context for the
// request logger.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the JSON error body. Status travels out-of-band so the
// logging middleware can read it from the context error's Meta.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
