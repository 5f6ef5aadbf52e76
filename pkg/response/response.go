package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
}

func Fail(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, ErrorBody{Error: msg})
}

func Success(c *gin.Context, httpStatus int, data any) {
	c.JSON(httpStatus, data)
}
