package context

import (
	"Suivi/pkg/log"
	"Suivi/pkg/response"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const CtxRequestID = "request_id"

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				log.L.Warn("error after response written", zap.Error(err), zap.String("request_id", GetRequestID(c)))
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				response.Fail(c, be.Code, be.Msg)
				return
			}
			log.L.Error("unhandled error", zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", GetRequestID(c)),
			)
			response.Fail(c, http.StatusInternalServerError, response.InternalMessage)
		}
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(CtxRequestID)
}
