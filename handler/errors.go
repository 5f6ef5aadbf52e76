package handler

import (
	"Suivi/pkg/log"
	"Suivi/pkg/response"
	"Suivi/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// bizError maps resolution and rendering failures onto HTTP errors.
// Internal details only reach the log.
func bizError(c *gin.Context, err error) error {
	var se *service.Error
	if !errors.As(err, &se) {
		log.L.Error("request failed", zap.Error(err), zap.String("path", c.Request.URL.Path))
		return response.NewError(http.StatusInternalServerError, response.InternalMessage)
	}
	if se.Internal() {
		log.L.Error("request failed", zap.String("code", string(se.Code)), zap.Error(se), zap.String("path", c.Request.URL.Path))
		return response.NewError(http.StatusInternalServerError, response.InternalMessage)
	}
	return response.NewError(se.HTTPStatus(), se.Msg)
}

func targetFields(q map[string]string, kind, label string, verified bool) map[string]string {
	if q == nil {
		q = map[string]string{}
	}
	q["kind"] = kind
	q["label"] = label
	if verified {
		q["verified"] = "true"
	} else {
		q["verified"] = "false"
	}
	return q
}
