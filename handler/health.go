package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Health struct{}

func (h *Health) RegisterRouter(r gin.IRouter) {
	r.GET("/healthz", h.Healthz)
}

func (h *Health) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
