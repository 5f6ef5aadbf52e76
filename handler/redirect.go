package handler

import (
	"Suivi/config"
	"Suivi/pkg/context"
	"Suivi/pkg/response"
	"Suivi/service"
	"Suivi/types"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Redirect struct {
	Config    *config.Config
	Resolver  service.IResolverService
	Page      service.IPageService
	Analytics service.IAnalyticsService
}

func (h *Redirect) RegisterRouter(r gin.IRouter) {
	r.GET("/go/:messenger", context.Wrap(h.Messenger))
}

// Messenger 跳转到消息应用。带关注对象参数时附带预填命令
func (h *Redirect) Messenger(c *gin.Context) error {
	name := c.Param("messenger")
	m, ok := h.Config.Messenger(name)
	if !ok || !m.Configured() {
		c.Redirect(http.StatusFound, h.Page.FallbackURL())
		h.Analytics.Track(c.Request.Context(), service.EventFallbackRedirect, map[string]string{
			"from":      "go",
			"messenger": name,
		})
		return nil
	}

	var q types.TargetQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	location := m.LinkBase
	target, err := h.Resolver.Resolve(c.Request.Context(), q)
	switch {
	case errors.Is(err, service.ErrNoTarget):
	case err != nil:
		return bizError(c, err)
	default:
		location = service.DeepLink(m, service.Command(target))
	}

	c.Redirect(http.StatusFound, location)
	h.Analytics.Track(c.Request.Context(), service.EventMessengerRedirect, map[string]string{
		"messenger": m.Name,
	})
	return nil
}
