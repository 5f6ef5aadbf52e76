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

type Page struct {
	Config    *config.Config
	Resolver  service.IResolverService
	Page      service.IPageService
	Analytics service.IAnalyticsService
}

func (h *Page) RegisterRouter(r gin.IRouter) {
	r.GET("/follow", context.Wrap(h.Follow))
}

// Follow 关注落地页，没有关注对象时跳转到官网
func (h *Page) Follow(c *gin.Context) error {
	var q types.TargetQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	target, err := h.Resolver.Resolve(c.Request.Context(), q)
	if errors.Is(err, service.ErrNoTarget) {
		c.Redirect(http.StatusFound, h.Page.FallbackURL())
		h.Analytics.Track(c.Request.Context(), service.EventFallbackRedirect, map[string]string{"from": "follow"})
		return nil
	}
	if err != nil {
		return bizError(c, err)
	}

	body, err := h.Page.Render(target)
	if err != nil {
		return bizError(c, err)
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", body)

	h.Analytics.Track(c.Request.Context(), service.EventPageViewed,
		targetFields(nil, target.Kind.String(), target.CanonicalLabel, target.Verified))
	return nil
}
