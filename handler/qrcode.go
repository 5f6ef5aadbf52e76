package handler

import (
	"Suivi/config"
	"Suivi/middleware"
	"Suivi/pkg/context"
	"Suivi/pkg/response"
	"Suivi/service"
	"Suivi/types"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type QRCode struct {
	Config    *config.Config
	Resolver  service.IResolverService
	Render    service.IRenderService
	Analytics service.IAnalyticsService
}

func (h *QRCode) RegisterRouter(r gin.IRouter) {
	r.GET("/qrcode", context.Wrap(h.QRCode))
}

// QRCode 生成关注二维码
func (h *QRCode) QRCode(c *gin.Context) error {
	var req types.QRCodeReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	opts, err := h.Render.Options(req.Size, req.Frame)
	if err != nil {
		return bizError(c, err)
	}
	target, err := h.Resolver.Resolve(c.Request.Context(), req.TargetQuery)
	if err != nil {
		return bizError(c, err)
	}

	png, err := h.Render.Render(c.Request.Context(), types.RenderRequest{
		URL:   service.FollowURL(h.Config.App.BaseURL, target),
		Size:  opts.Size,
		Frame: opts.Frame,
		Label: target.CanonicalLabel,
	})
	if err != nil {
		return bizError(c, err)
	}

	c.Header("Cache-Control", "public, max-age=300")
	c.Data(http.StatusOK, "image/png", png)

	mode := "plain"
	if opts.Frame {
		mode = "frame"
	}
	middleware.ObserveRender(mode, target.Kind.String())

	h.Analytics.Track(c.Request.Context(), service.EventQRGenerated, targetFields(map[string]string{
		"frame": strconv.FormatBool(opts.Frame),
		"size":  strconv.Itoa(opts.Size),
	}, target.Kind.String(), target.CanonicalLabel, target.Verified))
	return nil
}
