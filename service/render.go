package service

import (
	"Suivi/config"
	"Suivi/pkg/assets"
	"Suivi/pkg/imaging"
	"Suivi/pkg/qrcode"
	"Suivi/types"
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"strconv"
	"strings"
)

var _ IRenderService = (*RenderService)(nil)

type IRenderService interface {
	// Options validates the raw size and frame parameters.
	Options(size, frame string) (types.RenderOptions, error)
	Compose(ctx context.Context, req types.RenderRequest) (image.Image, error)
	// Render returns a complete PNG or an error, never a partial image.
	Render(ctx context.Context, req types.RenderRequest) ([]byte, error)
}

type RenderService struct {
	Config  *config.Config
	Assets  *assets.Bundle
	Encoder *qrcode.Encoder
}

func (s *RenderService) Options(size, frame string) (types.RenderOptions, error) {
	useFrame := parseFlag(frame, true)
	size = strings.TrimSpace(size)
	if size == "" {
		if useFrame {
			return types.RenderOptions{Frame: true}, nil
		}
		return types.RenderOptions{Size: s.Config.QRCode.DefaultSize}, nil
	}
	if useFrame {
		return types.RenderOptions{}, ErrSizeFrameConflict
	}

	n, err := strconv.Atoi(size)
	if err != nil {
		return types.RenderOptions{}, ErrInvalidRenderSize
	}
	q := s.Config.QRCode
	if n < q.MinSize || n > q.MaxSize {
		return types.RenderOptions{}, newError(CodeInvalidRenderSize,
			fmt.Sprintf("size must be between %d and %d", q.MinSize, q.MaxSize))
	}
	return types.RenderOptions{Size: n}, nil
}

func (s *RenderService) Compose(_ context.Context, req types.RenderRequest) (image.Image, error) {
	if req.Frame && req.Size > 0 {
		return nil, ErrSizeFrameConflict
	}
	if !req.Frame {
		size := req.Size
		if size == 0 {
			size = s.Config.QRCode.DefaultSize
		}
		return s.qr(req.URL, size)
	}

	frame := s.Assets.Frame
	if frame == nil {
		return nil, internalError("frame asset not loaded", nil)
	}
	fc := s.Config.Frame
	layout := imaging.NewFrameLayout(frame.Bounds(), fc.QRRatio, fc.FontSize)
	qr, err := s.qr(req.URL, layout.QRSize)
	if err != nil {
		return nil, err
	}
	textColor, err := qrcode.ParseHexColor(fc.TextColor)
	if err != nil {
		return nil, internalError("frame text color", err)
	}
	out, err := imaging.ComposeFrame(frame, qr, s.Assets.Text, req.Label, layout, fc.FontSize, textColor)
	if err != nil {
		return nil, internalError("compose frame", err)
	}
	return out, nil
}

func (s *RenderService) Render(ctx context.Context, req types.RenderRequest) ([]byte, error) {
	img, err := s.Compose(ctx, req)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, internalError("png encode", err)
	}
	return buf.Bytes(), nil
}

func (s *RenderService) qr(url string, size int) (*image.NRGBA, error) {
	qr, err := s.Encoder.Encode(url, size)
	if err != nil {
		return nil, internalError("qrcode", err)
	}
	return imaging.OverlayLogo(qr, s.Assets.Logo, s.Config.QRCode.LogoScale), nil
}

func parseFlag(raw string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return def
	case "false", "0", "no", "off", "n", "f":
		return false
	case "true", "1", "yes", "on", "y", "t":
		return true
	default:
		return def
	}
}
