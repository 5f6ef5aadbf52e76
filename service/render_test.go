package service

import (
	"Suivi/config"
	"Suivi/pkg/assets"
	"Suivi/pkg/imaging"
	"Suivi/pkg/qrcode"
	"Suivi/types"
	"bytes"
	"context"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBundle(t *testing.T) *assets.Bundle {
	t.Helper()
	frame := image.NewNRGBA(image.Rect(0, 0, 400, 600))
	draw.Draw(frame, frame.Bounds(), image.NewUniform(color.NRGBA{R: 0xf6, G: 0xf5, B: 0xf1, A: 0xff}), image.Point{}, draw.Src)
	logo := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	draw.Draw(logo, image.Rect(10, 10, 30, 30), image.NewUniform(color.NRGBA{R: 0xff, A: 0xff}), image.Point{}, draw.Src)

	text, err := imaging.NewTextRenderer(nil)
	require.NoError(t, err)
	return &assets.Bundle{Frame: frame, Logo: logo, Text: text, Template: assets.DefaultTemplate()}
}

func newRenderService(t *testing.T) *RenderService {
	t.Helper()
	cfg := config.Default()
	enc, err := qrcode.NewEncoder(cfg)
	require.NoError(t, err)
	return &RenderService{Config: cfg, Assets: testBundle(t), Encoder: enc}
}

func TestRenderService_Options(t *testing.T) {
	s := newRenderService(t)

	cases := []struct {
		size, frame string
		want        types.RenderOptions
		err         error
	}{
		{"", "", types.RenderOptions{Frame: true}, nil},
		{"", "true", types.RenderOptions{Frame: true}, nil},
		{"", "false", types.RenderOptions{Size: 512}, nil},
		{"300", "false", types.RenderOptions{Size: 300}, nil},
		{"300", "", types.RenderOptions{}, ErrSizeFrameConflict},
		{"300", "true", types.RenderOptions{}, ErrSizeFrameConflict},
		{"abc", "false", types.RenderOptions{}, ErrInvalidRenderSize},
		{"10", "false", types.RenderOptions{}, ErrInvalidRenderSize},
		{"4096", "false", types.RenderOptions{}, ErrInvalidRenderSize},
	}
	for _, tc := range cases {
		got, err := s.Options(tc.size, tc.frame)
		if tc.err != nil {
			assert.ErrorIs(t, err, tc.err, "size=%q frame=%q", tc.size, tc.frame)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "size=%q frame=%q", tc.size, tc.frame)
	}
}

func decodePNG(t *testing.T, b []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	return img
}

func TestRenderService_RenderPlain(t *testing.T) {
	s := newRenderService(t)
	b, err := s.Render(context.Background(), types.RenderRequest{
		URL:  "http://localhost:8080/follow?name=Jean+Dupont",
		Size: 512,
	})
	require.NoError(t, err)
	img := decodePNG(t, b)
	assert.Equal(t, 512, img.Bounds().Dx())
	assert.Equal(t, 512, img.Bounds().Dy())

	// logo centered over the modules
	r, _, _, a := img.At(256, 256).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), a)
}

func TestRenderService_LongURLKeepsRequestedSize(t *testing.T) {
	s := newRenderService(t)
	b, err := s.Render(context.Background(), types.RenderRequest{
		URL:  "http://localhost:8080/follow?function_tag=" + strings.Repeat("adjoint-au-maire-", 12),
		Size: 64,
	})
	require.NoError(t, err)
	img := decodePNG(t, b)
	assert.Equal(t, image.Rect(0, 0, 64, 64), img.Bounds())
}

func TestRenderService_Deterministic(t *testing.T) {
	s := newRenderService(t)
	req := types.RenderRequest{URL: "http://localhost:8080/follow?organisation_id=Q12345", Frame: true, Label: "Acme Org"}
	a, err := s.Render(context.Background(), req)
	require.NoError(t, err)
	b, err := s.Render(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRenderService_RenderFrame(t *testing.T) {
	s := newRenderService(t)
	b, err := s.Render(context.Background(), types.RenderRequest{
		URL:   "http://localhost:8080/follow?function_tag=maire",
		Frame: true,
		Label: "maire",
	})
	require.NoError(t, err)
	img := decodePNG(t, b)
	assert.Equal(t, s.Assets.Frame.Bounds(), img.Bounds())

	layout := imaging.NewFrameLayout(img.Bounds(), 0.5, 40)
	assert.Equal(t, 200, layout.QRSize)
	assert.Equal(t, color.NRGBAModel.Convert(s.Assets.Frame.At(0, 0)), color.NRGBAModel.Convert(img.At(0, 0)))
	// quiet zone of the QR is painted with the light color
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, color.NRGBAModel.Convert(img.At(layout.QRLeft+1, layout.QRTop+1)))
}

func TestRenderService_SizeAndFrameConflict(t *testing.T) {
	s := newRenderService(t)
	_, err := s.Render(context.Background(), types.RenderRequest{URL: "http://x", Size: 300, Frame: true})
	assert.ErrorIs(t, err, ErrSizeFrameConflict)
}

func TestRenderService_MissingFrameIsInternal(t *testing.T) {
	s := newRenderService(t)
	s.Assets.Frame = nil
	_, err := s.Render(context.Background(), types.RenderRequest{URL: "http://x", Frame: true})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestParseFlag(t *testing.T) {
	assert.True(t, parseFlag("", true))
	assert.False(t, parseFlag("", false))
	assert.False(t, parseFlag(" False ", true))
	assert.True(t, parseFlag("on", false))
	assert.False(t, parseFlag("garbage", false))
}
