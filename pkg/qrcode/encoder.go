// Package qrcode renders destination URLs as QR bitmaps.
package qrcode

import (
	"Suivi/config"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	goqrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/draw"
)

// Level is fixed to High so a centered logo stays scannable.
const Level = goqrcode.High

type Encoder struct {
	Dark  color.Color
	Light color.Color
}

func NewEncoder(cfg *config.Config) (*Encoder, error) {
	dark, err := ParseHexColor(cfg.QRCode.DarkColor)
	if err != nil {
		return nil, fmt.Errorf("qrcode dark_color: %w", err)
	}
	light, err := ParseHexColor(cfg.QRCode.LightColor)
	if err != nil {
		return nil, fmt.Errorf("qrcode light_color: %w", err)
	}
	return &Encoder{Dark: dark, Light: light}, nil
}

// Encode draws content as a size×size QR code. content is encoded as given;
// callers are responsible for percent-encoding URLs.
func (e *Encoder) Encode(content string, size int) (*image.NRGBA, error) {
	q, err := goqrcode.New(content, Level)
	if err != nil {
		return nil, fmt.Errorf("qrcode encode: %w", err)
	}
	q.ForegroundColor = e.Dark
	q.BackgroundColor = e.Light

	src := q.Image(size)
	b := src.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, size, size))
	if b.Dx() == size && b.Dy() == size {
		draw.Draw(out, out.Bounds(), src, b.Min, draw.Src)
		return out, nil
	}
	// go-qrcode grows the image when size is below modules + quiet zone
	draw.NearestNeighbor.Scale(out, out.Bounds(), src, b, draw.Src, nil)
	return out, nil
}

// ParseHexColor accepts #rgb, #rrggbb and #rrggbbaa.
func ParseHexColor(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
