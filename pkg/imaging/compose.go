// Package imaging layers logos, frames and text onto QR bitmaps.
package imaging

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Layer is one image painted at (Left, Top) of the canvas. Later layers paint over earlier ones.
type Layer struct {
	Image image.Image
	Left  int
	Top   int
}

// Flatten copies base onto a fresh canvas and paints every layer over it, in order.
func Flatten(base image.Image, layers ...Layer) *image.NRGBA {
	b := base.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), base, b.Min, draw.Src)

	for _, l := range layers {
		if l.Image == nil {
			continue
		}
		lb := l.Image.Bounds()
		r := image.Rect(l.Left, l.Top, l.Left+lb.Dx(), l.Top+lb.Dy())
		draw.Draw(dst, r, l.Image, lb.Min, draw.Over)
	}
	return dst
}

// ResizeToWidth scales src to width pixels, keeping its aspect ratio and alpha channel.
func ResizeToWidth(src image.Image, width int) *image.NRGBA {
	sb := src.Bounds()
	if width < 1 || sb.Dx() == 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}
	height := width * sb.Dy() / sb.Dx()
	if height < 1 {
		height = 1
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, sb, draw.Src, nil)
	return dst
}

// CenterOffset is floor((outer-inner)/2).
func CenterOffset(outer, inner int) int {
	d := outer - inner
	if d < 0 && d%2 != 0 {
		return d/2 - 1
	}
	return d / 2
}

// LogoWidth is floor(qrSize × scale).
func LogoWidth(qrSize int, scale float64) int {
	return int(math.Floor(float64(qrSize) * scale))
}

// OverlayLogo paints logo, scaled to LogoWidth, at the center of qr.
// Transparent logo pixels leave the QR modules visible.
func OverlayLogo(qr image.Image, logo image.Image, scale float64) *image.NRGBA {
	size := qr.Bounds().Dx()
	if logo == nil || scale <= 0 {
		return Flatten(qr)
	}
	resized := ResizeToWidth(logo, LogoWidth(size, scale))
	rb := resized.Bounds()
	return Flatten(qr, Layer{
		Image: resized,
		Left:  CenterOffset(size, rb.Dx()),
		Top:   CenterOffset(qr.Bounds().Dy(), rb.Dy()),
	})
}
