package imaging

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	white  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black  = color.NRGBA{A: 255}
	red    = color.NRGBA{R: 255, A: 255}
	blue   = color.NRGBA{B: 255, A: 255}
	hollow = color.NRGBA{}
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestCenterOffset(t *testing.T) {
	cases := []struct {
		outer, inner, want int
	}{
		{300, 66, 117},
		{301, 66, 117},
		{300, 300, 0},
		{512, 112, 200},
		{10, 13, -2},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, CenterOffset(c.outer, c.inner), "outer=%d inner=%d", c.outer, c.inner)
	}
}

func TestLogoPlacement_NeverNegative(t *testing.T) {
	for _, size := range []int{64, 101, 300, 513, 2048} {
		for _, scale := range []float64{0.01, 0.2, 0.22, 0.5, 0.99, 1} {
			w := LogoWidth(size, scale)
			assert.LessOrEqual(t, w, size)
			assert.GreaterOrEqual(t, CenterOffset(size, w), 0, "size=%d scale=%v", size, scale)
			assert.Equal(t, (size-w)/2, CenterOffset(size, w))
		}
	}
}

func TestResizeToWidth_KeepsAspectAndAlpha(t *testing.T) {
	src := solid(200, 100, hollow)
	for y := 25; y < 75; y++ {
		for x := 50; x < 150; x++ {
			src.SetNRGBA(x, y, red)
		}
	}

	out := ResizeToWidth(src, 50)
	assert.Equal(t, image.Rect(0, 0, 50, 25), out.Bounds())
	assert.Equal(t, uint8(0), out.NRGBAAt(0, 0).A, "transparent corner stays transparent")
	assert.Equal(t, uint8(255), out.NRGBAAt(25, 12).A)
}

func TestFlatten_OrderAndOffsets(t *testing.T) {
	base := solid(10, 10, white)
	out := Flatten(base,
		Layer{Image: solid(4, 4, red), Left: 2, Top: 2},
		Layer{Image: solid(2, 2, blue), Left: 3, Top: 3},
	)

	assert.Equal(t, white, out.NRGBAAt(0, 0))
	assert.Equal(t, red, out.NRGBAAt(2, 2))
	assert.Equal(t, blue, out.NRGBAAt(3, 3), "later layers paint over earlier ones")
	assert.Equal(t, red, out.NRGBAAt(5, 5))
	assert.Equal(t, white, out.NRGBAAt(6, 6))
	assert.Equal(t, white, base.NRGBAAt(3, 3), "base is not mutated")
}

func TestOverlayLogo_PreservesTransparency(t *testing.T) {
	qr := solid(100, 100, black)
	logo := solid(40, 40, hollow)
	for y := 10; y < 30; y++ {
		for x := 10; x < 30; x++ {
			logo.SetNRGBA(x, y, red)
		}
	}

	out := OverlayLogo(qr, logo, 0.4)
	require.Equal(t, qr.Bounds(), out.Bounds())

	// logo is 40×40 placed at (30, 30); its transparent margin must not hide the QR
	assert.Equal(t, black, out.NRGBAAt(32, 32))
	assert.Equal(t, red, out.NRGBAAt(50, 50))
	assert.Equal(t, black, out.NRGBAAt(5, 5))
}

func TestOverlayLogo_NilLogo(t *testing.T) {
	qr := solid(20, 20, black)
	out := OverlayLogo(qr, nil, 0.2)
	assert.Equal(t, qr.Pix, out.Pix)
}

func TestNewFrameLayout(t *testing.T) {
	l := NewFrameLayout(image.Rect(0, 0, 600, 900), 0.5, 40)
	assert.Equal(t, 300, l.QRSize)
	assert.Equal(t, 150, l.QRLeft)
	assert.Equal(t, 405, l.QRTop)
	assert.Equal(t, 315, l.TextTop)
	assert.Equal(t, 120, l.TextHeight)

	odd := NewFrameLayout(image.Rect(0, 0, 601, 333), 0.5, 10)
	assert.Equal(t, 300, odd.QRSize)
	assert.Equal(t, 151, odd.QRLeft, "round((601-300)/2)")
	assert.Equal(t, 150, odd.QRTop, "round(333*0.45)")
	assert.Equal(t, 117, odd.TextTop, "round(333*0.35)")
}
