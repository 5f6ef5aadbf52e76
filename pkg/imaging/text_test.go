package imaging

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func opaqueBounds(img *image.NRGBA) image.Rectangle {
	var r image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.NRGBAAt(x, y).A > 0 {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}

func TestTextLayer_SizeAndCentering(t *testing.T) {
	tr, err := NewTextRenderer(nil)
	require.NoError(t, err)

	layer, err := tr.Layer(600, 40, "Acme Org", color.Black)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 600, 120), layer.Bounds())

	ink := opaqueBounds(layer)
	require.False(t, ink.Empty())
	left, right := ink.Min.X, 600-ink.Max.X
	assert.InDelta(t, left, right, 6, "horizontally centered")
	top, bottom := ink.Min.Y, 120-ink.Max.Y
	assert.InDelta(t, top, bottom, 12, "vertically centered")
}

func TestTextLayer_EmptyLabelKeepsLayer(t *testing.T) {
	tr, err := NewTextRenderer(nil)
	require.NoError(t, err)

	layer, err := tr.Layer(300, 20, "   ", color.Black)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 300, 60), layer.Bounds())
	assert.True(t, opaqueBounds(layer).Empty())
}

func TestTextLayer_LongLabelFits(t *testing.T) {
	tr, err := NewTextRenderer(nil)
	require.NoError(t, err)

	layer, err := tr.Layer(200, 40, "Communauté de communes du Pays de Quimperlé", color.Black)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 200, 120), layer.Bounds())
	assert.False(t, opaqueBounds(layer).Empty())
}

func TestComposeFrame(t *testing.T) {
	tr, err := NewTextRenderer(nil)
	require.NoError(t, err)

	frame := solid(600, 900, white)
	layout := NewFrameLayout(frame.Bounds(), 0.5, 40)
	qr := solid(layout.QRSize, layout.QRSize, black)

	out, err := ComposeFrame(frame, qr, tr, "Jean Dupont", layout, 40, red)
	require.NoError(t, err)
	assert.Equal(t, frame.Bounds(), out.Bounds())
	assert.Equal(t, black, out.NRGBAAt(layout.QRLeft, layout.QRTop))
	assert.Equal(t, white, out.NRGBAAt(layout.QRLeft-1, layout.QRTop))
	assert.Equal(t, white, out.NRGBAAt(0, 0))

	ink := opaqueBounds(diff(out, frame, qr, layout))
	assert.GreaterOrEqual(t, ink.Min.Y, layout.TextTop)
	assert.LessOrEqual(t, ink.Max.Y, layout.TextTop+layout.TextHeight)
}

// diff keeps only pixels that differ from frame+qr, i.e. the text ink.
func diff(out, frame *image.NRGBA, qr *image.NRGBA, layout FrameLayout) *image.NRGBA {
	ref := Flatten(frame, Layer{Image: qr, Left: layout.QRLeft, Top: layout.QRTop})
	d := image.NewNRGBA(out.Bounds())
	for y := 0; y < out.Bounds().Dy(); y++ {
		for x := 0; x < out.Bounds().Dx(); x++ {
			if out.NRGBAAt(x, y) != ref.NRGBAAt(x, y) {
				d.SetNRGBA(x, y, red)
			}
		}
	}
	return d
}
