package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const minFontSize = 8

// TextRenderer draws single-line labels with one embedded font.
type TextRenderer struct {
	font *opentype.Font
}

// NewTextRenderer parses ttf; a nil slice selects the embedded Go Regular font.
func NewTextRenderer(ttf []byte) (*TextRenderer, error) {
	if ttf == nil {
		ttf = goregular.TTF
	}
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &TextRenderer{font: f}, nil
}

// TextLayerHeight is 3 × fontSize, rounded.
func TextLayerHeight(fontSize float64) int {
	return int(math.Round(3 * fontSize))
}

// Layer returns a transparent width × 3·fontSize image with label centered on both axes.
// Labels wider than the layer are drawn at a smaller size; the layer size never changes.
func (r *TextRenderer) Layer(width int, fontSize float64, label string, c color.Color) (*image.NRGBA, error) {
	height := TextLayerHeight(fontSize)
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	label = strings.TrimSpace(label)
	if label == "" {
		return img, nil
	}

	size := fontSize
	for {
		face, err := opentype.NewFace(r.font, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("new font face: %w", err)
		}

		d := &font.Drawer{Dst: img, Src: image.NewUniform(c), Face: face}
		advance := d.MeasureString(label)
		if advance.Ceil() > width && size > minFontSize {
			face.Close()
			size = math.Max(minFontSize, size*0.9)
			continue
		}

		m := face.Metrics()
		d.Dot = fixed.Point26_6{
			X: (fixed.I(width) - advance) / 2,
			Y: (fixed.I(height) + m.Ascent - m.Descent) / 2,
		}
		d.DrawString(label)
		face.Close()
		return img, nil
	}
}
