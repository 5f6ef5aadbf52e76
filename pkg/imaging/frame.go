package imaging

import (
	"image"
	"image/color"
	"math"
)

const (
	// frameQRTop and frameTextTop are fractions of the frame height.
	frameQRTop   = 0.45
	frameTextTop = 0.35
)

// FrameLayout is where the QR and text layers land on a frame of Width×Height.
type FrameLayout struct {
	Width, Height int
	QRSize        int
	QRLeft, QRTop int
	TextTop       int
	TextHeight    int
}

// NewFrameLayout derives the QR size from the frame width (floor(W × qrRatio)).
func NewFrameLayout(frame image.Rectangle, qrRatio, fontSize float64) FrameLayout {
	w, h := frame.Dx(), frame.Dy()
	qrSize := int(math.Floor(float64(w) * qrRatio))
	return FrameLayout{
		Width:      w,
		Height:     h,
		QRSize:     qrSize,
		QRLeft:     int(math.Round(float64(w-qrSize) / 2)),
		QRTop:      int(math.Round(float64(h) * frameQRTop)),
		TextTop:    int(math.Round(float64(h) * frameTextTop)),
		TextHeight: TextLayerHeight(fontSize),
	}
}

// ComposeFrame flattens frame, then qr, then the label text layer.
// An empty label still produces the (transparent) text layer.
func ComposeFrame(frame, qr image.Image, text *TextRenderer, label string, layout FrameLayout, fontSize float64, textColor color.Color) (*image.NRGBA, error) {
	textLayer, err := text.Layer(layout.Width, fontSize, label, textColor)
	if err != nil {
		return nil, err
	}
	return Flatten(frame,
		Layer{Image: qr, Left: layout.QRLeft, Top: layout.QRTop},
		Layer{Image: textLayer, Left: 0, Top: layout.TextTop},
	), nil
}
