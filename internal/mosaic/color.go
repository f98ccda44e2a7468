package mosaic

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// Hex returns the color formatted as #rrggbb.
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

// MeanColor computes the per-channel arithmetic mean over every pixel of buf.
// Each channel is truncated toward zero. buf must not be empty.
func MeanColor(buf *PixelBuffer) Color {
	pixelCount := uint64(buf.width * buf.height)
	if pixelCount == 0 {
		panic("mosaic: mean color of an empty buffer")
	}

	var sumR, sumG, sumB uint64
	for i := 0; i < len(buf.pix); i += 3 {
		sumR += uint64(buf.pix[i+0])
		sumG += uint64(buf.pix[i+1])
		sumB += uint64(buf.pix[i+2])
	}

	return Color{
		R: uint8(sumR / pixelCount),
		G: uint8(sumG / pixelCount),
		B: uint8(sumB / pixelCount),
	}
}

// Distance returns the Euclidean distance between a and b in raw RGB space.
func Distance(a, b Color) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}
