package mosaic

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// PixelBuffer is an RGB raster with 8 bits per channel.
// Pixels are stored row by row, 3 bytes per pixel.
type PixelBuffer struct {
	width  int
	height int
	pix    []uint8
}

var _ image.Image = (*PixelBuffer)(nil)

// NewPixelBuffer creates a black buffer with the given dimensions.
func NewPixelBuffer(width, height int) *PixelBuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &PixelBuffer{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*3),
	}
}

// NewUniformBuffer creates a buffer filled with c.
func NewUniformBuffer(width, height int, c Color) *PixelBuffer {
	buf := NewPixelBuffer(width, height)
	for i := 0; i < len(buf.pix); i += 3 {
		buf.pix[i+0] = c.R
		buf.pix[i+1] = c.G
		buf.pix[i+2] = c.B
	}
	return buf
}

// FromImage converts any decoded image into a PixelBuffer whose origin is
// (0,0). Alpha is dropped after un-premultiplying.
func FromImage(img image.Image) *PixelBuffer {
	if pb, ok := img.(*PixelBuffer); ok {
		return pb
	}

	bounds := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		nrgba = image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		xdraw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, xdraw.Src)
		bounds = nrgba.Bounds()
	}

	buf := NewPixelBuffer(bounds.Dx(), bounds.Dy())
	for y := 0; y < buf.height; y++ {
		src := nrgba.Pix[nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
		dst := buf.pix[y*buf.width*3:]
		for x := 0; x < buf.width; x++ {
			dst[x*3+0] = src[x*4+0]
			dst[x*3+1] = src[x*4+1]
			dst[x*3+2] = src[x*4+2]
		}
	}
	return buf
}

// Width returns the width of the buffer in pixels.
func (b *PixelBuffer) Width() int {
	return b.width
}

// Height returns the height of the buffer in pixels.
func (b *PixelBuffer) Height() int {
	return b.height
}

// Pix returns the raw RGB samples.
func (b *PixelBuffer) Pix() []uint8 {
	return b.pix
}

// Empty reports whether the buffer holds no pixels.
func (b *PixelBuffer) Empty() bool {
	return b.width == 0 || b.height == 0
}

// Pixel returns the color at (x, y). The coordinates must be in range.
func (b *PixelBuffer) Pixel(x, y int) Color {
	i := (y*b.width + x) * 3
	return Color{R: b.pix[i+0], G: b.pix[i+1], B: b.pix[i+2]}
}

// SetPixel sets the color at (x, y). The coordinates must be in range.
func (b *PixelBuffer) SetPixel(x, y int, c Color) {
	i := (y*b.width + x) * 3
	b.pix[i+0] = c.R
	b.pix[i+1] = c.G
	b.pix[i+2] = c.B
}

// Region copies the rectangle starting at (x, y) with size w×h into a new
// buffer. The rectangle must lie inside b.
func (b *PixelBuffer) Region(x, y, w, h int) *PixelBuffer {
	out := NewPixelBuffer(w, h)
	for row := 0; row < h; row++ {
		start := ((y+row)*b.width + x) * 3
		copy(out.pix[row*w*3:(row+1)*w*3], b.pix[start:start+w*3])
	}
	return out
}

// ColorModel implements image.Image.
func (b *PixelBuffer) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image.
func (b *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// At implements image.Image. Out of range coordinates are transparent.
func (b *PixelBuffer) At(x, y int) color.Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return color.RGBA{}
	}
	c := b.Pixel(x, y)
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}
