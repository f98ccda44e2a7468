package mosaic

import (
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// DefaultFilter is the resampling filter used when none is configured.
// Gaussian weighting keeps large sources from aliasing when shrunk to a tile.
const DefaultFilter = "gaussian"

// Resizer scales a buffer to an exact size.
type Resizer interface {
	Resize(buf *PixelBuffer, width, height int) *PixelBuffer
}

// ImagingResizer resamples with one of the disintegration/imaging filters.
type ImagingResizer struct {
	Filter imaging.ResampleFilter
}

// Resize implements Resizer.
func (r *ImagingResizer) Resize(buf *PixelBuffer, width, height int) *PixelBuffer {
	return FromImage(imaging.Resize(buf, width, height, r.Filter))
}

// KernelResizer resamples with a golang.org/x/image/draw interpolator.
type KernelResizer struct {
	Scaler xdraw.Scaler
}

// Resize implements Resizer.
func (r *KernelResizer) Resize(buf *PixelBuffer, width, height int) *PixelBuffer {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	r.Scaler.Scale(dst, dst.Bounds(), buf, buf.Bounds(), xdraw.Src, nil)
	return FromImage(dst)
}

// Filters lists the names accepted by NewResizer.
var Filters = []string{"gaussian", "lanczos", "box", "catmullrom", "bilinear"}

// NewResizer returns a resizer for the named filter.
func NewResizer(filter string) (Resizer, error) {
	switch strings.ToLower(filter) {
	case "", "gaussian":
		return &ImagingResizer{Filter: imaging.Gaussian}, nil
	case "lanczos":
		return &ImagingResizer{Filter: imaging.Lanczos}, nil
	case "box":
		return &ImagingResizer{Filter: imaging.Box}, nil
	case "catmullrom":
		return &KernelResizer{Scaler: xdraw.CatmullRom}, nil
	case "bilinear":
		return &KernelResizer{Scaler: xdraw.BiLinear}, nil
	default:
		return nil, fmt.Errorf("unsupported resize filter: %s", filter)
	}
}
