package mosaic

import (
	"image"
)

// DefaultTileSize is the edge length in pixels of every mosaic tile.
const DefaultTileSize = 32

// Tile is one square subdivision of the target image.
// X and Y are grid coordinates, not pixel offsets.
type Tile struct {
	X, Y  int
	Color Color
}

// Offset returns the tile's top-left pixel position for the given tile size.
func (t Tile) Offset(tileSize int) image.Point {
	return image.Point{X: t.X * tileSize, Y: t.Y * tileSize}
}

// Grid is the decomposition of an image into tiles, in row-major order.
type Grid struct {
	Columns int
	Rows    int
	Tiles   []Tile
}

// TileBounds returns the pixel rectangle a tile covers in an image of the
// given size. Tiles on the right and bottom borders are clipped.
func TileBounds(t Tile, tileSize, width, height int) image.Rectangle {
	o := t.Offset(tileSize)
	return image.Rect(o.X, o.Y, o.X+tileSize, o.Y+tileSize).
		Intersect(image.Rect(0, 0, width, height))
}

// Decompose divides img into tiles of tileSize×tileSize pixels and computes
// each tile's mean color. Border tiles are clipped to the image.
func Decompose(img *PixelBuffer, tileSize int) (Grid, error) {
	if tileSize <= 0 {
		return Grid{}, ErrInvalidTileSize
	}

	grid := Grid{
		Columns: ceilDiv(img.Width(), tileSize),
		Rows:    ceilDiv(img.Height(), tileSize),
	}
	grid.Tiles = make([]Tile, 0, grid.Columns*grid.Rows)

	for y := 0; y < img.Height(); y += tileSize {
		for x := 0; x < img.Width(); x += tileSize {
			w := min(tileSize, img.Width()-x)
			h := min(tileSize, img.Height()-y)

			grid.Tiles = append(grid.Tiles, Tile{
				X:     x / tileSize,
				Y:     y / tileSize,
				Color: MeanColor(img.Region(x, y, w, h)),
			})
		}
	}
	return grid, nil
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}
