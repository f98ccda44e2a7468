package mosaic

import (
	"fmt"
	"image"
)

// Placement pairs a tile with the candidate chosen to replace it.
type Placement struct {
	Tile Tile
	ID   string
}

// Blit copies every pixel of src into dst with its top-left corner at (x, y),
// overwriting what was there.
func Blit(dst, src *PixelBuffer, x, y int) error {
	r := image.Rect(x, y, x+src.width, y+src.height)
	if !r.In(dst.Bounds()) {
		return fmt.Errorf("%w: %dx%d at (%d,%d) into %dx%d",
			ErrOutOfBounds, src.width, src.height, x, y, dst.width, dst.height)
	}

	rowLen := src.width * 3
	for sy := 0; sy < src.height; sy++ {
		start := ((y+sy)*dst.width + x) * 3
		copy(dst.pix[start:start+rowLen], src.pix[sy*rowLen:(sy+1)*rowLen])
	}
	return nil
}

// Plan matches every tile of grid against the catalog without touching the
// reuse cache. Placements keep the grid's tile order.
func Plan(grid Grid, cat *Catalog) ([]Placement, error) {
	placements := make([]Placement, 0, len(grid.Tiles))
	for _, t := range grid.Tiles {
		id, err := cat.Nearest(t.Color)
		if err != nil {
			return nil, err
		}
		placements = append(placements, Placement{Tile: t, ID: id})
	}
	return placements, nil
}

// Composite renders placements onto a canvas of grid.Columns×grid.Rows tiles.
// Each candidate is resolved through the catalog before it is blitted.
// onPlaced, if not nil, is called after every tile.
func Composite(placements []Placement, grid Grid, cat *Catalog, onPlaced func(done, total int)) (*PixelBuffer, error) {
	tileSize := cat.TileSize()
	canvas := NewPixelBuffer(grid.Columns*tileSize, grid.Rows*tileSize)

	for i, p := range placements {
		src, err := cat.Resolve(p.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", p.ID, err)
		}
		off := p.Tile.Offset(tileSize)
		if err := Blit(canvas, src, off.X, off.Y); err != nil {
			return nil, err
		}
		if onPlaced != nil {
			onPlaced(i+1, len(placements))
		}
	}
	return canvas, nil
}

// Generate builds the mosaic of target from the catalog's candidates.
func Generate(target *PixelBuffer, cat *Catalog) (*PixelBuffer, error) {
	grid, err := Decompose(target, cat.TileSize())
	if err != nil {
		return nil, err
	}
	placements, err := Plan(grid, cat)
	if err != nil {
		return nil, err
	}
	return Composite(placements, grid, cat, nil)
}
