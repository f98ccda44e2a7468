package mosaic

import (
	"errors"
	"fmt"
	"log"
	"sort"
)

// Loader produces the full resolution pixels of a candidate source image.
type Loader interface {
	Load(id string) (*PixelBuffer, error)
}

// Candidate is a source image identity together with its whole-image mean color.
type Candidate struct {
	ID   string
	Mean Color
}

// Catalog indexes source images by mean color and keeps every candidate
// that was resized to tile size so it is resized at most once.
// A Catalog is not safe for concurrent use.
type Catalog struct {
	candidates []Candidate
	index      map[string]int
	tiles      map[string]*PixelBuffer

	loader   Loader
	resizer  Resizer
	tileSize int
}

// BuildCatalog loads every candidate once to compute its mean color. The
// decoded pixels are dropped afterwards. Any failing candidate aborts the
// build.
func BuildCatalog(ids []string, loader Loader, resizer Resizer, tileSize int) (*Catalog, error) {
	if len(ids) == 0 {
		return nil, ErrNoCandidates
	}
	if tileSize <= 0 {
		return nil, ErrInvalidTileSize
	}

	cat := &Catalog{
		candidates: make([]Candidate, 0, len(ids)),
		index:      make(map[string]int, len(ids)),
		tiles:      make(map[string]*PixelBuffer),
		loader:     loader,
		resizer:    resizer,
		tileSize:   tileSize,
	}

	for _, id := range ids {
		if _, ok := cat.index[id]; ok {
			continue
		}
		buf, err := loader.Load(id)
		if err != nil {
			return nil, &CatalogBuildError{ID: id, Err: err}
		}
		if buf.Empty() {
			return nil, &CatalogBuildError{ID: id, Err: &DecodeError{Path: id, Err: errors.New("image has no pixels")}}
		}
		mean := MeanColor(buf)
		cat.index[id] = len(cat.candidates)
		cat.candidates = append(cat.candidates, Candidate{ID: id, Mean: mean})
		log.Printf("Catalogued %s with mean color %s", id, mean.Hex())
	}

	sort.Slice(cat.candidates, func(i, j int) bool {
		return cat.candidates[i].ID < cat.candidates[j].ID
	})
	for i, c := range cat.candidates {
		cat.index[c.ID] = i
	}
	return cat, nil
}

// Len returns the number of distinct candidates.
func (c *Catalog) Len() int {
	return len(c.candidates)
}

// Candidates returns the catalog entries sorted by identity.
// The slice must not be modified.
func (c *Catalog) Candidates() []Candidate {
	return c.candidates
}

// TileSize returns the edge length candidates are resized to.
func (c *Catalog) TileSize() int {
	return c.tileSize
}

// Mean returns the mean color recorded for id.
func (c *Catalog) Mean(id string) (Color, bool) {
	i, ok := c.index[id]
	if !ok {
		return Color{}, false
	}
	return c.candidates[i].Mean, true
}

// Nearest returns the candidate whose mean color is closest to target.
func (c *Catalog) Nearest(target Color) (string, error) {
	return FindNearest(c.candidates, target)
}

// CachedCount returns how many candidates have been resized so far.
func (c *Catalog) CachedCount() int {
	return len(c.tiles)
}

// Resolve returns the tile-sized pixels of candidate id. The first call for
// an id reloads and resizes the source; later calls return the same buffer.
// The returned buffer must not be modified.
func (c *Catalog) Resolve(id string) (*PixelBuffer, error) {
	if buf, ok := c.tiles[id]; ok {
		return buf, nil
	}
	if _, ok := c.index[id]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCandidate, id)
	}

	src, err := c.loader.Load(id)
	if err != nil {
		return nil, err
	}
	buf := c.resizer.Resize(src, c.tileSize, c.tileSize)
	c.tiles[id] = buf
	log.Printf("Resized %s to %dx%d", id, c.tileSize, c.tileSize)
	return buf, nil
}
