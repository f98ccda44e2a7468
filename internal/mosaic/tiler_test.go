package mosaic

import (
	"errors"
	"image"
	"testing"
)

func TestDecomposeCounts(t *testing.T) {
	tests := []struct {
		w, h, size    int
		columns, rows int
	}{
		{64, 64, 32, 2, 2},
		{10, 10, 4, 3, 3},
		{33, 31, 32, 2, 1},
		{1, 1, 32, 1, 1},
		{7, 5, 1, 7, 5},
		{100, 3, 7, 15, 1},
	}

	for _, tt := range tests {
		grid, err := Decompose(makeGradient(tt.w, tt.h), tt.size)
		if err != nil {
			t.Fatalf("Decompose(%dx%d, %d): %v", tt.w, tt.h, tt.size, err)
		}
		if grid.Columns != tt.columns || grid.Rows != tt.rows {
			t.Errorf("Decompose(%dx%d, %d) grid %dx%d, want %dx%d",
				tt.w, tt.h, tt.size, grid.Columns, grid.Rows, tt.columns, tt.rows)
		}
		if len(grid.Tiles) != grid.Columns*grid.Rows {
			t.Errorf("Decompose(%dx%d, %d) produced %d tiles, want %d",
				tt.w, tt.h, tt.size, len(grid.Tiles), grid.Columns*grid.Rows)
		}
	}
}

func TestDecomposeCoversImage(t *testing.T) {
	const w, h, size = 23, 17, 5
	grid, err := Decompose(makeGradient(w, h), size)
	if err != nil {
		t.Fatal(err)
	}

	covered := make([]int, w*h)
	for _, tile := range grid.Tiles {
		if tile.X < 0 || tile.X >= grid.Columns || tile.Y < 0 || tile.Y >= grid.Rows {
			t.Fatalf("tile (%d,%d) outside %dx%d grid", tile.X, tile.Y, grid.Columns, grid.Rows)
		}
		r := TileBounds(tile, size, w, h)
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				covered[y*w+x]++
			}
		}
	}

	for i, n := range covered {
		if n != 1 {
			t.Fatalf("pixel (%d,%d) covered %d times", i%w, i/w, n)
		}
	}
}

func TestDecomposeClipsEdgeTiles(t *testing.T) {
	grid, err := Decompose(makeGradient(10, 10), 4)
	if err != nil {
		t.Fatal(err)
	}

	for _, tile := range grid.Tiles {
		r := TileBounds(tile, 4, 10, 10)
		wantW, wantH := 4, 4
		if tile.X == 2 {
			wantW = 2
		}
		if tile.Y == 2 {
			wantH = 2
		}
		if r.Dx() != wantW || r.Dy() != wantH {
			t.Errorf("tile (%d,%d) is %dx%d, want %dx%d", tile.X, tile.Y, r.Dx(), r.Dy(), wantW, wantH)
		}
	}
}

func TestDecomposeEdgeTileMeanUsesClippedRegion(t *testing.T) {
	img := NewUniformBuffer(10, 10, blue)
	for y := 8; y < 10; y++ {
		for x := 8; x < 10; x++ {
			img.SetPixel(x, y, red)
		}
	}

	grid, err := Decompose(img, 4)
	if err != nil {
		t.Fatal(err)
	}
	last := grid.Tiles[len(grid.Tiles)-1]
	if last.X != 2 || last.Y != 2 {
		t.Fatalf("expected last tile at (2,2), got (%d,%d)", last.X, last.Y)
	}
	if last.Color != red {
		t.Errorf("corner tile mean = %+v, want %+v", last.Color, red)
	}
}

func TestDecomposeRowMajorOrder(t *testing.T) {
	grid, err := Decompose(makeGradient(9, 6), 3)
	if err != nil {
		t.Fatal(err)
	}

	i := 0
	for y := 0; y < grid.Rows; y++ {
		for x := 0; x < grid.Columns; x++ {
			if got := grid.Tiles[i]; got.X != x || got.Y != y {
				t.Fatalf("tile %d at (%d,%d), want (%d,%d)", i, got.X, got.Y, x, y)
			}
			i++
		}
	}
}

func TestDecomposeTileMeans(t *testing.T) {
	img := makeGradient(8, 8)
	grid, err := Decompose(img, 4)
	if err != nil {
		t.Fatal(err)
	}

	for _, tile := range grid.Tiles {
		o := tile.Offset(4)
		if want := MeanColor(img.Region(o.X, o.Y, 4, 4)); tile.Color != want {
			t.Errorf("tile (%d,%d) mean %+v, want %+v", tile.X, tile.Y, tile.Color, want)
		}
	}
}

func TestDecomposeInvalidTileSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		if _, err := Decompose(makeGradient(4, 4), size); !errors.Is(err, ErrInvalidTileSize) {
			t.Errorf("Decompose with tile size %d: expected ErrInvalidTileSize, got %v", size, err)
		}
	}
}

func TestTileOffset(t *testing.T) {
	if got := (Tile{X: 3, Y: 2}).Offset(32); got != image.Pt(96, 64) {
		t.Errorf("Offset = %v, want (96,64)", got)
	}
}
