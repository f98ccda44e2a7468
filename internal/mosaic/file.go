package mosaic

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/disintegration/imaging"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// FileLoader decodes candidate identities as paths on disk.
type FileLoader struct{}

// Load implements Loader.
func (FileLoader) Load(path string) (*PixelBuffer, error) {
	return loadImage(path)
}

// loadImage opens and decodes an image from the given file path, honoring
// EXIF orientation, and converts it to a PixelBuffer.
func loadImage(path string) (*PixelBuffer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: fmt.Errorf("could not open file: %w", err)}
	}
	defer file.Close()

	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return FromImage(img), nil
}

// Enumerate lists the regular files of dir, sorted by path.
// Sub-directories are skipped.
func Enumerate(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &DirectoryError{Path: dir, Err: err}
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// Encode writes buf to path in the format implied by its extension.
// quality only applies to JPEG output.
func Encode(buf *PixelBuffer, path string, quality int) error {
	if err := imaging.Save(buf, path, imaging.JPEGQuality(quality)); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	return nil
}
