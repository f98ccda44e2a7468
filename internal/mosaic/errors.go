package mosaic

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCandidates is returned when there is no source image to match against.
	ErrNoCandidates = errors.New("no candidate source images")
	// ErrInvalidTileSize is returned for a tile edge that is not positive.
	ErrInvalidTileSize = errors.New("tile size must be a positive integer")
	// ErrOutOfBounds is returned when a blit would write outside the canvas.
	ErrOutOfBounds = errors.New("source does not fit into canvas")
	// ErrUnknownCandidate is returned when resolving an identity the catalog never saw.
	ErrUnknownCandidate = errors.New("unknown candidate")
)

// DecodeError reports an image that could not be read or decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("could not decode image %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// DirectoryError reports a source folder that could not be listed.
type DirectoryError struct {
	Path string
	Err  error
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("could not read directory %s: %v", e.Path, e.Err)
}

func (e *DirectoryError) Unwrap() error { return e.Err }

// CatalogBuildError identifies the candidate that made a catalog build fail.
type CatalogBuildError struct {
	ID  string
	Err error
}

func (e *CatalogBuildError) Error() string {
	return fmt.Sprintf("failed to build catalog at candidate %s: %v", e.ID, e.Err)
}

func (e *CatalogBuildError) Unwrap() error { return e.Err }

// EncodeError reports an output image that could not be written.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("could not encode image %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
