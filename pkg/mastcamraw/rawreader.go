package mastcamraw

import (
	"fmt"
	"io"
	"os"
)

// ReadMosaic reads width*height unsigned 8-bit samples, row-major,
// starting at the given byte offset of a raw IMG file.
func ReadMosaic(path string, offset int64, width, height int) (*MosaicFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening raw file: %w", err)
	}
	defer f.Close()
	return ReadMosaicFrom(f, offset, width, height)
}

// ReadMosaicFrom reads a mosaic frame from an already-open source.
func ReadMosaicFrom(r io.ReadSeeker, offset int64, width, height int) (*MosaicFrame, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if _, err := r.Seek(offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking to offset %d: %w", offset, err)
	}

	expected := width * height
	raw := make([]byte, expected)
	n, err := io.ReadFull(r, raw)
	if err != nil {
		return nil, fmt.Errorf("expected %d bytes but read %d at offset %d: %w",
			expected, n, offset, err)
	}
	return NewMosaicFrame(raw, width, height)
}
