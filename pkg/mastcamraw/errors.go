package mastcamraw

import "errors"

var (
	// ErrInvalidPattern is returned when a Bayer pattern name is outside
	// the four supported layouts.
	ErrInvalidPattern = errors.New("invalid bayer pattern")

	// ErrInvalidDimensions is returned when a mosaic frame is too small
	// for the demosaic window or inconsistent with its sample count.
	ErrInvalidDimensions = errors.New("invalid frame dimensions")
)
