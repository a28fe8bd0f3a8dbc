package mastcamraw

import "fmt"

// MosaicFrame holds one sample per sensor pixel, row-major, under a known
// Bayer unit cell. The demosaic engine never mutates it.
type MosaicFrame struct {
	Pix      []uint16
	Width    int
	Height   int
	BitDepth int
}

// NewMosaicFrame wraps an 8-bit raw sample block as a MosaicFrame.
func NewMosaicFrame(samples []byte, width, height int) (*MosaicFrame, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(samples) != width*height {
		return nil, fmt.Errorf("%w: %d samples for %dx%d frame",
			ErrInvalidDimensions, len(samples), width, height)
	}
	pix := make([]uint16, len(samples))
	for i, s := range samples {
		pix[i] = uint16(s)
	}
	return &MosaicFrame{Pix: pix, Width: width, Height: height, BitDepth: 8}, nil
}

// MaxValue is the largest representable sample for the frame's bit depth.
func (f *MosaicFrame) MaxValue() float64 {
	return float64(uint32(1)<<uint(f.BitDepth) - 1)
}
