package mastcamraw

import (
	"image"
	"math"
)

// RGBRaster is a three-channel float64 raster, row-major, channels
// interleaved R,G,B per pixel. Values carry the source sample units and
// may leave the nominal range until the contrast stretch clamps them.
type RGBRaster struct {
	Pix    []float64
	Width  int
	Height int
}

// NewRGBRaster allocates a zeroed raster of the given size.
func NewRGBRaster(width, height int) *RGBRaster {
	return &RGBRaster{
		Pix:    make([]float64, 3*width*height),
		Width:  width,
		Height: height,
	}
}

// At returns the pixel at (row, col).
func (p *RGBRaster) At(row, col int) (r, g, b float64) {
	i := 3 * (row*p.Width + col)
	return p.Pix[i], p.Pix[i+1], p.Pix[i+2]
}

// Set stores the pixel at (row, col).
func (p *RGBRaster) Set(row, col int, r, g, b float64) {
	i := 3 * (row*p.Width + col)
	p.Pix[i] = r
	p.Pix[i+1] = g
	p.Pix[i+2] = b
}

// ChannelValues copies every value of one channel into a fresh slice,
// in row-major order.
func (p *RGBRaster) ChannelValues(ch Channel) []float64 {
	n := p.Width * p.Height
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = p.Pix[3*i+int(ch)]
	}
	return out
}

// ToRGBA converts the raster to an 8-bit image, rounding and clamping
// each value into [0, 255].
func (p *RGBRaster) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))
	for row := 0; row < p.Height; row++ {
		for col := 0; col < p.Width; col++ {
			si := 3 * (row*p.Width + col)
			di := img.PixOffset(col, row)
			img.Pix[di] = clampByte(p.Pix[si])
			img.Pix[di+1] = clampByte(p.Pix[si+1])
			img.Pix[di+2] = clampByte(p.Pix[si+2])
			img.Pix[di+3] = 0xff
		}
	}
	return img
}

func clampByte(v float64) uint8 {
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}
